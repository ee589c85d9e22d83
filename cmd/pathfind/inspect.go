package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/pathfind/gridgraph"
	"github.com/katalvlaran/pathfind/render"
)

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "Report open regions and how many walls separate start from goal",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			b, err := a.loadBoard()
			if err != nil {
				return err
			}

			comps := gridgraph.PassableComponents(b.grid.SquareGrid)
			if _, err = fmt.Fprintf(a.out, "%d open regions\n", len(comps)); err != nil {
				return err
			}
			for i, c := range comps {
				if _, err = fmt.Fprintf(a.out, "  region %d: %d tiles, first %v\n", i, len(c), c[0]); err != nil {
					return err
				}
			}

			route, walls, err := b.grid.BreachPath(b.start, b.goal)
			if err != nil {
				return err
			}
			klog.V(2).Infof("inspect: breach route %v → %v has %d tiles", b.start, b.goal, len(route))
			if walls == 0 {
				_, err = fmt.Fprintf(a.out, "start %v and goal %v are connected\n", b.start, b.goal)
				return err
			}

			if err = a.draw(b, render.WithPath(route)); err != nil {
				return err
			}
			_, err = fmt.Fprintf(a.out, "%d walls must go to join %v and %v\n", walls, b.start, b.goal)

			return err
		},
	}
}

func newScenarioCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "scenario",
		Short: "Print the active scenario as YAML",
		Long:  "Print the active scenario as YAML. Without --scenario this is the demo board, a starting point for custom files.",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := a.loadScenario()
			if err != nil {
				return err
			}
			if err = s.Validate(); err != nil {
				return err
			}
			data, err := s.YAML()
			if err != nil {
				return err
			}
			_, err = a.out.Write(data)

			return err
		},
	}
}
