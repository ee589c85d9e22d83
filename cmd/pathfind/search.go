package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/pathfind/bfs"
	"github.com/katalvlaran/pathfind/dijkstra"
	"github.com/katalvlaran/pathfind/gridgraph"
	"github.com/katalvlaran/pathfind/path"
	"github.com/katalvlaran/pathfind/render"
)

func newBFSCmd(a *app) *cobra.Command {
	var maxDepth int

	cmd := &cobra.Command{
		Use:   "bfs",
		Short: "Flood the board from the start and draw the came-from arrows",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			b, err := a.loadBoard()
			if err != nil {
				return err
			}
			res, err := bfs.BFS[gridgraph.Location](b.grid, b.start, bfs.WithMaxDepth[gridgraph.Location](maxDepth))
			if err != nil {
				return err
			}
			klog.V(2).Infof("bfs: reached %d tiles from %v", len(res.Order), b.start)

			if err = a.draw(b, render.WithPointTo(res.CameFrom)); err != nil {
				return err
			}
			_, err = fmt.Fprintf(a.out, "reached %d tiles\n", len(res.Order))

			return err
		},
	}
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "stop after this many steps (0 = unlimited)")

	return cmd
}

func newDijkstraCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dijkstra",
		Short: "Find the cheapest route with Dijkstra's algorithm",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.runSearch("dijkstra")
		},
	}
}

func newAStarCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "astar",
		Short: "Find the cheapest route with A* and the Manhattan heuristic",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.runSearch("astar", dijkstra.WithHeuristic[gridgraph.Location, float64](gridgraph.Manhattan))
		},
	}
}

// runSearch draws three pictures of one search: the came-from arrows, the
// route, and the cost-so-far labels. An unreachable goal is reported but is
// not an error.
func (a *app) runSearch(name string, opts ...dijkstra.Option[gridgraph.Location, float64]) error {
	b, err := a.loadBoard()
	if err != nil {
		return err
	}

	res, err := dijkstra.Dijkstra[gridgraph.Location, float64](b.grid, b.start, b.goal, opts...)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	klog.V(2).Infof("%s: %v → %v expanded %d tiles, recorded %d", name, b.start, b.goal, res.Expanded, len(res.CostSoFar))

	if err = a.draw(b, render.WithPointTo(res.CameFrom)); err != nil {
		return err
	}

	route, err := res.Path()
	if errors.Is(err, path.ErrUnreachableGoal) {
		klog.Warningf("%s: goal %v is unreachable from %v", name, b.goal, b.start)
		_, err = fmt.Fprintf(a.out, "no route from %v to %v\n", b.start, b.goal)
		return err
	}
	if err != nil {
		return err
	}

	if err = a.draw(b, render.WithPath(route)); err != nil {
		return err
	}
	if err = a.draw(b, render.WithDistances(res.CostSoFar)); err != nil {
		return err
	}
	_, err = fmt.Fprintf(a.out, "cost %g over %d steps, %d tiles expanded\n",
		res.CostSoFar[b.goal], len(route)-1, res.Expanded)

	return err
}

func newDOTCmd(a *app) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "dot",
		Short: "Print the Dijkstra came-from tree as a Graphviz digraph",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			b, err := a.loadBoard()
			if err != nil {
				return err
			}
			res, err := dijkstra.Dijkstra[gridgraph.Location, float64](b.grid, b.start, b.goal)
			if err != nil {
				return err
			}
			out, err := render.DOT(res.CameFrom, name)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(a.out, out)

			return err
		},
	}
	cmd.Flags().StringVar(&name, "name", render.DefaultGraphName, "graph name in the DOT output")

	return cmd
}
