package main

import (
	goflag "flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/pathfind/gridgraph"
	"github.com/katalvlaran/pathfind/render"
	"github.com/katalvlaran/pathfind/scenario"
)

// Values accepted by --color.
const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

// app carries the state shared by every subcommand.
type app struct {
	out          io.Writer
	scenarioPath string
	color        string
}

// board is a loaded scenario ready to search.
type board struct {
	grid        *gridgraph.WeightedGrid
	start, goal gridgraph.Location
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out}

	root := &cobra.Command{
		Use:   "pathfind",
		Short: "Plan routes on a weighted grid with BFS, Dijkstra or A*",
		Long: `pathfind searches a grid of open, wall and forest tiles and draws the
result as text. Without --scenario it uses the built-in 10x10 demo board.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch a.color {
			case colorAuto, colorAlways, colorNever:
				return nil
			default:
				return fmt.Errorf("invalid --color %q: want %s, %s or %s", a.color, colorAuto, colorAlways, colorNever)
			}
		},
	}
	root.SetOut(out)
	root.SetErr(os.Stderr)

	root.PersistentFlags().StringVar(&a.scenarioPath, "scenario", "", "YAML scenario file (default: built-in demo board)")
	root.PersistentFlags().StringVar(&a.color, "color", colorAuto, "colorize output: auto, always or never")

	// klog flags (-v, --logtostderr, ...) ride along on the root command
	klogFlags := goflag.NewFlagSet("klog", goflag.ContinueOnError)
	klog.InitFlags(klogFlags)
	root.PersistentFlags().AddGoFlagSet(klogFlags)

	root.AddCommand(
		newBFSCmd(a),
		newDijkstraCmd(a),
		newAStarCmd(a),
		newDOTCmd(a),
		newInspectCmd(a),
		newScenarioCmd(a),
	)

	return root
}

// loadScenario returns the scenario named by --scenario, or the default.
func (a *app) loadScenario() (*scenario.Scenario, error) {
	if a.scenarioPath == "" {
		klog.V(2).Info("no --scenario given, using the demo board")
		return scenario.Default(), nil
	}
	s, err := scenario.Load(a.scenarioPath)
	if err != nil {
		return nil, err
	}
	klog.V(2).Infof("loaded scenario %s: %dx%d, %d wall rects, %d forests",
		a.scenarioPath, s.Width, s.Height, len(s.Walls), len(s.Forests))

	return s, nil
}

// loadBoard loads the scenario and builds its grid.
func (a *app) loadBoard() (*board, error) {
	s, err := a.loadScenario()
	if err != nil {
		return nil, err
	}
	g, err := s.Build()
	if err != nil {
		return nil, err
	}

	return &board{grid: g, start: s.Start.Location(), goal: s.Goal.Location()}, nil
}

// styles picks the render palette for --color and the output stream.
func (a *app) styles() render.Styles {
	switch a.color {
	case colorNever:
		return render.PlainStyles()
	case colorAlways:
		r := lipgloss.NewRenderer(a.out)
		r.SetColorProfile(termenv.ANSI256)
		return render.DefaultStyles(r)
	}

	f, ok := a.out.(*os.File)
	if !ok || !(isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return render.PlainStyles()
	}

	return render.DefaultStyles(lipgloss.NewRenderer(f))
}

// draw renders one picture of the board followed by a blank line.
func (a *app) draw(b *board, opts ...render.Option) error {
	opts = append([]render.Option{
		render.WithStyles(a.styles()),
		render.WithStart(b.start),
		render.WithGoal(b.goal),
	}, opts...)
	if err := render.Draw(a.out, b.grid, opts...); err != nil {
		return err
	}
	_, err := fmt.Fprintln(a.out)

	return err
}
