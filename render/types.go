package render

import (
	"errors"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/pathfind/gridgraph"
)

// Sentinel errors for rendering.
var (
	// ErrGridNil is returned when Draw is given a nil grid.
	ErrGridNil = errors.New("render: grid is nil")
)

// FieldWidth is the number of characters each tile occupies.
const FieldWidth = 3

// Grid is what Draw needs to know about a board.
// *gridgraph.SquareGrid and *gridgraph.WeightedGrid satisfy it.
type Grid interface {
	Dimensions() (width, height int)
	IsWall(l gridgraph.Location) bool
}

// Options selects the overlays drawn on top of the board. Each tile shows
// the first overlay that applies, in this order: wall, start, goal, path,
// arrow, distance, empty.
type Options struct {
	Distances map[gridgraph.Location]float64
	PointTo   map[gridgraph.Location]gridgraph.Location
	Path      []gridgraph.Location
	Start     *gridgraph.Location
	Goal      *gridgraph.Location
	Styles    Styles
}

// Option configures Draw.
type Option func(*Options)

// WithDistances labels tiles with a numeric value, usually a cost-so-far map.
func WithDistances(d map[gridgraph.Location]float64) Option {
	return func(o *Options) { o.Distances = d }
}

// WithPointTo draws an arrow on each tile towards the location it maps to,
// usually a came-from map.
func WithPointTo(m map[gridgraph.Location]gridgraph.Location) Option {
	return func(o *Options) { o.PointTo = m }
}

// WithPath marks every tile of p with '@'.
func WithPath(p []gridgraph.Location) Option {
	return func(o *Options) { o.Path = p }
}

// WithStart marks l with 'A'.
func WithStart(l gridgraph.Location) Option {
	return func(o *Options) { o.Start = &l }
}

// WithGoal marks l with 'Z'.
func WithGoal(l gridgraph.Location) Option {
	return func(o *Options) { o.Goal = &l }
}

// WithStyles colors the output. The default is PlainStyles.
func WithStyles(s Styles) Option {
	return func(o *Options) { o.Styles = s }
}

// Styles holds one lipgloss style per tile kind. The zero value, or any
// Styles with Enabled false, writes text untouched.
type Styles struct {
	Enabled bool

	Rule     lipgloss.Style
	Wall     lipgloss.Style
	Start    lipgloss.Style
	Goal     lipgloss.Style
	Path     lipgloss.Style
	Arrow    lipgloss.Style
	Distance lipgloss.Style
	Empty    lipgloss.Style
}

// Palette.
var (
	ColorWall  = lipgloss.Color("#2C4A54")
	ColorStart = lipgloss.Color("#2CD7C7")
	ColorGoal  = lipgloss.Color("#E74C3C")
	ColorPath  = lipgloss.Color("#F4D03F")
	ColorArrow = lipgloss.Color("#1D9EA3")
	ColorMuted = lipgloss.Color("#5F6B70")
	ColorLabel = lipgloss.Color("#3E7D3A")
)

// PlainStyles disables coloring.
func PlainStyles() Styles {
	return Styles{}
}

// DefaultStyles returns the colored palette bound to renderer r, which
// decides the color profile. A nil r uses lipgloss's default renderer.
func DefaultStyles(r *lipgloss.Renderer) Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	return Styles{
		Enabled:  true,
		Rule:     r.NewStyle().Foreground(ColorMuted),
		Wall:     r.NewStyle().Foreground(ColorWall).Bold(true),
		Start:    r.NewStyle().Foreground(ColorStart).Bold(true),
		Goal:     r.NewStyle().Foreground(ColorGoal).Bold(true),
		Path:     r.NewStyle().Foreground(ColorPath).Bold(true),
		Arrow:    r.NewStyle().Foreground(ColorArrow),
		Distance: r.NewStyle().Foreground(ColorLabel),
		Empty:    r.NewStyle().Foreground(ColorMuted),
	}
}

// paint renders s with st when styling is enabled.
func (s Styles) paint(st lipgloss.Style, text string) string {
	if !s.Enabled {
		return text
	}

	return st.Render(text)
}
