package render

import (
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/katalvlaran/pathfind/gridgraph"
)

// Draw writes an ASCII picture of g to w: a rule of '_', one line per row,
// a rule of '~'. Every tile is FieldWidth characters wide:
//
//	###   wall
//	 A    start
//	 Z    goal
//	 @    on the path
//	 >    arrow towards the PointTo target (< v ^ likewise, * for itself)
//	 14   distance, left aligned
//	 .    nothing to show
//
// The whole picture is built in memory and written with a single Write.
// A nil grid, including a typed nil pointer such as (*gridgraph.SquareGrid)(nil),
// yields ErrGridNil.
func Draw(w io.Writer, g Grid, opts ...Option) error {
	if isNil(g) {
		return ErrGridNil
	}
	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}

	onPath := make(map[gridgraph.Location]struct{}, len(o.Path))
	for _, l := range o.Path {
		onPath[l] = struct{}{}
	}

	width, height := g.Dimensions()
	var b strings.Builder
	b.WriteString(o.Styles.paint(o.Styles.Rule, strings.Repeat("_", FieldWidth*width)))
	b.WriteByte('\n')
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			b.WriteString(tile(g, &o, onPath, gridgraph.Location{X: x, Y: y}))
		}
		b.WriteByte('\n')
	}
	b.WriteString(o.Styles.paint(o.Styles.Rule, strings.Repeat("~", FieldWidth*width)))
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())

	return err
}

// String is Draw into a string.
func String(g Grid, opts ...Option) (string, error) {
	var b strings.Builder
	if err := Draw(&b, g, opts...); err != nil {
		return "", err
	}

	return b.String(), nil
}

// tile picks the first overlay that applies to id.
func tile(g Grid, o *Options, onPath map[gridgraph.Location]struct{}, id gridgraph.Location) string {
	st := o.Styles
	if g.IsWall(id) {
		return st.paint(st.Wall, strings.Repeat("#", FieldWidth))
	}
	if o.Start != nil && id == *o.Start {
		return st.paint(st.Start, " A ")
	}
	if o.Goal != nil && id == *o.Goal {
		return st.paint(st.Goal, " Z ")
	}
	if _, ok := onPath[id]; ok {
		return st.paint(st.Path, " @ ")
	}
	if next, ok := o.PointTo[id]; ok {
		return st.paint(st.Arrow, arrow(id, next))
	}
	if d, ok := o.Distances[id]; ok {
		return st.paint(st.Distance, fmt.Sprintf(" %-*.6g", FieldWidth-1, d))
	}

	return st.paint(st.Empty, " . ")
}

// arrow points from id towards next.
func arrow(id, next gridgraph.Location) string {
	switch {
	case next.X == id.X+1:
		return " > "
	case next.X == id.X-1:
		return " < "
	case next.Y == id.Y+1:
		return " v "
	case next.Y == id.Y-1:
		return " ^ "
	default:
		return " * "
	}
}

// isNil reports whether g is nil or wraps a nil pointer.
func isNil(g Grid) bool {
	if g == nil {
		return true
	}
	v := reflect.ValueOf(g)

	return v.Kind() == reflect.Pointer && v.IsNil()
}
