package gridgraph

import "fmt"

// Location is a tile coordinate. X grows to the right, Y grows downwards.
type Location struct {
	X, Y int
}

// String renders the location as "(x,y)".
func (l Location) String() string {
	return fmt.Sprintf("(%d,%d)", l.X, l.Y)
}

// Add returns the component-wise sum l+d.
func (l Location) Add(d Location) Location {
	return Location{X: l.X + d.X, Y: l.Y + d.Y}
}

// Less orders locations row-major: by Y, then by X.
func (l Location) Less(o Location) bool {
	if l.Y != o.Y {
		return l.Y < o.Y
	}

	return l.X < o.X
}

// Manhattan is the L1 distance between a and b. On a grid where every step
// costs at least 1 it never overestimates, so it is a valid A* heuristic.
func Manhattan(a, b Location) float64 {
	return float64(abs(a.X-b.X) + abs(a.Y-b.Y))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
