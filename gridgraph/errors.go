package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates a grid with no columns or no rows.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrOutOfBounds indicates a location outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: location out of bounds")
)
