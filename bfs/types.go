// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Graph.
package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pathfind/path"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option[L comparable] func(*BFSOptions[L])

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions[L comparable] struct {
	// OnEnqueue is called when a location is discovered and enqueued.
	// Receives the location and its hop distance from the start.
	OnEnqueue func(id L, depth int)

	// OnVisit is called when a location is dequeued for expansion. If it
	// returns an error, BFS aborts and propagates that error.
	OnVisit func(id L, depth int) error

	// MaxDepth, if > 0, stops discovering locations beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip edges by returning false.
	// Called for each edge curr→neighbor.
	FilterNeighbor func(curr, neighbor L) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all neighbors allowed)
//   - no-op hooks (OnEnqueue, OnVisit)
func DefaultOptions[L comparable]() BFSOptions[L] {
	return BFSOptions[L]{
		OnEnqueue:      func(L, int) {},
		OnVisit:        func(L, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ L) bool { return true },
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue[L comparable](fn func(id L, depth int)) Option[L] {
	return func(o *BFSOptions[L]) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit[L comparable](fn func(id L, depth int) error) Option[L] {
	return func(o *BFSOptions[L]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops discovery past the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth[L comparable](d int) Option[L] {
	return func(o *BFSOptions[L]) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor[L comparable](fn func(curr, neighbor L) bool) Option[L] {
	return func(o *BFSOptions[L]) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Start: the root location.
//   - CameFrom: predecessor of every discovered location; Start maps to itself.
//   - Order: locations in the order they were expanded.
//   - Depth: hop distance from Start for every discovered location.
type BFSResult[L comparable] struct {
	Start    L
	CameFrom map[L]L
	Order    []L
	Depth    map[L]int
}

// Reached reports whether dest was discovered.
func (r *BFSResult[L]) Reached(dest L) bool {
	_, ok := r.CameFrom[dest]

	return ok
}

// PathTo reconstructs the fewest-hop path from Start to dest.
// Returns path.ErrUnreachableGoal if dest was not reached.
func (r *BFSResult[L]) PathTo(dest L) ([]L, error) {
	return path.Reconstruct(r.Start, dest, r.CameFrom)
}
