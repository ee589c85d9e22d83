// Package path turns a came-from map produced by a search into an ordered
// start→goal sequence, and checks or prices such sequences against a graph.
//
// Errors:
//
//	ErrUnreachableGoal - goal is not a key of the came-from map.
//	ErrBrokenChain     - predecessor links never lead back to start.
//	ErrEmptyPath       - an empty path was given to Validate or Cost.
//	ErrNotAnEdge       - consecutive path entries are not adjacent.
//	ErrRepeatedVertex  - a path visits the same location twice.
package path

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pathfind/core"
)

// Sentinel errors for path reconstruction and validation.
var (
	// ErrUnreachableGoal indicates the goal was never reached by the search
	// (or no search was run on this map).
	ErrUnreachableGoal = errors.New("path: goal not reached")

	// ErrBrokenChain indicates the predecessor links loop or end at a root
	// other than start.
	ErrBrokenChain = errors.New("path: came-from chain does not lead to start")

	// ErrEmptyPath indicates a zero-length path.
	ErrEmptyPath = errors.New("path: empty path")

	// ErrNotAnEdge indicates two consecutive locations are not adjacent.
	ErrNotAnEdge = errors.New("path: step is not an edge")

	// ErrRepeatedVertex indicates a location occurs twice in a path.
	ErrRepeatedVertex = errors.New("path: repeated location")
)

// Reconstruct walks came-from links back from goal to start and returns the
// locations in start→goal order, both ends included.
//
// If start == goal the result is [start]. The walk is bounded by len(cameFrom)
// steps, so a corrupt map can never make it loop.
//
// Returns ErrUnreachableGoal if goal is not in cameFrom, and ErrBrokenChain if
// the links end at a different root, point at a missing key, or cycle.
//
// Complexity: O(len(path)).
func Reconstruct[L comparable](start, goal L, cameFrom map[L]L) ([]L, error) {
	if _, ok := cameFrom[goal]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnreachableGoal, goal)
	}

	// build reversed path
	rev := []L{goal}
	for cur := goal; cur != start; {
		prev, ok := cameFrom[cur]
		if !ok || prev == cur || len(rev) >= len(cameFrom) {
			return nil, fmt.Errorf("%w: stuck at %v", ErrBrokenChain, cur)
		}
		rev = append(rev, prev)
		cur = prev
	}

	// reverse to get start → goal
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev, nil
}

// Validate checks that p is non-empty, has no repeated location, and that every
// consecutive pair is connected by an edge of g.
// Complexity: O(len(p)·d), d = max out-degree along the path.
func Validate[L comparable](g core.Graph[L], p []L) error {
	if len(p) == 0 {
		return ErrEmptyPath
	}
	seen := make(map[L]struct{}, len(p))
	for i, v := range p {
		if _, dup := seen[v]; dup {
			return fmt.Errorf("%w: %v at index %d", ErrRepeatedVertex, v, i)
		}
		seen[v] = struct{}{}
		if i > 0 && !adjacent(g, p[i-1], v) {
			return fmt.Errorf("%w: %v→%v", ErrNotAnEdge, p[i-1], v)
		}
	}

	return nil
}

// Cost sums the step costs along p. A single-location path costs zero.
// Returns ErrEmptyPath or ErrNotAnEdge for malformed paths.
func Cost[L comparable, C core.Cost](g core.WeightedGraph[L, C], p []L) (C, error) {
	var total C
	if len(p) == 0 {
		return total, ErrEmptyPath
	}
	for i := 1; i < len(p); i++ {
		if !adjacent[L](g, p[i-1], p[i]) {
			return total, fmt.Errorf("%w: %v→%v", ErrNotAnEdge, p[i-1], p[i])
		}
		total += g.Cost(p[i-1], p[i])
	}

	return total, nil
}

// adjacent reports whether to is among g.Neighbors(from).
func adjacent[L comparable](g core.Graph[L], from, to L) bool {
	for _, n := range g.Neighbors(from) {
		if n == to {
			return true
		}
	}

	return false
}
