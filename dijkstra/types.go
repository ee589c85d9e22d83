package dijkstra

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pathfind/core"
	"github.com/katalvlaran/pathfind/path"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrGraphNil indicates that a nil graph was passed to Search or Dijkstra.
	ErrGraphNil = errors.New("dijkstra: graph is nil")

	// ErrNilMap indicates that Search was given a nil came-from or cost map.
	// Both maps are owned by the caller and must be allocated.
	ErrNilMap = errors.New("dijkstra: output map is nil")

	// ErrNegativeCost indicates that the graph reported a negative or NaN step
	// cost while relaxing an edge.
	ErrNegativeCost = errors.New("dijkstra: negative step cost encountered")

	// ErrOptionViolation indicates that an invalid Option was supplied.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")
)

// PriorityFunc maps a freshly relaxed location and its cumulative cost to the
// key it is queued under. Lower keys are expanded first.
type PriorityFunc[L comparable, C core.Cost] func(next L, cost C) C

// Heuristic estimates the remaining cost from loc to goal. It must never
// overestimate the true remaining cost, or the search may settle for a
// longer route.
type Heuristic[L comparable, C core.Cost] func(loc, goal L) C

// Options configures a single search.
//
//	Priority – queue key for a relaxed location; default is the cumulative cost.
//	NoGoal   – ignore the goal and settle every reachable location.
//	MaxCost  – when HasMaxCost is set, candidates costing more are not recorded.
//	OnExpand – called every time a location is popped and expanded.
type Options[L comparable, C core.Cost] struct {
	Priority   PriorityFunc[L, C]
	NoGoal     bool
	MaxCost    C
	HasMaxCost bool
	OnExpand   func(loc L, cost C)

	// heuristic, when set, is added to Priority with the goal bound
	heuristic Heuristic[L, C]

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring a search.
type Option[L comparable, C core.Cost] func(*Options[L, C])

// DefaultOptions returns plain Dijkstra settings:
//   - priority equals cumulative cost
//   - stop as soon as the goal is expanded
//   - no cost cap
//   - no-op OnExpand hook
func DefaultOptions[L comparable, C core.Cost]() Options[L, C] {
	return Options[L, C]{
		Priority: func(_ L, cost C) C { return cost },
		OnExpand: func(L, C) {},
	}
}

// WithPriority replaces the queue key function. The relaxation rule and the
// stopping rule stay the same, so only the expansion order changes.
func WithPriority[L comparable, C core.Cost](fn PriorityFunc[L, C]) Option[L, C] {
	return func(o *Options[L, C]) {
		if fn == nil {
			o.err = fmt.Errorf("%w: nil priority function", ErrOptionViolation)
			return
		}
		o.Priority = fn
	}
}

// WithHeuristic turns the search into A*: a location is queued under
// cost + h(location, goal). With h ≡ 0 this is plain Dijkstra. Combined with
// WithPriority the estimate is added to that function's key instead.
//
// The goal is bound when the search starts, so the option can be reused.
func WithHeuristic[L comparable, C core.Cost](h Heuristic[L, C]) Option[L, C] {
	return func(o *Options[L, C]) {
		if h == nil {
			o.err = fmt.Errorf("%w: nil heuristic", ErrOptionViolation)
			return
		}
		o.heuristic = h
	}
}

// WithNoGoal explores the whole reachable component instead of stopping at
// the goal, producing costs to every reachable location.
func WithNoGoal[L comparable, C core.Cost]() Option[L, C] {
	return func(o *Options[L, C]) {
		o.NoGoal = true
	}
}

// WithMaxCost stops recording locations whose cumulative cost would exceed max.
// A negative max is rejected with ErrOptionViolation.
func WithMaxCost[L comparable, C core.Cost](max C) Option[L, C] {
	return func(o *Options[L, C]) {
		var zero C
		if max < zero {
			o.err = fmt.Errorf("%w: MaxCost cannot be negative (%v)", ErrOptionViolation, max)
			return
		}
		o.MaxCost = max
		o.HasMaxCost = true
	}
}

// WithOnExpand registers a callback run on every expansion, in order.
func WithOnExpand[L comparable, C core.Cost](fn func(loc L, cost C)) Option[L, C] {
	return func(o *Options[L, C]) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// Result bundles the maps produced by Dijkstra with a summary of the run.
type Result[L comparable, C core.Cost] struct {
	Start, Goal L
	CameFrom    map[L]L
	CostSoFar   map[L]C
	// Found reports whether the goal was reached.
	Found bool
	// Expanded counts queue pops that were expanded, stale pops excluded.
	Expanded int
}

// Path reconstructs the cheapest route from Start to Goal.
// Returns path.ErrUnreachableGoal when the goal was not reached.
func (r *Result[L, C]) Path() ([]L, error) {
	return path.Reconstruct(r.Start, r.Goal, r.CameFrom)
}

// PathTo reconstructs the route from Start to any recorded location.
// Under early exit only locations expanded before the goal are guaranteed
// cheapest; WithNoGoal makes every route optimal.
func (r *Result[L, C]) PathTo(dest L) ([]L, error) {
	return path.Reconstruct(r.Start, dest, r.CameFrom)
}
