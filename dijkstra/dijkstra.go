package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/pathfind/core"
	"github.com/katalvlaran/pathfind/pq"
)

// Search runs Dijkstra from start towards goal, writing its results into the
// caller-owned maps. On return cameFrom holds the predecessor of every
// recorded location (start maps to itself) and costSoFar its cheapest known
// cumulative cost.
//
// The maps are expected to be empty; existing entries are treated as already
// known costs.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrGraphNil).
//  2. cameFrom and costSoFar must be non-nil (ErrNilMap).
//  3. Options must be valid (ErrOptionViolation).
//  4. Every step cost met while relaxing must be ≥ 0 (ErrNegativeCost).
//
// Complexity:
//
//   - Time:  O((V + E) log E)
//   - Space: O(V + E), duplicate queue entries included.
func Search[L comparable, C core.Cost](
	g core.WeightedGraph[L, C],
	start, goal L,
	cameFrom map[L]L,
	costSoFar map[L]C,
	opts ...Option[L, C],
) error {
	_, err := search(g, start, goal, cameFrom, costSoFar, opts)

	return err
}

// Dijkstra allocates fresh maps, runs Search and returns them bundled in a
// Result together with whether the goal was reached and how many locations
// were expanded.
//
// On error the partial Result is still returned alongside it.
func Dijkstra[L comparable, C core.Cost](
	g core.WeightedGraph[L, C],
	start, goal L,
	opts ...Option[L, C],
) (*Result[L, C], error) {
	res := &Result[L, C]{
		Start:     start,
		Goal:      goal,
		CameFrom:  make(map[L]L),
		CostSoFar: make(map[L]C),
	}
	r, err := search(g, start, goal, res.CameFrom, res.CostSoFar, opts)
	if r != nil {
		res.Expanded = r.expanded
		_, res.Found = res.CostSoFar[goal]
	}

	return res, err
}

// search validates inputs, builds the runner and drives it.
func search[L comparable, C core.Cost](
	g core.WeightedGraph[L, C],
	start, goal L,
	cameFrom map[L]L,
	costSoFar map[L]C,
	opts []Option[L, C],
) (*runner[L, C], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if cameFrom == nil || costSoFar == nil {
		return nil, ErrNilMap
	}

	cfg := DefaultOptions[L, C]()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	r := &runner[L, C]{
		g:         g,
		options:   cfg,
		goal:      goal,
		cameFrom:  cameFrom,
		costSoFar: costSoFar,
		frontier:  pq.New[frontierItem[L, C], C](),
	}
	r.init(start)

	return r, r.process()
}

// frontierItem is a queued location tagged with the cost it was pushed at.
// When costSoFar[loc] has since dropped below cost, the entry is stale.
type frontierItem[L comparable, C core.Cost] struct {
	loc  L
	cost C
}

// runner holds the mutable state for a single search.
type runner[L comparable, C core.Cost] struct {
	g         core.WeightedGraph[L, C]
	options   Options[L, C]
	goal      L
	cameFrom  map[L]L
	costSoFar map[L]C
	frontier  *pq.Queue[frontierItem[L, C], C]
	expanded  int
}

// init records start as its own predecessor at cost zero and queues it.
func (r *runner[L, C]) init(start L) {
	var zero C
	r.cameFrom[start] = start
	r.costSoFar[start] = zero
	r.frontier.Put(frontierItem[L, C]{loc: start, cost: zero}, zero)
}

// process pops the cheapest entry until the frontier is empty or the goal is
// popped. Stale entries are dropped without expansion.
func (r *runner[L, C]) process() error {
	for !r.frontier.IsEmpty() {
		item, err := r.frontier.Get()
		if err != nil {
			return fmt.Errorf("dijkstra: %w", err)
		}
		if item.cost > r.costSoFar[item.loc] {
			continue // superseded by a cheaper push
		}
		if !r.options.NoGoal && item.loc == r.goal {
			return nil
		}

		r.expanded++
		r.options.OnExpand(item.loc, item.cost)
		if err = r.relax(item.loc); err != nil {
			return err
		}
	}

	return nil
}

// relax offers every neighbor of current the route through current and
// records it when the neighbor is unseen or the route is strictly cheaper.
func (r *runner[L, C]) relax(current L) error {
	var zero C
	base := r.costSoFar[current]
	for _, next := range r.g.Neighbors(current) {
		step := r.g.Cost(current, next)
		if step < zero || step != step { // NaN is never equal to itself
			return fmt.Errorf("%w: %v→%v cost=%v", ErrNegativeCost, current, next, step)
		}

		candidate := base + step
		if r.options.HasMaxCost && candidate > r.options.MaxCost {
			continue
		}
		if known, seen := r.costSoFar[next]; seen && candidate >= known {
			continue
		}

		r.costSoFar[next] = candidate
		r.cameFrom[next] = current
		r.frontier.Put(frontierItem[L, C]{loc: next, cost: candidate}, r.priority(next, candidate))
	}

	return nil
}

// priority computes the queue key for next.
func (r *runner[L, C]) priority(next L, cost C) C {
	key := r.options.Priority(next, cost)
	if r.options.heuristic != nil {
		key += r.options.heuristic(next, r.goal)
	}

	return key
}
