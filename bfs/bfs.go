// Package bfs provides breadth-first search over a core.Graph,
// returning the came-from tree, hop depths, and expansion order.
//
// BFS explores locations in increasing hop distance from a start location,
// with optional hooks, depth limiting, and neighbor filtering.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/pathfind/core"
)

// queueItem pairs a location with its BFS depth.
type queueItem[L comparable] struct {
	id    L
	depth int
}

// walker encapsulates mutable BFS state.
type walker[L comparable] struct {
	graph core.Graph[L]
	opts  BFSOptions[L]
	queue []queueItem[L]
	head  int
	res   *BFSResult[L]
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
//
// The frontier is a FIFO queue seeded with start, and start is recorded as its
// own predecessor. Each dequeued location hands every neighbor that is not yet
// a key of CameFrom its predecessor link and a slot at the back of the queue.
// The whole reachable component is explored; there is no goal and no early exit.
//
// Returns ErrGraphNil for a nil graph, ErrOptionViolation for bad options,
// or any user-supplied hook error.
func BFS[L comparable](g core.Graph[L], start L, opts ...Option[L]) (*BFSResult[L], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions[L]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker[L]{
		graph: g,
		opts:  o,
		res: &BFSResult[L]{
			Start:    start,
			CameFrom: make(map[L]L),
			Depth:    make(map[L]int),
		},
	}

	// Seed queue with start: it is its own predecessor
	w.enqueue(start, 0, start)

	return w.res, w.loop()
}

// enqueue records id's predecessor and depth, calls OnEnqueue,
// and appends it to the queue.
func (w *walker[L]) enqueue(id L, d int, from L) {
	w.res.CameFrom[id] = from
	w.res.Depth[id] = d
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem[L]{id: id, depth: d})
}

// loop processes the queue until empty or a hook error.
func (w *walker[L]) loop() error {
	for w.head < len(w.queue) {
		item := w.queue[w.head]
		w.head++

		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}
	// release the backing array; the result does not reference it
	w.queue = nil

	return nil
}

// visit records the location in Order and calls OnVisit.
func (w *walker[L]) visit(item queueItem[L]) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.id, err)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, and enqueues each
// neighbor that has no predecessor yet.
func (w *walker[L]) enqueueNeighbors(item queueItem[L]) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.graph.Neighbors(item.id) {
		if !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		// first time seen?
		if _, seen := w.res.CameFrom[nbr]; !seen {
			w.enqueue(nbr, nextDepth, item.id)
		}
	}
}
