// Package bfs provides breadth-first search over any core.Graph,
// returning the came-from tree, hop depths, and expansion order.
//
// What
//
//   - Explore locations in non-decreasing hop distance from a start location.
//   - Returns a BFSResult containing:
//   - CameFrom: location → predecessor; the start maps to itself
//   - Order:    expansion sequence
//   - Depth:    location → hop distance from the start
//   - Supports functional hooks at two stages:
//   - OnEnqueue (when a location is first discovered)
//   - OnVisit   (when a location is expanded; may abort with an error)
//   - Allows filtering of individual edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Guarantee
//
//	Every location gets its predecessor exactly once, the first time it is
//	seen. Because the frontier is FIFO, the predecessor chain from any
//	reached location back to the start has the minimum number of edges.
//
// Determinism
//
//	BFS enqueues neighbors in the order the graph returns them, so results are
//	reproducible whenever the graph's Neighbors order is.
//
// Complexity (V = reachable locations, E = edges among them)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS[string](g, "A")
//	if err != nil {
//	    // ErrGraphNil, ErrOptionViolation, or a wrapped OnVisit error
//	}
//	p, err := res.PathTo("E")
//
// Errors
//
//   - ErrGraphNil         if the graph is nil.
//   - ErrOptionViolation  if an Option is invalid (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
