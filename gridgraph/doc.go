// Package gridgraph treats a rectangular board of tiles as a graph, so the
// searches in bfs and dijkstra can run on it directly.
//
// What:
//
//   - SquareGrid: Width×Height tiles, some of them walls. Neighbors lists the
//     in-bounds passable tiles one step east, west, north or south.
//   - WeightedGrid: a SquareGrid whose forest tiles cost ForestCost to enter;
//     every other step costs 1.
//   - Diagram4: the 10×10 demo board used throughout the examples.
//   - PassableComponents: the contiguous open regions of a grid.
//   - BreachPath: the route between two tiles crossing the fewest walls.
//   - ToAdjacencyGraph: an explicit core.AdjacencyGraph copy of a grid.
//
// Neighbor order:
//
//	Directions is east, west, north, south. On tiles where x+y is even the
//	order is reversed, so searches that break ties by discovery order
//	produce staircase routes rather than one long leg and a single turn.
//
// Coordinates:
//
//	x grows to the east (columns) and y to the south (rows); (0,0) is the
//	top-left tile.
//
// Complexity:
//
//   - Neighbors, Cost:      O(1).
//   - PassableComponents:   O(W×H), Memory: O(W×H).
//   - BreachPath:           O(W×H), Memory: O(W×H).
//   - ToAdjacencyGraph:     O(W×H), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid:   a grid was requested with a non-positive size.
//   - ErrOutOfBounds: a location lies outside the grid.
package gridgraph
