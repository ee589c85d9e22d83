// Package core defines the graph contracts every search in pathfind consumes,
// plus a small thread-safe adjacency graph for labeled vertices.
//
// What
//
//   - Graph[L]: enumerate the neighbors of a location, in a deterministic order.
//   - WeightedGraph[L, C]: a Graph that also reports a non-negative step cost.
//   - Cost: the numeric constraint for step costs (any integer or float type).
//   - Uniform(g): lift an unweighted Graph to a WeightedGraph with cost 1 per edge.
//   - NeighborsFunc: adapt a plain function to the Graph contract.
//   - AdjacencyGraph[L]: map-backed graph with insertion-ordered neighbors.
//
// Locations are any comparable Go type, so equality and hashing are total and
// consistent by construction (labels, ints, small structs such as grid cells).
//
// Determinism
//
//	Neighbor order decides tie-breaking in every search. Implementations must
//	return the same order for the same location on every call. AdjacencyGraph
//	returns neighbors in the order the edges were added.
//
// Dead ends
//
//	A location with no neighbors (or one the graph has never heard of) yields an
//	empty slice. That is not an error.
//
// Complexity (AdjacencyGraph)
//
//   - AddVertex, AddEdge, HasVertex, HasEdge, Cost: O(1) amortized.
//   - Neighbors: O(d) for the defensive copy, d = out-degree.
//   - Vertices:  O(V).
//
// Errors
//
//   - ErrVertexNotFound       Cost was asked for an unknown vertex.
//   - ErrEdgeNotFound         Cost was asked for a pair that is not an edge.
//   - ErrNegativeWeight       AddWeightedEdge got a negative weight.
//   - ErrMultiEdgeNotAllowed  the same from→to edge was added twice.
package core
