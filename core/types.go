// Package core defines the Graph and WeightedGraph contracts, the Cost
// constraint, and sentinel errors shared by the adjacency graph.
package core

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNegativeWeight indicates a negative or NaN edge weight was supplied.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Cost is the set of numeric types usable as step costs.
type Cost interface {
	constraints.Integer | constraints.Float
}

// Graph is the capability every search needs: list the locations adjacent to id.
//
// The returned order must be deterministic for a given id. An unknown or
// isolated id yields an empty (or nil) slice.
type Graph[L comparable] interface {
	Neighbors(id L) []L
}

// WeightedGraph is a Graph that also exposes the cost of stepping from one
// location to an adjacent one. Cost(from, to) is only meaningful when
// to is in Neighbors(from), and must be non-negative.
type WeightedGraph[L comparable, C Cost] interface {
	Graph[L]
	Cost(from, to L) C
}

// NeighborsFunc adapts an ordinary function to the Graph contract.
type NeighborsFunc[L comparable] func(id L) []L

// Neighbors calls f(id).
func (f NeighborsFunc[L]) Neighbors(id L) []L { return f(id) }

// uniform charges 1 for every step of the wrapped graph.
type uniform[L comparable, C Cost] struct {
	Graph[L]
}

// Cost always returns 1.
func (uniform[L, C]) Cost(_, _ L) C { return 1 }

// Uniform lifts an unweighted graph to a WeightedGraph where every edge costs 1,
// so any Graph can be searched with Dijkstra. Returns nil for a nil graph.
func Uniform[L comparable, C Cost](g Graph[L]) WeightedGraph[L, C] {
	if g == nil {
		return nil
	}

	return uniform[L, C]{Graph: g}
}

// GraphOption configures an AdjacencyGraph before use.
type GraphOption func(*options)

type options struct {
	undirected bool
}

// WithUndirected mirrors every added edge (to→from gets the same weight).
func WithUndirected() GraphOption {
	return func(o *options) { o.undirected = true }
}
