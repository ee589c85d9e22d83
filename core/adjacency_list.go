package core

import (
	"fmt"
	"math"
	"sync"
)

// AdjacencyGraph is a map-backed graph over comparable labels.
//
// Neighbors come back in edge insertion order, which makes search results
// reproducible. Each edge carries a float64 weight (1 for AddEdge), so an
// AdjacencyGraph satisfies both Graph[L] and WeightedGraph[L, float64].
// mu guards vertices, order and adj; all methods are safe for concurrent use.
type AdjacencyGraph[L comparable] struct {
	mu         sync.RWMutex
	undirected bool

	order    []L                 // vertices in first-seen order
	vertices map[L]struct{}      // membership
	adj      map[L][]L           // from → neighbors, insertion order
	weights  map[L]map[L]float64 // from → to → weight
}

// NewAdjacencyGraph creates an empty, directed graph unless WithUndirected is given.
// Complexity: O(1).
func NewAdjacencyGraph[L comparable](opts ...GraphOption) *AdjacencyGraph[L] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return &AdjacencyGraph[L]{
		undirected: o.undirected,
		vertices:   make(map[L]struct{}),
		adj:        make(map[L][]L),
		weights:    make(map[L]map[L]float64),
	}
}

// AddVertex inserts id if absent. Idempotent.
// Complexity: O(1).
func (g *AdjacencyGraph[L]) AddVertex(id L) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(id)
}

func (g *AdjacencyGraph[L]) addVertexLocked(id L) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = struct{}{}
	g.order = append(g.order, id)
}

// AddEdge adds a unit-weight edge from→to, auto-adding both vertices.
// Self-loops are allowed. Returns ErrMultiEdgeNotAllowed if the edge exists.
// Complexity: O(1) amortized.
func (g *AdjacencyGraph[L]) AddEdge(from, to L) error {
	return g.AddWeightedEdge(from, to, 1)
}

// AddWeightedEdge adds an edge from→to with weight w ≥ 0. NaN weights are
// rejected like negative ones.
// In undirected mode the mirror edge is added too (a self-loop is stored once).
// Complexity: O(1) amortized.
func (g *AdjacencyGraph[L]) AddWeightedEdge(from, to L, w float64) error {
	if w < 0 || math.IsNaN(w) {
		return fmt.Errorf("%w: %v→%v weight=%g", ErrNegativeWeight, from, to, w)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.weights[from][to]; ok {
		return fmt.Errorf("%w: %v→%v", ErrMultiEdgeNotAllowed, from, to)
	}
	g.addVertexLocked(from)
	g.addVertexLocked(to)
	g.link(from, to, w)
	if g.undirected && from != to {
		g.link(to, from, w)
	}

	return nil
}

// link records from→to; caller holds mu.
func (g *AdjacencyGraph[L]) link(from, to L, w float64) {
	if g.weights[from] == nil {
		g.weights[from] = make(map[L]float64)
	}
	g.weights[from][to] = w
	g.adj[from] = append(g.adj[from], to)
}

// HasVertex reports whether id is a vertex of g.
func (g *AdjacencyGraph[L]) HasVertex(id L) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices[id]

	return ok
}

// HasEdge reports whether from→to is an edge of g.
func (g *AdjacencyGraph[L]) HasEdge(from, to L) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.weights[from][to]

	return ok
}

// Vertices returns all vertices in first-seen order.
// Complexity: O(V).
func (g *AdjacencyGraph[L]) Vertices() []L {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]L, len(g.order))
	copy(out, g.order)

	return out
}

// Neighbors returns the out-neighbors of id in insertion order.
// Unknown vertices yield nil. The slice is a copy and safe to modify.
// Complexity: O(d).
func (g *AdjacencyGraph[L]) Neighbors(id L) []L {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs := g.adj[id]
	if len(nbrs) == 0 {
		return nil
	}
	out := make([]L, len(nbrs))
	copy(out, nbrs)

	return out
}

// Cost returns the weight of from→to. Unknown pairs return +1 so that
// searches never see a zero-cost phantom edge; use Weight for checked lookups.
func (g *AdjacencyGraph[L]) Cost(from, to L) float64 {
	w, err := g.Weight(from, to)
	if err != nil {
		return 1
	}

	return w
}

// Weight returns the weight of from→to, or ErrVertexNotFound / ErrEdgeNotFound.
func (g *AdjacencyGraph[L]) Weight(from, to L) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[from]; !ok {
		return 0, fmt.Errorf("%w: %v", ErrVertexNotFound, from)
	}
	w, ok := g.weights[from][to]
	if !ok {
		return 0, fmt.Errorf("%w: %v→%v", ErrEdgeNotFound, from, to)
	}

	return w, nil
}

// SampleGraph builds the five-vertex directed graph used throughout the docs:
//
//	A → B
//	B → A, C, D
//	C → A
//	D → E, A
//	E → B
func SampleGraph() *AdjacencyGraph[string] {
	g := NewAdjacencyGraph[string]()
	edges := [][2]string{
		{"A", "B"},
		{"B", "A"}, {"B", "C"}, {"B", "D"},
		{"C", "A"},
		{"D", "E"}, {"D", "A"},
		{"E", "B"},
	}
	for _, e := range edges {
		_ = g.AddEdge(e[0], e[1])
	}

	return g
}
