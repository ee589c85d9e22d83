package dijkstra_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/pathfind/core"
	"github.com/katalvlaran/pathfind/dijkstra"
	"github.com/katalvlaran/pathfind/gridgraph"
)

// openGrid builds an n×n weighted grid with a random sprinkling of walls and forests.
func openGrid(b *testing.B, n int) *gridgraph.WeightedGrid {
	b.Helper()
	rnd := rand.New(rand.NewSource(42))
	g, err := gridgraph.NewWeightedGrid(n, n)
	if err != nil {
		b.Fatal(err)
	}
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			l := gridgraph.Location{X: x, Y: y}
			switch r := rnd.Intn(10); {
			case r == 0 && l != (gridgraph.Location{}) && l != (gridgraph.Location{X: n - 1, Y: n - 1}):
				_ = g.AddWall(l)
			case r < 3:
				_ = g.AddForest(l)
			}
		}
	}

	return g
}

// BenchmarkDijkstra_Grid measures corner-to-corner search on a 200×200 grid.
// Complexity: O((V+E) log E)
func BenchmarkDijkstra_Grid(b *testing.B) {
	const n = 200
	g := openGrid(b, n)
	goal := gridgraph.Location{X: n - 1, Y: n - 1}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.Dijkstra[gridgraph.Location, float64](g, gridgraph.Location{}, goal)
	}
}

// BenchmarkAStar_Grid is the same search guided by the Manhattan heuristic.
func BenchmarkAStar_Grid(b *testing.B) {
	const n = 200
	g := openGrid(b, n)
	goal := gridgraph.Location{X: n - 1, Y: n - 1}
	h := dijkstra.WithHeuristic[gridgraph.Location, float64](gridgraph.Manhattan)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.Dijkstra[gridgraph.Location, float64](g, gridgraph.Location{}, goal, h)
	}
}

// BenchmarkDijkstra_RandomSparse settles every vertex of a sparse random digraph.
func BenchmarkDijkstra_RandomSparse(b *testing.B) {
	const V = 5000
	const E = 20000

	rnd := rand.New(rand.NewSource(42))
	g := core.NewAdjacencyGraph[int]()
	for i := 0; i < V; i++ {
		g.AddVertex(i)
	}
	for k := 0; k < E; k++ {
		_ = g.AddWeightedEdge(rnd.Intn(V), rnd.Intn(V), float64(1+rnd.Intn(100)))
	}
	all := dijkstra.WithNoGoal[int, float64]()

	b.ReportAllocs()
	b.SetBytes(int64(V + E))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.Dijkstra[int, float64](g, 0, -1, all)
	}
}
