package core_test

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/katalvlaran/pathfind/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAdjacencyGraph_InsertionOrder checks that neighbors keep the order edges were added.
func TestAdjacencyGraph_InsertionOrder(t *testing.T) {
	g := core.NewAdjacencyGraph[string]()
	require.NoError(t, g.AddEdge("B", "D"))
	require.NoError(t, g.AddEdge("B", "A"))
	require.NoError(t, g.AddEdge("B", "C"))

	assert.Equal(t, []string{"D", "A", "C"}, g.Neighbors("B"))
	assert.Equal(t, []string{"B", "D", "A", "C"}, g.Vertices())
}

// TestAdjacencyGraph_DeadEnds checks that unknown and sink vertices yield no neighbors.
func TestAdjacencyGraph_DeadEnds(t *testing.T) {
	g := core.NewAdjacencyGraph[int]()
	g.AddVertex(1)
	require.NoError(t, g.AddEdge(2, 3))

	assert.Empty(t, g.Neighbors(1), "isolated vertex")
	assert.Empty(t, g.Neighbors(3), "sink vertex")
	assert.Empty(t, g.Neighbors(42), "unknown vertex")
	assert.False(t, g.HasVertex(42))
}

// TestAdjacencyGraph_NeighborsIsCopy ensures callers cannot corrupt adjacency.
func TestAdjacencyGraph_NeighborsIsCopy(t *testing.T) {
	g := core.NewAdjacencyGraph[string]()
	require.NoError(t, g.AddEdge("A", "B"))

	nbrs := g.Neighbors("A")
	nbrs[0] = "Z"
	assert.Equal(t, []string{"B"}, g.Neighbors("A"))
}

// TestAdjacencyGraph_Undirected mirrors edges and keeps self-loops single.
func TestAdjacencyGraph_Undirected(t *testing.T) {
	g := core.NewAdjacencyGraph[string](core.WithUndirected())
	require.NoError(t, g.AddWeightedEdge("A", "B", 2.5))
	require.NoError(t, g.AddEdge("C", "C"))

	assert.True(t, g.HasEdge("B", "A"))
	assert.Equal(t, 2.5, g.Cost("B", "A"))
	assert.Equal(t, []string{"C"}, g.Neighbors("C"))

	err := g.AddEdge("B", "A")
	assert.True(t, errors.Is(err, core.ErrMultiEdgeNotAllowed), "mirror counts as existing edge, got %v", err)
}

// TestAdjacencyGraph_Errors covers the sentinel errors.
func TestAdjacencyGraph_Errors(t *testing.T) {
	g := core.NewAdjacencyGraph[string]()

	err := g.AddWeightedEdge("A", "B", -1)
	require.ErrorIs(t, err, core.ErrNegativeWeight)
	assert.False(t, g.HasVertex("A"), "rejected edge must not add vertices")

	err = g.AddWeightedEdge("A", "B", math.NaN())
	require.ErrorIs(t, err, core.ErrNegativeWeight)
	assert.False(t, g.HasVertex("A"), "NaN weight must be rejected too")

	require.NoError(t, g.AddEdge("A", "B"))
	require.ErrorIs(t, g.AddEdge("A", "B"), core.ErrMultiEdgeNotAllowed)

	_, err = g.Weight("X", "B")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Weight("B", "A")
	require.ErrorIs(t, err, core.ErrEdgeNotFound)

	w, err := g.Weight("A", "B")
	require.NoError(t, err)
	assert.Equal(t, 1.0, w)
}

// TestSampleGraph pins the five-vertex fixture.
func TestSampleGraph(t *testing.T) {
	g := core.SampleGraph()
	want := map[string][]string{
		"A": {"B"},
		"B": {"A", "C", "D"},
		"C": {"A"},
		"D": {"E", "A"},
		"E": {"B"},
	}
	for v, nbrs := range want {
		assert.Equal(t, nbrs, g.Neighbors(v), "Neighbors(%s)", v)
	}
	assert.Len(t, g.Vertices(), 5)
}

// TestAdjacencyGraph_Concurrent adds edges from many goroutines.
func TestAdjacencyGraph_Concurrent(t *testing.T) {
	g := core.NewAdjacencyGraph[string]()
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)
	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			require.NoError(t, g.AddEdge("X", fmt.Sprintf("V%d", id)))
			_ = g.Neighbors("X")
		}(i)
	}
	wg.Wait()

	assert.Len(t, g.Neighbors("X"), num)
}
