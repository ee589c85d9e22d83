package core_test

import (
	"fmt"

	"github.com/katalvlaran/pathfind/core"
)

// ExampleAdjacencyGraph builds a small undirected weighted graph and queries it.
func ExampleAdjacencyGraph() {
	g := core.NewAdjacencyGraph[string](core.WithUndirected())
	_ = g.AddWeightedEdge("A", "B", 1)
	_ = g.AddWeightedEdge("B", "C", 2)
	_ = g.AddWeightedEdge("A", "C", 5)

	fmt.Println("vertices:", g.Vertices())
	fmt.Println("N(A):", g.Neighbors("A"))
	fmt.Println("cost C→B:", g.Cost("C", "B"))

	// Output:
	// vertices: [A B C]
	// N(A): [B C]
	// cost C→B: 2
}

// ExampleUniform feeds an unweighted function graph into a weighted contract.
func ExampleUniform() {
	line := core.NeighborsFunc[int](func(id int) []int {
		if id >= 3 {
			return nil
		}
		return []int{id + 1}
	})
	w := core.Uniform[int, float64](line)
	fmt.Println(w.Neighbors(0), w.Cost(0, 1), w.Neighbors(3))

	// Output:
	// [1] 1 []
}
