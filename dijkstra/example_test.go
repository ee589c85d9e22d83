package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/pathfind/core"
	"github.com/katalvlaran/pathfind/dijkstra"
	"github.com/katalvlaran/pathfind/gridgraph"
	"github.com/katalvlaran/pathfind/path"
)

// ExampleSearch demonstrates the caller-owned map form on a small triangle.
// Going A→B→C (1+2) beats the direct edge A→C (5).
func ExampleSearch() {
	g := core.NewAdjacencyGraph[string](core.WithUndirected())
	_ = g.AddWeightedEdge("A", "B", 1)
	_ = g.AddWeightedEdge("B", "C", 2)
	_ = g.AddWeightedEdge("A", "C", 5)

	cameFrom := map[string]string{}
	costSoFar := map[string]float64{}
	if err := dijkstra.Search[string, float64](g, "A", "C", cameFrom, costSoFar); err != nil {
		fmt.Println("error:", err)
		return
	}

	route, _ := path.Reconstruct("A", "C", cameFrom)
	fmt.Println(route, costSoFar["C"])
	// Output: [A B C] 3
}

// ExampleDijkstra_Diagram4 runs the weighted demo board from (1,4) to (8,3);
// the cheapest route skirts the forest band to the north.
func ExampleDijkstra_diagram4() {
	g := gridgraph.Diagram4()
	start, goal := gridgraph.Location{X: 1, Y: 4}, gridgraph.Location{X: 8, Y: 3}

	res, err := dijkstra.Dijkstra[gridgraph.Location, float64](g, start, goal)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	route, _ := res.Path()
	fmt.Println(res.CostSoFar[goal], len(route)-1)
	fmt.Println(route[:5])
	// Output:
	// 14 14
	// [(1,4) (2,4) (2,3) (3,3) (3,2)]
}

// ExampleWithHeuristic turns the same search into A* with the Manhattan
// distance; the cost is unchanged while fewer tiles are expanded.
func ExampleWithHeuristic() {
	g := gridgraph.Diagram4()
	start, goal := gridgraph.Location{X: 1, Y: 4}, gridgraph.Location{X: 8, Y: 3}

	plain, _ := dijkstra.Dijkstra[gridgraph.Location, float64](g, start, goal)
	astar, _ := dijkstra.Dijkstra[gridgraph.Location, float64](g, start, goal,
		dijkstra.WithHeuristic[gridgraph.Location, float64](gridgraph.Manhattan))

	fmt.Println(plain.CostSoFar[goal] == astar.CostSoFar[goal])
	fmt.Println(astar.Expanded < plain.Expanded)
	// Output:
	// true
	// true
}

// ExampleWithNoGoal computes single-source costs to every reachable vertex.
func ExampleWithNoGoal() {
	g := core.NewAdjacencyGraph[string]()
	_ = g.AddWeightedEdge("S", "A", 4)
	_ = g.AddWeightedEdge("S", "B", 1)
	_ = g.AddWeightedEdge("B", "A", 2)
	_ = g.AddWeightedEdge("A", "C", 1)

	res, _ := dijkstra.Dijkstra[string, float64](g, "S", "",
		dijkstra.WithNoGoal[string, float64]())
	for _, v := range []string{"S", "A", "B", "C"} {
		fmt.Printf("%s=%g ", v, res.CostSoFar[v])
	}
	fmt.Println("|", res.Expanded)
	// Output: S=0 A=3 B=1 C=4 | 4
}
