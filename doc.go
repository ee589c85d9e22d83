// Package pathfind is a small toolkit for route planning on graphs and grids.
//
// What is inside?
//
//	core/      - Graph and WeightedGraph interfaces, an adjacency-list graph
//	pq/        - a generic min-priority queue with FIFO tie-breaking
//	bfs/       - breadth-first search producing a came-from tree
//	dijkstra/  - cheapest-route search, A* through a heuristic option
//	path/      - rebuilding and checking routes from came-from maps
//	gridgraph/ - square and weighted grids (walls, forests) as graphs
//	render/    - text pictures of grids and Graphviz output of search trees
//	scenario/  - YAML board descriptions
//	cmd/       - the pathfind command-line tool
//
// Every search writes its results into plain maps, so the pieces compose:
//
//	g := gridgraph.Diagram4()
//	res, _ := dijkstra.Dijkstra[gridgraph.Location, float64](g, start, goal)
//	route, _ := res.Path()
//	_ = render.Draw(os.Stdout, g, render.WithPath(route))
//
// A tiny board:
//
//	A  .  #
//	.  #  .
//	.  .  Z
//
// Walls (#) are impassable, forests cost more to enter than open tiles, and
// A and Z mark the start and goal.
//
//	go get github.com/katalvlaran/pathfind
package pathfind
