// Package dijkstra implements cheapest-route search on weighted graphs with
// non-negative step costs, with A* available through the same loop.
//
// Overview:
//
//   - Search mutates two caller-owned maps: came-from (location → predecessor)
//     and cost-so-far (location → cheapest known cumulative cost).
//   - Dijkstra is the convenience form that allocates the maps and returns a
//     Result with the goal status and expansion count.
//   - The frontier is a min-priority queue (package pq). A location is queued
//     every time its cost improves; older entries stay behind and are skipped
//     when popped, because the cost they were pushed with no longer matches.
//   - The search stops the moment the goal is popped. Step costs are
//     non-negative, so nothing left in the frontier can beat it.
//
// A*:
//
//	The queue key defaults to the cumulative cost. WithHeuristic adds an
//	estimate of the remaining cost to the goal; WithPriority replaces the key
//	outright. Neither changes relaxation or termination, so admissible
//	heuristics still produce optimal routes while usually expanding fewer
//	locations.
//
// Key features:
//
//   - WithNoGoal: settle the full reachable component (single-source costs).
//   - WithMaxCost: do not record locations beyond a cost budget.
//   - WithOnExpand: observe expansions in order.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log E), E pushes at most, each O(log E).
//   - Space: O(V + E) for the maps and the lazily cleaned frontier.
//
// Error handling (sentinel errors):
//
//   - ErrGraphNil:        the graph is nil.
//   - ErrNilMap:          Search got a nil output map.
//   - ErrNegativeCost:    the graph reported a negative or NaN step cost.
//   - ErrOptionViolation: an Option was invalid (e.g. negative MaxCost).
//
// Usage:
//
//	cameFrom := map[Loc]Loc{}
//	costSoFar := map[Loc]int{}
//	err := dijkstra.Search[Loc, int](grid, start, goal, cameFrom, costSoFar)
//	route, err := path.Reconstruct(start, goal, cameFrom)
package dijkstra
