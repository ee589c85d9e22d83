package gridgraph

import (
	"container/list"

	"github.com/katalvlaran/pathfind/path"
)

// BreachPath finds a route from one tile to another that crosses the fewest
// walls, as if each wall could be knocked down at a price of 1 while open
// tiles are free. It returns the route (both ends included) and the number of
// walls it enters.
//
// Behavior:
//  1. Validate both locations (ErrOutOfBounds).
//  2. 0–1 BFS from `from`:
//     • Moving onto an open tile → cost 0, pushed to the front
//     • Moving onto a wall       → cost 1, pushed to the back
//  3. Stop when `to` is popped.
//  4. Reconstruct the route via predecessors.
//
// A result of 0 walls means the tiles are already connected.
//
// Complexity: O(W·H) time and memory.
func (g *SquareGrid) BreachPath(from, to Location) ([]Location, int, error) {
	if !g.InBounds(from) || !g.InBounds(to) {
		return nil, 0, ErrOutOfBounds
	}

	dist := map[Location]int{from: 0}
	prev := map[Location]Location{from: from}

	// 0–1 BFS: deque processes cost0 at front, cost1 at back
	dq := list.New()
	dq.PushFront(from)

	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(Location)
		if u == to {
			break
		}
		for _, d := range g.Directions() {
			v := u.Add(d)
			if !g.InBounds(v) {
				continue
			}
			step := 0
			if g.IsWall(v) {
				step = 1
			}
			nd := dist[u] + step
			if old, ok := dist[v]; ok && nd >= old {
				continue
			}
			dist[v] = nd
			prev[v] = u
			if step == 0 {
				dq.PushFront(v)
			} else {
				dq.PushBack(v)
			}
		}
	}

	// every in-bounds tile is reachable once walls are breakable
	route, err := path.Reconstruct(from, to, prev)
	if err != nil {
		return nil, 0, err
	}

	return route, dist[to], nil
}
