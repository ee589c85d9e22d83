package gridgraph

import "github.com/katalvlaran/pathfind/bfs"

// PassableComponents finds every contiguous region of passable tiles under
// 4-connectivity. Regions are discovered in row-major order of their first
// tile, and each region lists its tiles in BFS order from that tile.
//
// Time:   O(W·H).
// Memory: O(W·H) for the seen set and output.
func PassableComponents(g *SquareGrid) [][]Location {
	seen := make(map[Location]struct{}, g.Width*g.Height)
	var comps [][]Location

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			l := Location{X: x, Y: y}
			if !g.Passable(l) {
				continue // wall
			}
			if _, ok := seen[l]; ok {
				continue
			}
			// grid neighbors are symmetric, so one BFS collects the whole region
			res, _ := bfs.BFS[Location](g, l)
			for _, m := range res.Order {
				seen[m] = struct{}{}
			}
			comps = append(comps, res.Order)
		}
	}

	return comps
}
