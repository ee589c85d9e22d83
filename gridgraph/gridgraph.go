package gridgraph

import (
	"sort"

	"github.com/katalvlaran/pathfind/core"
)

// ForestCost is the default price of stepping onto a forest tile.
const ForestCost = 5.0

// SquareGrid is a Width×Height board of tiles, some of them walls.
// It satisfies core.Graph[Location]. Mutate it only before searching.
type SquareGrid struct {
	Width, Height int
	walls         map[Location]struct{}
}

// NewSquareGrid returns an empty w×h grid.
// Returns ErrEmptyGrid if w or h is not positive.
// Complexity: O(1).
func NewSquareGrid(w, h int) (*SquareGrid, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyGrid
	}

	return &SquareGrid{Width: w, Height: h, walls: make(map[Location]struct{})}, nil
}

// Directions returns the four orthogonal steps in the order Neighbors
// tries them: east, west, north, south.
func (g *SquareGrid) Directions() [4]Location {
	return [4]Location{{1, 0}, {-1, 0}, {0, -1}, {0, 1}}
}

// Dimensions returns the grid's width and height.
func (g *SquareGrid) Dimensions() (int, int) {
	return g.Width, g.Height
}

// InBounds reports whether l lies within the grid boundaries.
// Complexity: O(1).
func (g *SquareGrid) InBounds(l Location) bool {
	return l.X >= 0 && l.X < g.Width && l.Y >= 0 && l.Y < g.Height
}

// Passable reports whether l is not a wall.
func (g *SquareGrid) Passable(l Location) bool {
	_, wall := g.walls[l]

	return !wall
}

// IsWall reports whether l is a wall.
func (g *SquareGrid) IsWall(l Location) bool {
	return !g.Passable(l)
}

// AddWall turns l into a wall. Returns ErrOutOfBounds outside the grid.
func (g *SquareGrid) AddWall(l Location) error {
	if !g.InBounds(l) {
		return ErrOutOfBounds
	}
	g.walls[l] = struct{}{}

	return nil
}

// AddRect walls off the half-open rectangle [x1,x2)×[y1,y2).
// Cells falling outside the grid are ignored; an empty range adds nothing.
func (g *SquareGrid) AddRect(x1, y1, x2, y2 int) {
	for x := x1; x < x2; x++ {
		for y := y1; y < y2; y++ {
			_ = g.AddWall(Location{X: x, Y: y})
		}
	}
}

// Walls returns every wall in row-major order.
func (g *SquareGrid) Walls() []Location {
	return sortedKeys(g.walls)
}

// Neighbors returns the in-bounds, passable orthogonal neighbors of l.
// The order is east, west, north, south, reversed on tiles where x+y is
// even; alternating the order makes ties break into straighter-looking
// staircase routes instead of one long leg followed by another.
// Complexity: O(1).
func (g *SquareGrid) Neighbors(l Location) []Location {
	out := make([]Location, 0, 4)
	for _, d := range g.Directions() {
		next := l.Add(d)
		if g.InBounds(next) && g.Passable(next) {
			out = append(out, next)
		}
	}
	if (l.X+l.Y)%2 == 0 {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}

	return out
}

// ToAdjacencyGraph materializes the grid as a weighted directed graph: one
// vertex per passable tile, one unit-weight edge per Neighbors entry.
// Complexity: O(W×H), Memory: O(W×H).
func (g *SquareGrid) ToAdjacencyGraph() *core.AdjacencyGraph[Location] {
	return toAdjacency(g, func(_, _ Location) float64 { return 1 })
}

// WeightedGrid is a SquareGrid whose tiles may be forest. Entering a forest
// tile costs ForestCost, entering any other tile costs 1.
// It satisfies core.WeightedGraph[Location, float64].
type WeightedGrid struct {
	*SquareGrid
	ForestCost float64
	forests    map[Location]struct{}
}

// NewWeightedGrid returns an empty w×h grid with ForestCost set to the default.
// Returns ErrEmptyGrid if w or h is not positive.
func NewWeightedGrid(w, h int) (*WeightedGrid, error) {
	sq, err := NewSquareGrid(w, h)
	if err != nil {
		return nil, err
	}

	return &WeightedGrid{SquareGrid: sq, ForestCost: ForestCost, forests: make(map[Location]struct{})}, nil
}

// AddForest marks l as forest. Returns ErrOutOfBounds outside the grid.
func (g *WeightedGrid) AddForest(l Location) error {
	if !g.InBounds(l) {
		return ErrOutOfBounds
	}
	g.forests[l] = struct{}{}

	return nil
}

// IsForest reports whether l is a forest tile.
func (g *WeightedGrid) IsForest(l Location) bool {
	_, ok := g.forests[l]

	return ok
}

// Forests returns every forest tile in row-major order.
func (g *WeightedGrid) Forests() []Location {
	return sortedKeys(g.forests)
}

// Cost is the price of stepping from one tile onto an adjacent tile; it
// depends only on the destination.
func (g *WeightedGrid) Cost(_, to Location) float64 {
	if g.IsForest(to) {
		return g.ForestCost
	}

	return 1
}

// ToAdjacencyGraph materializes the grid with forest-aware edge weights.
func (g *WeightedGrid) ToAdjacencyGraph() *core.AdjacencyGraph[Location] {
	return toAdjacency(g.SquareGrid, g.Cost)
}

// Diagram4 builds the 10×10 demo board: a wall block over x∈[1,4), y∈[7,9)
// and a band of 27 forest tiles through the middle.
func Diagram4() *WeightedGrid {
	g, _ := NewWeightedGrid(10, 10)
	g.AddRect(1, 7, 4, 9)
	for _, l := range diagram4Forests {
		_ = g.AddForest(l)
	}

	return g
}

var diagram4Forests = [...]Location{
	{3, 4}, {3, 5}, {4, 1}, {4, 2},
	{4, 3}, {4, 4}, {4, 5}, {4, 6},
	{4, 7}, {4, 8}, {5, 1}, {5, 2},
	{5, 3}, {5, 4}, {5, 5}, {5, 6},
	{5, 7}, {5, 8}, {6, 2}, {6, 3},
	{6, 4}, {6, 5}, {6, 6}, {6, 7},
	{7, 3}, {7, 4}, {7, 5},
}

// toAdjacency walks every passable tile row-major and links it to its
// neighbors in Neighbors order.
func toAdjacency(g *SquareGrid, cost func(from, to Location) float64) *core.AdjacencyGraph[Location] {
	ag := core.NewAdjacencyGraph[Location]()
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			u := Location{X: x, Y: y}
			if !g.Passable(u) {
				continue
			}
			ag.AddVertex(u)
			for _, v := range g.Neighbors(u) {
				_ = ag.AddWeightedEdge(u, v, cost(u, v))
			}
		}
	}

	return ag
}

func sortedKeys(set map[Location]struct{}) []Location {
	out := make([]Location, 0, len(set))
	for l := range set {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out
}
