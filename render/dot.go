package render

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/awalterschulze/gographviz"
)

// DefaultGraphName names the DOT graph when DOT is called with "".
const DefaultGraphName = "came_from"

// DOT renders a came-from map as a Graphviz digraph with one edge
// predecessor → location per entry. Roots (locations that map to themselves)
// become double circles and get no self-edge. Node IDs are the quoted
// fmt.Sprint form of each location, and edges are emitted sorted by that form.
//
// Complexity: O(N log N), N = len(cameFrom).
func DOT[L comparable](cameFrom map[L]L, name string) (string, error) {
	if name == "" {
		name = DefaultGraphName
	}

	type link struct{ node, prev string }
	links := make([]link, 0, len(cameFrom))
	for node, prev := range cameFrom {
		links = append(links, link{node: fmt.Sprint(node), prev: fmt.Sprint(prev)})
	}
	sort.Slice(links, func(i, j int) bool { return links[i].node < links[j].node })

	graph := gographviz.NewGraph()
	if err := graph.SetName(strconv.Quote(name)); err != nil {
		return "", fmt.Errorf("render: dot: %w", err)
	}
	if err := graph.SetDir(true); err != nil {
		return "", fmt.Errorf("render: dot: %w", err)
	}
	if err := graph.AddAttr(graph.Name, "rankdir", "LR"); err != nil {
		return "", fmt.Errorf("render: dot: %w", err)
	}

	for _, l := range links {
		attrs := map[string]string{"shape": "circle"}
		if l.node == l.prev {
			attrs["shape"] = "doublecircle"
		}
		if err := graph.AddNode(graph.Name, strconv.Quote(l.node), attrs); err != nil {
			return "", fmt.Errorf("render: dot: node %s: %w", l.node, err)
		}
	}
	for _, l := range links {
		if l.node == l.prev {
			continue
		}
		if err := graph.AddEdge(strconv.Quote(l.prev), strconv.Quote(l.node), true, nil); err != nil {
			return "", fmt.Errorf("render: dot: edge %s→%s: %w", l.prev, l.node, err)
		}
	}

	return graph.String(), nil
}
