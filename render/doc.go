// Package render draws search results on a grid as text, and exports a
// came-from tree as Graphviz DOT.
//
// Draw shows one overlay per tile (walls, the start and goal markers, the
// route, arrows from a came-from map, or numbers from a cost map) and can
// color them with lipgloss. DOT works with any location type.
package render
