package bfs

import (
	"github.com/katalvlaran/lvlwalk/core"
)

// ComponentsCount returns the number of connected components of g.
// A walk runs from every node key against one shared visited set; the
// count grows only when a walk enlarges that set. Walks from already
// claimed nodes run but add nothing.
//
// The count reflects undirected components only when the adjacency list is
// reciprocal (for example, built with BuildGraphFromEdges).
// Complexity: O(V + E)
func ComponentsCount(g *core.Graph) int {
	visited := core.NewVisited(g.NodeCount())
	count := 0
	for _, id := range g.Nodes() {
		before := visited.Len()
		claim(g, id, visited)
		if visited.Len() != before {
			count++
		}
	}

	return count
}

// LargestComponent returns the node count of the largest connected
// component of g, or 0 for an empty graph. Every newly claimed node counts,
// including nodes with no adjacency entry, so the result always equals
// dfs.LargestComponent.
// Complexity: O(V + E)
func LargestComponent(g *core.Graph) int {
	visited := core.NewVisited(g.NodeCount())
	largest := 0
	for _, id := range g.Nodes() {
		if size := claim(g, id, visited); size > largest {
			largest = size
		}
	}

	return largest
}
