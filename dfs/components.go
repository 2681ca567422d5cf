package dfs

import (
	"github.com/katalvlaran/lvlwalk/core"
)

// ComponentsCount returns the number of connected components of g.
// Every unvisited node key seeds one guarded walk that claims everything
// reachable from it; each seed adds one to the count.
//
// The count reflects undirected components only when the adjacency list is
// reciprocal (for example, built with BuildGraphFromEdges).
// Complexity: O(V + E)
func ComponentsCount(g *core.Graph) int {
	visited := core.NewVisited(g.NodeCount())
	count := 0
	for _, id := range g.Nodes() {
		if visited.Has(id) {
			continue
		}
		explore(g, id, visited)
		count++
	}

	return count
}

// LargestComponent returns the node count of the largest connected
// component of g, or 0 for an empty graph. Each component is sized by the
// nodes first claimed during its own walk, including nodes that have no
// adjacency entry of their own.
// Complexity: O(V + E)
func LargestComponent(g *core.Graph) int {
	visited := core.NewVisited(g.NodeCount())
	largest := 0
	for _, id := range g.Nodes() {
		if size := componentSize(g, id, visited); size > largest {
			largest = size
		}
	}

	return largest
}

// explore marks every node reachable from src.
func explore(g *core.Graph, src string, visited core.Visited) {
	if !visited.Add(src) {
		return
	}
	for _, nbr := range g.Neighbors(src) {
		explore(g, nbr, visited)
	}
}

// componentSize marks every node reachable from src and returns how many
// of them were not visited before the call.
func componentSize(g *core.Graph, src string, visited core.Visited) int {
	if !visited.Add(src) {
		return 0
	}
	size := 1
	for _, nbr := range g.Neighbors(src) {
		size += componentSize(g, nbr, visited)
	}

	return size
}
