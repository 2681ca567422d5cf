package dfs

import (
	"github.com/katalvlaran/lvlwalk/core"
)

// ShortestPath walks from a with an explicit stack of (node, distance)
// frames and returns the distance at which b is first popped, or -1 when b
// is unreachable. a == b yields 0.
//
// Nodes are marked visited when pushed. Because a stack is not ordered by
// distance, the result is the length of some path from a to b and may
// exceed the true shortest distance; it agrees with bfs.ShortestPath on
// trees and other single-path topologies. bfs.ShortestPath is never larger.
// Complexity: O(V + E)
func ShortestPath(g *core.Graph, a, b string) int {
	visited := core.NewVisited(g.NodeCount())
	visited.Add(a)

	stack := []frame{{id: a, distance: 0}}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if current.id == b {
			return current.distance
		}
		for _, nbr := range g.Neighbors(current.id) {
			if visited.Add(nbr) {
				stack = append(stack, frame{id: nbr, distance: current.distance + 1})
			}
		}
	}

	return -1
}
