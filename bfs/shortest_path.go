package bfs

import (
	"github.com/katalvlaran/lvlwalk/core"
)

// ShortestPath returns the number of edges on a shortest path from a to b,
// or -1 when b is unreachable. a == b yields 0.
//
// Level-order search: a starts at distance 0, each neighbor discovered for
// the first time is queued at distance+1, and the first dequeue of b
// returns its distance.
// Complexity: O(V + E)
func ShortestPath(g *core.Graph, a, b string) int {
	visited := core.NewVisited(g.NodeCount())
	visited.Add(a)

	queue := []queueItem{{id: a, distance: 0}}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if current.id == b {
			return current.distance
		}
		for _, nbr := range g.Neighbors(current.id) {
			if visited.Add(nbr) {
				queue = append(queue, queueItem{id: nbr, distance: current.distance + 1})
			}
		}
	}

	return -1
}
