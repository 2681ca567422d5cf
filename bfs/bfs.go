// Package bfs implements breadth-first traversals over a core.Graph:
// visit order, reachability, component counting and sizing, and
// unweighted shortest-path distance.
package bfs

import (
	"github.com/katalvlaran/lvlwalk/core"
)

// Order returns the visit sequence of a queue-driven walk from src: nodes
// are visited in enqueue order, each node's neighbors in adjacency order.
//
// No visited guard is applied: g must be acyclic from src or the walk never ends.
// Complexity: O(V + E) on a tree.
func Order(g *core.Graph, src string, opts ...Option) []string {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var order []string
	queue := []string{src}
	o.OnEnqueue(src)
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		order = append(order, current)
		o.OnVisit(current)
		for _, nbr := range g.Neighbors(current) {
			queue = append(queue, nbr)
			o.OnEnqueue(nbr)
		}
	}

	return order
}

// HasPath reports whether dst is reachable from src following directed
// adjacency, checking each node as it is dequeued. src == dst is reachable.
//
// HasPath keeps no visited set and assumes g is acyclic; on a cycle
// reachable from src that does not lead to dst it does not terminate.
// Use UndirectedPath for cyclic graphs.
func HasPath(g *core.Graph, src, dst string) bool {
	queue := []string{src}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if current == dst {
			return true
		}
		queue = append(queue, g.Neighbors(current)...)
	}

	return false
}

// UndirectedPath reports whether a and b are connected. It is intended for
// graphs built with BuildGraphFromEdges, where every edge is reciprocal, but
// is cycle-safe on any graph.
// Complexity: O(V + E)
func UndirectedPath(g *core.Graph, a, b string) bool {
	return hasPathGuarded(g, a, b, core.NewVisited(g.NodeCount()))
}

// hasPathGuarded compares each dequeued node with dst before consulting
// visited, and skips expanding nodes that were already processed.
func hasPathGuarded(g *core.Graph, src, dst string, visited core.Visited) bool {
	queue := []string{src}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if current == dst {
			return true
		}
		if !visited.Add(current) {
			continue
		}
		queue = append(queue, g.Neighbors(current)...)
	}

	return false
}

// claim runs a guarded walk from src, marking everything reachable in
// visited, and returns how many nodes it newly marked. Nodes without an
// adjacency entry are counted like any other.
func claim(g *core.Graph, src string, visited core.Visited) int {
	claimed := 0
	queue := []string{src}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if !visited.Add(current) {
			continue
		}
		claimed++
		queue = append(queue, g.Neighbors(current)...)
	}

	return claimed
}
