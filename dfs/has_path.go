package dfs

import (
	"github.com/katalvlaran/lvlwalk/core"
)

// HasPath reports whether dst is reachable from src following directed
// adjacency, recursing into neighbors in order and returning on the first hit.
// src == dst is reachable.
//
// HasPath keeps no visited set and assumes g is acyclic; on a cycle
// reachable from src that does not lead to dst it does not terminate.
// Use UndirectedPath for cyclic graphs.
func HasPath(g *core.Graph, src, dst string) bool {
	if src == dst {
		return true
	}
	for _, nbr := range g.Neighbors(src) {
		if HasPath(g, nbr, dst) {
			return true
		}
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

// hasPathGuarded is the visited-guarded recursive reachability check.
// The destination test runs before the visited test, so reaching dst
// through an already-visited node still succeeds.
func hasPathGuarded(g *core.Graph, src, dst string, visited core.Visited) bool {
	if src == dst {
		return true
	}
	if !visited.Add(src) {
		return false
	}
	for _, nbr := range g.Neighbors(src) {
		if hasPathGuarded(g, nbr, dst, visited) {
			return true
		}
	}

	return false
}
