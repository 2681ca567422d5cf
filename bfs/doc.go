// Package bfs provides breadth-first algorithms over a core.Graph.
//
// What
//
//   - Order: visit sequence in enqueue order, no visited guard.
//   - HasPath: directed reachability without a visited set (acyclic graphs only).
//   - UndirectedPath: visited-guarded reachability, safe on cycles.
//   - ComponentsCount: one walk per node key over a shared visited set,
//     counting the walks that enlarge it.
//   - LargestComponent: size of the largest set of nodes claimed by one walk.
//   - ShortestPath: level-order unweighted distance, -1 when unreachable.
//
// Why
//
//   - Level order gives true shortest distances in O(V + E).
//   - Iteration keeps stack usage flat regardless of graph depth.
//
// Determinism
//
//	core.Graph keeps node keys and neighbor lists in insertion order, so every
//	visit sequence and every component scan is reproducible.
//
// Complexity (V = node keys, E = adjacency entries)
//
//   - Guarded algorithms: Time O(V + E), Memory O(V).
//   - Order and HasPath: O(V + E) on trees; unbounded on cyclic input.
//
// Options
//
//   - WithOnEnqueue(fn):  hook after a node is queued by Order.
//   - WithOnVisit(fn):    hook when Order dequeues and records a node.
//
// Guarantees
//
//	ShortestPath(g, a, b) <= dfs.ShortestPath(g, a, b) whenever b is reachable.
package bfs
