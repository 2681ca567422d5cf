// Package dfs implements depth-first algorithms on a core.Graph.
//
// What:
//
//   - OrderIterative / OrderRecursive: visit sequence from a source. The
//     iterative walk pops the last-pushed neighbor first; the recursive walk
//     descends in adjacency order. For a:[c b], b:[d], c:[e], d:[f]
//     they yield a b d f c e and a c e b d f respectively.
//   - HasPath: directed reachability without a visited set (acyclic graphs only).
//   - UndirectedPath: visited-guarded reachability, safe on cycles.
//   - ComponentsCount / LargestComponent: one guarded walk per unvisited node key.
//   - ShortestPath: stack of (node, distance) frames; returns a path length
//     that upper-bounds the true distance.
//
// Why:
//
//   - Recursive descent is the natural shape for reachability and flood fill.
//   - The iterative walk bounds Go stack growth on long chains.
//
// Visited sets:
//
//	Every guarded algorithm allocates a fresh core.Visited per call and passes
//	it explicitly to its recursive helpers. Component scans thread one set
//	across all seeds.
//
// Complexity:
//
//   - All guarded algorithms: Time O(V+E), Memory O(V) (set plus recursion).
//   - Order walks and HasPath: O(V+E) on trees; unbounded on cyclic input.
//
// Options:
//
//   - WithOnVisit(fn)   hook called for every node appended to an order walk.
//
// Nothing in this package returns an error: unreachable is false and a
// missing path is -1.
package dfs
