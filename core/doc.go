// Package core provides the canonical Graph used by every traversal in lvlwalk:
// a string-keyed adjacency list with a stored edge list for undirected builds.
//
// A Graph is populated in one of two ways:
//
//   - AddNode(id, neighbors...) records (or overwrites) id's ordered neighbor list.
//     Lists may contain duplicates and self-loops; a neighbor that never becomes
//     a key is a dead end, not an error.
//   - AddEdge(a, b) stores a pair, and BuildGraphFromEdges clears all nodes and
//     inserts a→b and b→a for every stored pair in edge order.
//
// Why one type?
//
//   - Explicit node insertion models directed fixtures (has-path, traversal order).
//   - Edge-list construction models undirected fixtures (shortest path, undirected path).
//   - Both feed the same dfs and bfs packages through Neighbors and Nodes.
//
// Determinism:
//
//	Nodes() returns keys in first-insertion order and Neighbors() returns each
//	list in insertion order, so component scans and visit sequences are reproducible.
//
// Core Methods:
//
//	AddNode(id string, neighbors ...string)   // O(d)
//	AddEdge(pair ...string) error             // O(1), *ArityError unless len(pair)==2
//	BuildGraphFromEdges()                     // O(E), idempotent
//	Neighbors(id string) []string             // O(d), nil for absent key
//	Nodes() []string                          // O(V)
//	HasNode(id string) bool                   // O(1)
//	AdjacencyList() map[string][]string       // O(V+E) snapshot
//	Clone() *Graph                            // O(V+E) deep copy
//
// Visited is the per-call visited set passed explicitly through recursive helpers.
//
// Errors:
//
//	ErrArity – matched by every *ArityError (Expected, Actual endpoint counts).
//
// All methods are safe for concurrent use; a traversal assumes the graph is not
// mutated while it runs.
package core
