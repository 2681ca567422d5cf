// Package lvlwalk is a small toolkit of depth-first and breadth-first
// traversals over string-keyed graphs and labelled grids.
//
// 🚀 What is lvlwalk?
//
//	Two containers and the searches that walk them:
//		• core:      Graph with ordered node keys, adjacency lists and a stored edge list
//		• gridgraph: fixed-width Grid of labels, islands found by flood fill
//		• dfs:       recursive and stack-driven walks, reachability, components, distance
//		• bfs:       queue-driven walks, reachability, components, true shortest distance
//		• fixture:   named graphs and grids loaded from .hcl and .yaml files
//
// ✨ Why lvlwalk?
//
//   - Every algorithm comes in a DFS and a BFS flavour, side by side
//   - Construction is validated: bad edges and ragged rows return typed errors
//   - Observable walks through OnVisit / OnEnqueue hooks
//   - A command, cmd/lvlwalk, runs any algorithm against a fixture file
//
// Quick ASCII example:
//
//	    w───x
//	    │   │
//	    v   y
//	    │   │
//	    z───┘
//
//	represents the edge list [w x] [x y] [z y] [z v] [w v];
//	bfs.ShortestPath from w to z is 2.
//
// Traversal order and directed has-path keep no visited set and expect an
// acyclic graph; the undirected, component and shortest-path searches are
// cycle-safe.
//
//	go run ./cmd/lvlwalk -algo shortest-path -variant bfs -graph shortest -src w -dst z fixture/testdata/suite
package lvlwalk
