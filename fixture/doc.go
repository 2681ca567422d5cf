// Package fixture loads named graphs and grids from definition files.
//
// What:
//
//	Two formats describe the same model. HCL files hold `graph "name"` and
//	`grid "name"` blocks; YAML files hold `graphs:` and `grids:` lists.
//	A graph is declared either node by node (adjacency lists, applied
//	with core.Graph.AddNode in file order) or as an undirected edge list
//	(applied with AddEdge followed by BuildGraphFromEdges). A grid is
//	declared as a width plus rows of labels, applied row by row through
//	gridgraph.Grid.AddRow. HCL grids may use the bare words land and water
//	for the default labels.
//
//	graph "components" {
//	  node "0" { neighbors = ["8", "1", "5"] }
//	  node "1" { neighbors = ["0"] }
//	}
//
//	graph "shortest" {
//	  edges = [["w", "x"], ["x", "y"], ["z", "y"]]
//	}
//
//	grid "islands" {
//	  width = 3
//	  rows  = [
//	    [water, land, water],
//	    [land, land, water],
//	  ]
//	}
//
// Errors:
//
//	Construction errors (*core.ArityError, *gridgraph.RowLengthError,
//	gridgraph.ErrEmptyGrid) are wrapped with the fixture name, so callers
//	can still match them with errors.Is / errors.As.
//	ErrDuplicateName is returned when two definitions of the same kind
//	share a name; ErrNotFound when a lookup misses.
//
// Concurrency:
//
//	LoadDir decodes files in parallel and merges them in lexical path
//	order, so the result does not depend on scheduling. A loaded *Set is
//	read-only and safe for concurrent lookups.
package fixture
