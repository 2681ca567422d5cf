// Package core defines the central Graph type: a string-keyed adjacency list
// that can be filled node by node or rebuilt from a stored edge list.
//
// This file declares Graph, the ArityError validation error, its sentinel,
// and the NewGraph constructor.
//
// Errors:
//
//	ErrArity - an edge pair does not have exactly two endpoints.
package core

import (
	"errors"
	"fmt"
	"sync"
)

// EdgeArity is the number of endpoints every stored edge must have.
const EdgeArity = 2

// ErrArity indicates an edge was given with a number of endpoints other than EdgeArity.
// Every *ArityError matches it under errors.Is.
var ErrArity = errors.New("core: edge must have exactly two endpoints")

// ArityError reports an AddEdge call whose pair length was wrong.
type ArityError struct {
	// Expected is the required number of endpoints (always EdgeArity).
	Expected int

	// Actual is the number of endpoints that were supplied.
	Actual int
}

// Error returns the error string.
func (e *ArityError) Error() string {
	if e.Actual > e.Expected {
		return fmt.Sprintf("core: edge length %d exceeds maximum of %d", e.Actual, e.Expected)
	}

	return fmt.Sprintf("core: edge length %d is less than minimum of %d", e.Actual, e.Expected)
}

// Is reports whether target is ErrArity.
func (e *ArityError) Is(target error) bool {
	return target == ErrArity
}

// Graph is an in-memory adjacency list keyed by node identifier.
//
// Neighbor lists keep insertion order and may contain duplicates and
// self-loops. A neighbor that is never added as a key is a valid dead end.
// Node keys are remembered in first-insertion order so that every
// whole-graph scan is deterministic.
//
// mu guards keys, nodes and edges.
type Graph struct {
	mu sync.RWMutex

	keys  []string            // node IDs in first-insertion order
	nodes map[string][]string // node ID → ordered neighbor IDs
	edges [][EdgeArity]string // stored pairs for BuildGraphFromEdges
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[string][]string),
	}
}
