package core

// AdjacencyList returns a snapshot of the adjacency list: every key mapped to
// a copy of its neighbor list. Mutating the result does not affect g.
// Complexity: O(V + E)
func (g *Graph) AdjacencyList() map[string][]string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[string][]string, len(g.nodes))
	for id, nbs := range g.nodes {
		cp := make([]string, len(nbs))
		copy(cp, nbs)
		out[id] = cp
	}

	return out
}

// FromAdjacency builds a Graph by calling AddNode for each key of order,
// reading the neighbor list from adj. Keys of adj missing from order are ignored.
//
//	g := core.FromAdjacency([]string{"a", "b"}, map[string][]string{
//		"a": {"b"},
//		"b": {},
//	})
func FromAdjacency(order []string, adj map[string][]string) *Graph {
	g := NewGraph()
	for _, id := range order {
		g.AddNode(id, adj[id]...)
	}

	return g
}

// FromEdges stores every pair and then builds the undirected adjacency list.
// The first malformed pair aborts construction with its *ArityError.
func FromEdges(pairs [][]string) (*Graph, error) {
	g := NewGraph()
	for _, p := range pairs {
		if err := g.AddEdge(p...); err != nil {
			return nil, err
		}
	}
	g.BuildGraphFromEdges()

	return g, nil
}
