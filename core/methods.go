package core

// AddNode records id with the given neighbor list, replacing any list already
// stored for id. The neighbors slice is copied.
// A replaced node keeps its original position in Nodes().
// Complexity: O(len(neighbors))
func (g *Graph) AddNode(id string, neighbors ...string) {
	nbs := make([]string, len(neighbors))
	copy(nbs, neighbors)

	g.mu.Lock()
	defer g.mu.Unlock()
	g.setNode(id, nbs)
}

// AddEdge stores an undirected pair for a later BuildGraphFromEdges.
// Returns *ArityError when len(pair) != 2; the graph is left untouched.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(pair ...string) error {
	if len(pair) != EdgeArity {
		return &ArityError{Expected: EdgeArity, Actual: len(pair)}
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.edges = append(g.edges, [EdgeArity]string{pair[0], pair[1]})

	return nil
}

// BuildGraphFromEdges discards every node and rebuilds the adjacency list from
// the stored edges, inserting both a→b and b→a for each pair in edge order.
// Calling it twice yields the same graph.
// Complexity: O(E)
func (g *Graph) BuildGraphFromEdges() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.keys = g.keys[:0]
	g.nodes = make(map[string][]string, 2*len(g.edges))
	for _, e := range g.edges {
		a, b := e[0], e[1]
		g.setNode(a, append(g.nodes[a], b))
		g.setNode(b, append(g.nodes[b], a))
	}
}

// setNode writes nbs under id, registering id in key order on first sight.
// Caller must hold the write lock.
func (g *Graph) setNode(id string, nbs []string) {
	if _, ok := g.nodes[id]; !ok {
		g.keys = append(g.keys, id)
	}
	g.nodes[id] = nbs
}

// Neighbors returns a copy of id's neighbor list in insertion order.
// An absent key yields nil: traversals treat it as a dead end.
// Complexity: O(d)
func (g *Graph) Neighbors(id string) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbs, ok := g.nodes[id]
	if !ok {
		return nil
	}
	out := make([]string, len(nbs))
	copy(out, nbs)

	return out
}

// HasNode reports whether id is a key of the adjacency list.
// Nodes that only ever appear as neighbors are not keys.
func (g *Graph) HasNode(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[id]

	return ok
}

// Nodes returns all node keys in first-insertion order.
// Complexity: O(V)
func (g *Graph) Nodes() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, len(g.keys))
	copy(out, g.keys)

	return out
}

// NodeCount returns the number of node keys.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.keys)
}

// Edges returns the stored edge pairs in insertion order.
func (g *Graph) Edges() [][EdgeArity]string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([][EdgeArity]string, len(g.edges))
	copy(out, g.edges)

	return out
}

// Clone returns a deep copy of keys, adjacency lists and stored edges.
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		keys:  make([]string, len(g.keys)),
		nodes: make(map[string][]string, len(g.nodes)),
		edges: make([][EdgeArity]string, len(g.edges)),
	}
	copy(clone.keys, g.keys)
	copy(clone.edges, g.edges)
	for id, nbs := range g.nodes {
		cp := make([]string, len(nbs))
		copy(cp, nbs)
		clone.nodes[id] = cp
	}

	return clone
}
