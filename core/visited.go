package core

// Visited is the per-call set of node IDs already processed by a traversal.
// A traversal owns its Visited exclusively; multi-seed scans such as
// component counting thread one Visited through every seed.
type Visited map[string]struct{}

// NewVisited returns an empty set sized for hint entries.
func NewVisited(hint int) Visited {
	return make(Visited, hint)
}

// Add inserts id and reports whether it was not present before.
func (v Visited) Add(id string) bool {
	if _, ok := v[id]; ok {
		return false
	}
	v[id] = struct{}{}

	return true
}

// Has reports whether id has been visited.
func (v Visited) Has(id string) bool {
	_, ok := v[id]

	return ok
}

// Len returns the number of visited IDs.
func (v Visited) Len() int {
	return len(v)
}
