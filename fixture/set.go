package fixture

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/lvlwalk/core"
	"github.com/katalvlaran/lvlwalk/gridgraph"
)

var (
	// ErrNotFound is returned when a graph or grid name is not defined.
	ErrNotFound = errors.New("fixture: not found")

	// ErrDuplicateName is returned when two graphs or two grids share a name.
	ErrDuplicateName = errors.New("fixture: duplicate name")

	// ErrUnsupportedFormat is returned for files that are neither .hcl nor .yaml/.yml.
	ErrUnsupportedFormat = errors.New("fixture: unsupported file format")

	// ErrMixedGraph is returned when one graph declares both node lists and edges.
	ErrMixedGraph = errors.New("fixture: graph declares both nodes and edges")
)

// Set holds the graphs and grids decoded from one or more files.
// Graph and grid names live in separate namespaces.
type Set struct {
	graphs  map[string]*core.Graph
	grids   map[string]*gridgraph.Grid
	origins map[string]string // "graph:name" / "grid:name" → source file
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{
		graphs:  make(map[string]*core.Graph),
		grids:   make(map[string]*gridgraph.Grid),
		origins: make(map[string]string),
	}
}

// Graph returns a clone of the named graph, so callers may mutate it freely.
func (s *Set) Graph(name string) (*core.Graph, error) {
	g, ok := s.graphs[name]
	if !ok {
		return nil, fmt.Errorf("%w: graph %q", ErrNotFound, name)
	}

	return g.Clone(), nil
}

// Grid returns the named grid.
func (s *Set) Grid(name string) (*gridgraph.Grid, error) {
	g, ok := s.grids[name]
	if !ok {
		return nil, fmt.Errorf("%w: grid %q", ErrNotFound, name)
	}

	return g, nil
}

// GraphNames returns the defined graph names in sorted order.
func (s *Set) GraphNames() []string { return sortedKeys(s.graphs) }

// GridNames returns the defined grid names in sorted order.
func (s *Set) GridNames() []string { return sortedKeys(s.grids) }

// Len reports how many graphs and grids the set holds.
func (s *Set) Len() int { return len(s.graphs) + len(s.grids) }

func (s *Set) addGraph(name, origin string, g *core.Graph) error {
	key := "graph:" + name
	if prev, ok := s.origins[key]; ok {
		return fmt.Errorf("%w: graph %q defined in %s and %s", ErrDuplicateName, name, prev, origin)
	}
	s.graphs[name] = g
	s.origins[key] = origin

	return nil
}

func (s *Set) addGrid(name, origin string, g *gridgraph.Grid) error {
	key := "grid:" + name
	if prev, ok := s.origins[key]; ok {
		return fmt.Errorf("%w: grid %q defined in %s and %s", ErrDuplicateName, name, prev, origin)
	}
	s.grids[name] = g
	s.origins[key] = origin

	return nil
}

// merge moves every definition of other into s.
func (s *Set) merge(other *Set) error {
	for _, name := range other.GraphNames() {
		if err := s.addGraph(name, other.origins["graph:"+name], other.graphs[name]); err != nil {
			return err
		}
	}
	for _, name := range other.GridNames() {
		if err := s.addGrid(name, other.origins["grid:"+name], other.grids[name]); err != nil {
			return err
		}
	}

	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
