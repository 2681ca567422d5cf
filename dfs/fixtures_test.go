package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlwalk/core"
)

// traversalGraph:
//
//	a ──► b
//	│     │
//	▼     ▼
//	c     d
//	│     │
//	▼     ▼
//	e     f
func traversalGraph() *core.Graph {
	return core.FromAdjacency(
		[]string{"a", "b", "c", "d", "e", "f"},
		map[string][]string{
			"a": {"c", "b"},
			"b": {"d"},
			"c": {"e"},
			"d": {"f"},
			"e": {},
			"f": {},
		})
}

// hasPathGraph is the acyclic f/g/h/i/j/k fixture.
func hasPathGraph() *core.Graph {
	return core.FromAdjacency(
		[]string{"f", "g", "h", "i", "j", "k"},
		map[string][]string{
			"f": {"g", "i"},
			"g": {"h"},
			"h": {},
			"i": {"g", "k"},
			"j": {"i"},
			"k": {},
		})
}

// componentsGraph has components {0,1,5,8} and the triangle {2,3,4}.
func componentsGraph() *core.Graph {
	return core.FromAdjacency(
		[]string{"0", "1", "5", "8", "2", "3", "4"},
		map[string][]string{
			"0": {"8", "1", "5"},
			"1": {"0"},
			"5": {"0", "8"},
			"8": {"0", "5"},
			"2": {"3", "4"},
			"3": {"2", "4"},
			"4": {"3", "2"},
		})
}

func edgeGraph(t testing.TB, pairs [][]string) *core.Graph {
	t.Helper()
	g, err := core.FromEdges(pairs)
	require.NoError(t, err)

	return g
}

var (
	shortestEdges   = [][]string{{"w", "x"}, {"x", "y"}, {"z", "y"}, {"z", "v"}, {"w", "v"}}
	undirectedEdges = [][]string{{"i", "j"}, {"k", "i"}, {"m", "k"}, {"k", "l"}, {"o", "n"}}
)
