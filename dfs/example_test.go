package dfs_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlwalk/core"
	"github.com/katalvlaran/lvlwalk/dfs"
)

// ExampleOrderIterative contrasts the two depth-first disciplines on
//
//	a ──► b
//	│     │
//	▼     ▼
//	c     d
//	│     │
//	▼     ▼
//	e     f
//
// with a's neighbors listed as [c b].
func ExampleOrderIterative() {
	g := core.NewGraph()
	g.AddNode("a", "c", "b")
	g.AddNode("b", "d")
	g.AddNode("c", "e")
	g.AddNode("d", "f")
	g.AddNode("e")
	g.AddNode("f")

	fmt.Println("iterative:", strings.Join(dfs.OrderIterative(g, "a"), " "))
	fmt.Println("recursive:", strings.Join(dfs.OrderRecursive(g, "a"), " "))
	// Output:
	// iterative: a b d f c e
	// recursive: a c e b d f
}

// ExampleComponentsCount counts the two components of
//
//	1───0───5      2───3
//	    │   │      │   │
//	    8───┘      └─4─┘
func ExampleComponentsCount() {
	g := core.NewGraph()
	g.AddNode("0", "8", "1", "5")
	g.AddNode("1", "0")
	g.AddNode("5", "0", "8")
	g.AddNode("8", "0", "5")
	g.AddNode("2", "3", "4")
	g.AddNode("3", "2", "4")
	g.AddNode("4", "3", "2")

	fmt.Println("components:", dfs.ComponentsCount(g))
	fmt.Println("largest:", dfs.LargestComponent(g))
	// Output:
	// components: 2
	// largest: 4
}

// ExampleShortestPath builds the five-cycle w-x-y-z-v from an edge list.
func ExampleShortestPath() {
	g, err := core.FromEdges([][]string{{"w", "x"}, {"x", "y"}, {"z", "y"}, {"z", "v"}, {"w", "v"}})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(dfs.ShortestPath(g, "w", "z"))
	// Output:
	// 2
}
