package bfs_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlwalk/bfs"
	"github.com/katalvlaran/lvlwalk/core"
)

// ExampleOrder walks level by level, each level in adjacency order.
func ExampleOrder() {
	g := core.NewGraph()
	g.AddNode("a", "c", "b")
	g.AddNode("b", "d")
	g.AddNode("c", "e")
	g.AddNode("d", "f")

	fmt.Println(strings.Join(bfs.Order(g, "a"), " "))
	// Output:
	// a c b e d f
}

// ExampleShortestPath measures edge counts on
//
//	w───x───y
//	│       │
//	v───────z
func ExampleShortestPath() {
	g, err := core.FromEdges([][]string{{"w", "x"}, {"x", "y"}, {"z", "y"}, {"z", "v"}, {"w", "v"}})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("w->z:", bfs.ShortestPath(g, "w", "z"))
	fmt.Println("x->v:", bfs.ShortestPath(g, "x", "v"))
	fmt.Println("w->q:", bfs.ShortestPath(g, "w", "q"))
	// Output:
	// w->z: 2
	// x->v: 2
	// w->q: -1
}

// ExampleUndirectedPath checks connectivity on an edge list with two components.
func ExampleUndirectedPath() {
	g, _ := core.FromEdges([][]string{{"i", "j"}, {"k", "i"}, {"m", "k"}, {"k", "l"}, {"o", "n"}})
	fmt.Println(bfs.UndirectedPath(g, "j", "m"), bfs.UndirectedPath(g, "j", "n"))
	// Output:
	// true false
}
