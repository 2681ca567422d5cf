// Package dfs implements depth-first traversals over a core.Graph: visit
// order (iterative and recursive), reachability, component counting and
// sizing, and a stack-based path length.
package dfs

import (
	"github.com/katalvlaran/lvlwalk/core"
)

// orderWalker collects the visit sequence of an unguarded walk.
type orderWalker struct {
	graph *core.Graph
	opts  Options
	order []string
}

func (w *orderWalker) visit(id string) {
	w.order = append(w.order, id)
	if w.opts.OnVisit != nil {
		w.opts.OnVisit(id)
	}
}

// OrderIterative returns the visit sequence of a stack-driven depth-first
// walk from src. Neighbors are pushed in adjacency order and popped in
// reverse, so the last-listed neighbor is visited first.
//
// No visited guard is applied: g must be acyclic from src or the walk never ends.
// Complexity: O(V + E) on a tree.
func OrderIterative(g *core.Graph, src string, opts ...Option) []string {
	w := &orderWalker{graph: g, opts: buildOptions(opts)}

	stack := []string{src}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		w.visit(current)
		stack = append(stack, g.Neighbors(current)...)
	}

	return w.order
}

// OrderRecursive returns the visit sequence of a recursive depth-first walk
// from src, descending into neighbors in adjacency order. On the same graph
// it generally differs from OrderIterative.
//
// No visited guard is applied: g must be acyclic from src or the walk never ends.
// Complexity: O(V + E) on a tree; recursion depth equals the longest path.
func OrderRecursive(g *core.Graph, src string, opts ...Option) []string {
	w := &orderWalker{graph: g, opts: buildOptions(opts)}
	w.descend(src)

	return w.order
}

func (w *orderWalker) descend(id string) {
	w.visit(id)
	for _, nbr := range w.graph.Neighbors(id) {
		w.descend(nbr)
	}
}
