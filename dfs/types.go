// Package dfs defines the options accepted by the depth-first traversal
// order functions.
package dfs

// Option configures optional behavior of the order functions.
// Use with OrderIterative(g, src, opts...) or OrderRecursive(g, src, opts...).
type Option func(*Options)

// Options holds the hooks applied during an order walk.
type Options struct {
	// OnVisit, if non-nil, is invoked each time a node is appended to the
	// visit order, before its neighbors are expanded.
	OnVisit func(id string)
}

// DefaultOptions returns Options with no hooks installed.
func DefaultOptions() Options {
	return Options{
		OnVisit: nil,
	}
}

// WithOnVisit returns an Option that installs fn as the visit hook.
// Passing nil removes any hook.
func WithOnVisit(fn func(id string)) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// frame is one entry of the explicit stack used by ShortestPath.
type frame struct {
	id       string
	distance int
}
