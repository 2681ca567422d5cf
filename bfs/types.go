// Package bfs defines the options accepted by the breadth-first order walk
// and the queue entry shared by the algorithms.
package bfs

// Option configures optional behavior of Order.
type Option func(*Options)

// Options holds the hooks applied during an order walk.
type Options struct {
	// OnEnqueue is called when a node is appended to the queue.
	OnEnqueue func(id string)

	// OnVisit is called when a node is dequeued and appended to the order.
	OnVisit func(id string)
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnEnqueue: func(string) {},
		OnVisit:   func(string) {},
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(id string)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit.
func WithOnVisit(fn func(id string)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// queueItem pairs a node ID with its distance from the source.
type queueItem struct {
	id       string
	distance int
}
