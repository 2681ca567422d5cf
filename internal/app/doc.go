// Package app wires a loaded fixture set to one traversal algorithm and
// writes the result. It owns logger construction so that every run gets
// an isolated *slog.Logger carried through the context.
package app
