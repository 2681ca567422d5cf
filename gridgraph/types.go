// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/lvlwalk.
package gridgraph

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")

	// ErrRowLength is matched by every *RowLengthError.
	ErrRowLength = errors.New("gridgraph: row length does not match grid width")

	// ErrComponentIndex indicates a requested island index is out of range.
	ErrComponentIndex = errors.New("gridgraph: component index out of range")

	// ErrNoPath indicates no conversion path exists between two islands.
	ErrNoPath = errors.New("gridgraph: no path between specified components")
)

// RowLengthError reports an AddRow call whose row did not match the grid width.
type RowLengthError struct {
	// Expected is the grid width.
	Expected int

	// Actual is the length of the rejected row.
	Actual int
}

// Error returns the error string.
func (e *RowLengthError) Error() string {
	return fmt.Sprintf("gridgraph: row length %d does not match grid width %d", e.Actual, e.Expected)
}

// Is reports whether target is ErrRowLength.
func (e *RowLengthError) Is(target error) bool {
	return target == ErrRowLength
}

// Conventional cell labels. Any label other than the configured water
// label is land.
const (
	Land  = "L"
	Water = "W"
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: up, down, left, right.
	Conn4 Connectivity = iota
	// Conn8 adds the four diagonals to Conn4.
	Conn8
)

// Cell addresses one grid position.
type Cell struct {
	Row, Col int
}

// ID formats the cell as "row,col", the node ID used by ToCoreGraph.
func (c Cell) ID() string {
	return strconv.Itoa(c.Row) + "," + strconv.Itoa(c.Col)
}

// String implements fmt.Stringer.
func (c Cell) String() string {
	return "(" + c.ID() + ")"
}

// Options contains tunable parameters for grid analysis.
type Options struct {
	// Water is the label of blocked cells; every other label is land.
	Water string

	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// Option configures a Grid at construction.
type Option func(*Options)

// DefaultOptions returns Water="W", Conn=Conn4.
func DefaultOptions() Options {
	return Options{
		Water: Water,
		Conn:  Conn4,
	}
}

// WithWater sets the label treated as water.
func WithWater(label string) Option {
	return func(o *Options) { o.Water = label }
}

// WithConnectivity selects Conn4 or Conn8 adjacency.
func WithConnectivity(conn Connectivity) Option {
	return func(o *Options) { o.Conn = conn }
}

// Grid is a fixed-width 2D array of cell labels, filled row by row.
// Width never changes after NewGrid; every stored row has exactly Width labels.
// Rows are never removed or modified once appended.
//
// A Grid is not safe for AddRow concurrently with any other method.
type Grid struct {
	width           int
	rows            [][]string
	water           string
	conn            Connectivity
	neighborOffsets [][2]int // (dRow, dCol)
}
