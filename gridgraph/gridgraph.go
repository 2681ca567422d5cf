// Package gridgraph provides a fixed-width grid of string labels and the
// flood-fill algorithms that treat it as a graph:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Island counting and minimum island size, depth-first and breadth-first
//   - Conversion to a *core.Graph over land cells
//   - Minimal water conversions between two islands
//
// Cells labelled with the water label ("W" by default) are water; every other label is land.
package gridgraph

import (
	"github.com/katalvlaran/lvlwalk/core"
)

var (
	offsets4 = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	offsets8 = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}, {-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
)

// NewGrid creates an empty Grid whose rows must have exactly width labels.
// Complexity: O(1).
func NewGrid(width int, opts ...Option) *Grid {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	offsets := offsets4
	if o.Conn == Conn8 {
		offsets = offsets8
	}

	return &Grid{
		width:           width,
		water:           o.Water,
		conn:            o.Conn,
		neighborOffsets: offsets,
	}
}

// AddRow appends a copy of labels as the next row.
// Returns *RowLengthError when len(labels) != Width(); the grid is left unchanged.
// Complexity: O(Width).
func (g *Grid) AddRow(labels ...string) error {
	if len(labels) != g.width {
		return &RowLengthError{Expected: g.width, Actual: len(labels)}
	}
	row := make([]string, g.width)
	copy(row, labels)
	g.rows = append(g.rows, row)

	return nil
}

// From2D builds a Grid whose width is the length of the first row and
// appends every row through AddRow.
// Returns ErrEmptyGrid if rows has no rows or no columns, or the
// *RowLengthError of the first ragged row.
// Complexity: O(W×H).
func From2D(rows [][]string, opts ...Option) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	g := NewGrid(len(rows[0]), opts...)
	for _, row := range rows {
		if err := g.AddRow(row...); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Width returns the fixed row length.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows appended so far.
func (g *Grid) Height() int { return len(g.rows) }

// Connectivity returns the neighbor rule chosen at construction.
func (g *Grid) Connectivity() Connectivity { return g.conn }

// Rows returns a deep copy of the stored rows.
// Complexity: O(W×H).
func (g *Grid) Rows() [][]string {
	out := make([][]string, len(g.rows))
	for i, row := range g.rows {
		out[i] = append([]string(nil), row...)
	}

	return out
}

// InBounds reports whether (row,col) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < len(g.rows) && col >= 0 && col < g.width
}

// Label returns the label at (row,col) and whether the position exists.
func (g *Grid) Label(row, col int) (string, bool) {
	if !g.InBounds(row, col) {
		return "", false
	}

	return g.rows[row][col], true
}

// IsLand reports whether (row,col) is in bounds and not water.
func (g *Grid) IsLand(row, col int) bool {
	return g.InBounds(row, col) && g.rows[row][col] != g.water
}

// index maps (row,col) to a row-major index: row*Width + col.
// Complexity: O(1).
func (g *Grid) index(row, col int) int {
	return row*g.width + col
}

// cell converts a row-major index back to a Cell.
// Complexity: O(1).
func (g *Grid) cell(idx int) Cell {
	return Cell{Row: idx / g.width, Col: idx % g.width}
}

// ToCoreGraph converts the land cells into a *core.Graph. Each land cell
// becomes a node with ID Cell.ID(), listing its land neighbors under the
// grid's connectivity. Nodes are added in row-major order; water cells are
// omitted.
//
// The component count of the result equals IslandCount.
// Complexity: O(W×H×d), Memory: O(W×H).
func (g *Grid) ToCoreGraph() *core.Graph {
	cg := core.NewGraph()
	for r := range g.rows {
		for c := range g.rows[r] {
			if !g.IsLand(r, c) {
				continue
			}
			var nbs []string
			for _, d := range g.neighborOffsets {
				nr, nc := r+d[0], c+d[1]
				if g.IsLand(nr, nc) {
					nbs = append(nbs, Cell{Row: nr, Col: nc}.ID())
				}
			}
			cg.AddNode(Cell{Row: r, Col: c}.ID(), nbs...)
		}
	}

	return cg
}
