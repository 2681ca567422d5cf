package gridgraph

// cellSet is the per-call visited set of a flood fill, indexed row-major.
type cellSet []bool

func (g *Grid) newCellSet() cellSet {
	return make(cellSet, g.width*len(g.rows))
}

// IslandCount returns the number of connected land regions, scanning every
// cell in row-major order and flood-filling depth-first from each one.
// Water cells are marked visited but never start an island.
//
// Time:   O(W·H·d).
// Memory: O(W·H) for visited flags plus recursion up to the island size.
func (g *Grid) IslandCount() int {
	visited := g.newCellSet()
	count := 0
	for r := range g.rows {
		for c := range g.rows[r] {
			if g.explore(r, c, visited) {
				count++
			}
		}
	}

	return count
}

// explore reports whether (row,col) is an unvisited land cell, in which
// case it also marks the cell's whole island. Results of the recursive
// calls are ignored; only visited prevents double counting.
func (g *Grid) explore(row, col int, visited cellSet) bool {
	if !g.InBounds(row, col) {
		return false
	}
	i := g.index(row, col)
	if visited[i] {
		return false
	}
	visited[i] = true
	if g.rows[row][col] == g.water {
		return false
	}
	for _, d := range g.neighborOffsets {
		g.explore(row+d[0], col+d[1], visited)
	}

	return true
}

// MinimumIsland returns the cell count of the smallest island, or 0 when
// the grid has no land. Distinct island sizes are collected in a set, so
// several islands of the minimum size yield that size once.
//
// Time:   O(W·H·d).
// Memory: O(W·H).
func (g *Grid) MinimumIsland() int {
	visited := g.newCellSet()
	sizes := make(map[int]struct{})
	for r := range g.rows {
		for c := range g.rows[r] {
			if n := g.exploreSize(r, c, visited); n > 0 {
				sizes[n] = struct{}{}
			}
		}
	}

	return minKey(sizes)
}

// exploreSize returns the number of land cells newly reached from
// (row,col): 0 for out-of-bounds, visited or water cells.
func (g *Grid) exploreSize(row, col int, visited cellSet) int {
	if !g.InBounds(row, col) {
		return 0
	}
	i := g.index(row, col)
	if visited[i] {
		return 0
	}
	visited[i] = true
	if g.rows[row][col] == g.water {
		return 0
	}
	size := 1
	for _, d := range g.neighborOffsets {
		size += g.exploreSize(row+d[0], col+d[1], visited)
	}

	return size
}

func minKey(sizes map[int]struct{}) int {
	smallest := 0
	for n := range sizes {
		if smallest == 0 || n < smallest {
			smallest = n
		}
	}

	return smallest
}
