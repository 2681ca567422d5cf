package gridgraph

// Islands finds all contiguous land regions breadth-first, according to the
// grid's connectivity. Islands appear in the row-major order of their first
// cell; each island lists its cells in BFS discovery order.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Islands() [][]Cell {
	seen := g.newCellSet()
	var islands [][]Cell

	for r := range g.rows {
		for c := range g.rows[r] {
			if !g.IsLand(r, c) {
				continue // water
			}
			i0 := g.index(r, c)
			if seen[i0] {
				continue
			}
			// BFS to collect the island
			queue := []int{i0}
			seen[i0] = true
			var island []Cell
			for qi := 0; qi < len(queue); qi++ {
				u := g.cell(queue[qi])
				island = append(island, u)
				for _, d := range g.neighborOffsets {
					vr, vc := u.Row+d[0], u.Col+d[1]
					if !g.IsLand(vr, vc) {
						continue
					}
					vi := g.index(vr, vc)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			islands = append(islands, island)
		}
	}

	return islands
}

// IslandCountBFS is the breadth-first counterpart of IslandCount.
func (g *Grid) IslandCountBFS() int {
	return len(g.Islands())
}

// MinimumIslandBFS is the breadth-first counterpart of MinimumIsland.
// It returns 0 when the grid has no land.
func (g *Grid) MinimumIslandBFS() int {
	sizes := make(map[int]struct{})
	for _, island := range g.Islands() {
		sizes[len(island)] = struct{}{}
	}

	return minKey(sizes)
}
