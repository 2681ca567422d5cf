// Package gridgraph treats a fixed-width 2D grid of string labels as a
// graph, enabling island analysis and minimal-cost island expansions.
//
// What:
//
//   - Grid holds rows of labels; NewGrid fixes the width and AddRow rejects
//     rows of any other length with a *RowLengthError.
//   - A cell is land when its label differs from the water label ("W").
//   - IslandCount / MinimumIsland: recursive depth-first flood fill.
//   - Islands / IslandCountBFS / MinimumIslandBFS: queue-based flood fill.
//   - ToCoreGraph: land cells as a *core.Graph for the dfs and bfs packages.
//   - ExpandIsland: minimal water conversions (0-1 BFS) between two islands.
//
// Why:
//
//   - Map analysis: count islands, find the smallest one.
//   - Planning: connect two regions with the fewest conversions.
//
// Navigation (Conn4):
//
//	           (r-1,c)
//	              ▲
//	              │
//	(r,c-1) ◄── (r,c) ──► (r,c+1)
//	              │
//	              ▼
//	           (r+1,c)
//
// Complexity:
//
//   - IslandCount, MinimumIsland, Islands: O(W×H×d), Memory: O(W×H) (d = 4 or 8).
//   - ExpandIsland:                        O(W×H×d), Memory: O(W×H).
//   - ToCoreGraph:                         O(W×H×d), Memory: O(W×H).
//
// Options:
//
//   - WithWater(label): label of blocked cells.
//   - WithConnectivity(Conn4 | Conn8).
//
// Errors:
//
//   - ErrEmptyGrid:      From2D input has no rows or no columns.
//   - ErrRowLength:      matched by *RowLengthError (Expected width, Actual length).
//   - ErrComponentIndex: requested island index out of range.
//   - ErrNoPath:         no conversion path exists between the islands.
package gridgraph
