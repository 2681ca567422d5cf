package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlwalk/bfs"
	"github.com/katalvlaran/lvlwalk/core"
	"github.com/katalvlaran/lvlwalk/dfs"
	"github.com/katalvlaran/lvlwalk/fixture"
	"github.com/katalvlaran/lvlwalk/gridgraph"
	"github.com/katalvlaran/lvlwalk/internal/ctxlog"
)

// graphSuite groups one traversal family's graph algorithms.
type graphSuite struct {
	hasPath    func(g *core.Graph, src, dst string) bool
	undirected func(g *core.Graph, a, b string) bool
	components func(g *core.Graph) int
	largest    func(g *core.Graph) int
	shortest   func(g *core.Graph, a, b string) int
}

var (
	dfsSuite = graphSuite{
		hasPath:    dfs.HasPath,
		undirected: dfs.UndirectedPath,
		components: dfs.ComponentsCount,
		largest:    dfs.LargestComponent,
		shortest:   dfs.ShortestPath,
	}
	bfsSuite = graphSuite{
		hasPath:    bfs.HasPath,
		undirected: bfs.UndirectedPath,
		components: bfs.ComponentsCount,
		largest:    bfs.LargestComponent,
		shortest:   bfs.ShortestPath,
	}
)

func (a *App) runGraph(ctx context.Context, set *fixture.Set) (string, error) {
	logger := ctxlog.FromContext(ctx)
	cfg := a.config

	g, err := set.Graph(cfg.Graph)
	if err != nil {
		return "", err
	}
	logger.Debug("Graph selected.", "graph", cfg.Graph, "nodes", g.NodeCount())
	for _, id := range []string{cfg.Src, cfg.Dst} {
		if id != "" && !g.HasNode(id) {
			logger.Warn("Node has no adjacency entry; treating it as a dead end.", "graph", cfg.Graph, "node", id)
		}
	}

	suite := dfsSuite
	if cfg.Variant == VariantBFS {
		suite = bfsSuite
	}

	switch cfg.Algorithm {
	case AlgoOrder:
		onVisit := func(id string) { logger.Debug("Visited node.", "node", id) }
		var order []string
		switch cfg.Variant {
		case VariantBFS:
			order = bfs.Order(g, cfg.Src, bfs.WithOnVisit(onVisit))
		case VariantDFSRecursive:
			order = dfs.OrderRecursive(g, cfg.Src, dfs.WithOnVisit(onVisit))
		default:
			order = dfs.OrderIterative(g, cfg.Src, dfs.WithOnVisit(onVisit))
		}
		return strings.Join(order, " "), nil
	case AlgoHasPath:
		return strconv.FormatBool(suite.hasPath(g, cfg.Src, cfg.Dst)), nil
	case AlgoUndirectedPath:
		return strconv.FormatBool(suite.undirected(g, cfg.Src, cfg.Dst)), nil
	case AlgoComponents:
		return strconv.Itoa(suite.components(g)), nil
	case AlgoLargestComponent:
		return strconv.Itoa(suite.largest(g)), nil
	case AlgoShortestPath:
		return strconv.Itoa(suite.shortest(g, cfg.Src, cfg.Dst)), nil
	}

	return "", fmt.Errorf("%w: unknown graph algorithm %q", ErrInvalidConfig, cfg.Algorithm)
}

func (a *App) runGrid(ctx context.Context, set *fixture.Set) (string, error) {
	logger := ctxlog.FromContext(ctx)
	cfg := a.config

	grid, err := set.Grid(cfg.Grid)
	if err != nil {
		return "", err
	}
	logger.Debug("Grid selected.", "grid", cfg.Grid, "width", grid.Width(), "height", grid.Height())

	bfsVariant := cfg.Variant == VariantBFS
	switch cfg.Algorithm {
	case AlgoIslandCount:
		if bfsVariant {
			return strconv.Itoa(grid.IslandCountBFS()), nil
		}
		return strconv.Itoa(grid.IslandCount()), nil
	case AlgoMinimumIsland:
		if bfsVariant {
			return strconv.Itoa(grid.MinimumIslandBFS()), nil
		}
		return strconv.Itoa(grid.MinimumIsland()), nil
	case AlgoIslands:
		return formatIslands(grid.Islands()), nil
	case AlgoExpandIsland:
		src, err := strconv.Atoi(cfg.Src)
		if err != nil {
			return "", fmt.Errorf("%w: -src must be an island index: %v", ErrInvalidConfig, err)
		}
		dst, err := strconv.Atoi(cfg.Dst)
		if err != nil {
			return "", fmt.Errorf("%w: -dst must be an island index: %v", ErrInvalidConfig, err)
		}
		path, cost, err := grid.ExpandIsland(src, dst)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("cost %d: %s", cost, joinCells(path)), nil
	}

	return "", fmt.Errorf("%w: unknown grid algorithm %q", ErrInvalidConfig, cfg.Algorithm)
}

// formatIslands renders one island per line: "<index> (<size>): cells...".
func formatIslands(islands [][]gridgraph.Cell) string {
	lines := make([]string, len(islands))
	for i, island := range islands {
		lines[i] = fmt.Sprintf("%d (%d): %s", i, len(island), joinCells(island))
	}

	return strings.Join(lines, "\n")
}

func joinCells(cells []gridgraph.Cell) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = c.String()
	}

	return strings.Join(parts, " ")
}
