package app

import (
	"errors"
	"fmt"
	"slices"
)

// Algorithm names accepted by Config.Algorithm.
const (
	AlgoOrder            = "order"
	AlgoHasPath          = "has-path"
	AlgoUndirectedPath   = "undirected-path"
	AlgoComponents       = "components"
	AlgoLargestComponent = "largest-component"
	AlgoShortestPath     = "shortest-path"
	AlgoIslandCount      = "island-count"
	AlgoMinimumIsland    = "minimum-island"
	AlgoIslands          = "islands"
	AlgoExpandIsland     = "expand-island"
)

// Traversal variants accepted by Config.Variant.
const (
	VariantDFS          = "dfs"
	VariantDFSRecursive = "dfs-recursive"
	VariantBFS          = "bfs"
)

var (
	// ErrInvalidConfig is wrapped by every NewConfig validation failure.
	ErrInvalidConfig = errors.New("app: invalid configuration")

	graphAlgorithms = []string{AlgoOrder, AlgoHasPath, AlgoUndirectedPath, AlgoComponents, AlgoLargestComponent, AlgoShortestPath}
	gridAlgorithms  = []string{AlgoIslandCount, AlgoMinimumIsland, AlgoIslands, AlgoExpandIsland}
)

// Config holds everything one run needs.
type Config struct {
	FixturePath string // .hcl/.yaml file or a directory of them
	Algorithm   string
	Variant     string
	Graph       string // graph name, for graph algorithms
	Grid        string // grid name, for grid algorithms
	Src         string
	Dst         string

	LogFormat string
	LogLevel  string
}

// Algorithms lists every accepted algorithm name, graph algorithms first.
func Algorithms() []string {
	return slices.Concat(graphAlgorithms, gridAlgorithms)
}

// GraphAlgorithms lists the algorithms that run against a named graph.
func GraphAlgorithms() []string { return slices.Clone(graphAlgorithms) }

// GridAlgorithms lists the algorithms that run against a named grid.
func GridAlgorithms() []string { return slices.Clone(gridAlgorithms) }

// IsGridAlgorithm reports whether algo runs against a grid rather than a graph.
func IsGridAlgorithm(algo string) bool {
	return slices.Contains(gridAlgorithms, algo)
}

// NewConfig validates cfg and returns a copy with defaults applied.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.FixturePath == "" {
		return nil, fmt.Errorf("%w: fixture path is required", ErrInvalidConfig)
	}
	if cfg.Variant == "" {
		cfg.Variant = VariantDFS
	}

	switch {
	case slices.Contains(graphAlgorithms, cfg.Algorithm):
		if cfg.Graph == "" {
			return nil, fmt.Errorf("%w: algorithm %q needs a graph name", ErrInvalidConfig, cfg.Algorithm)
		}
	case IsGridAlgorithm(cfg.Algorithm):
		if cfg.Grid == "" {
			return nil, fmt.Errorf("%w: algorithm %q needs a grid name", ErrInvalidConfig, cfg.Algorithm)
		}
	default:
		return nil, fmt.Errorf("%w: unknown algorithm %q", ErrInvalidConfig, cfg.Algorithm)
	}

	switch cfg.Variant {
	case VariantDFS, VariantBFS:
	case VariantDFSRecursive:
		if cfg.Algorithm != AlgoOrder {
			return nil, fmt.Errorf("%w: variant %q only applies to %q", ErrInvalidConfig, cfg.Variant, AlgoOrder)
		}
	default:
		return nil, fmt.Errorf("%w: unknown variant %q", ErrInvalidConfig, cfg.Variant)
	}

	switch cfg.Algorithm {
	case AlgoOrder:
		if cfg.Src == "" {
			return nil, fmt.Errorf("%w: algorithm %q needs -src", ErrInvalidConfig, cfg.Algorithm)
		}
	case AlgoHasPath, AlgoUndirectedPath, AlgoShortestPath, AlgoExpandIsland:
		if cfg.Src == "" || cfg.Dst == "" {
			return nil, fmt.Errorf("%w: algorithm %q needs -src and -dst", ErrInvalidConfig, cfg.Algorithm)
		}
	}

	return &cfg, nil
}
