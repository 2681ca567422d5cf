package fixture

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvlwalk/internal/ctxlog"
)

// Load reads path as a single fixture file, or every fixture file below it
// when path is a directory.
func Load(ctx context.Context, path string) (*Set, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: %w", err)
	}
	if info.IsDir() {
		return LoadDir(ctx, path)
	}

	return LoadFile(ctx, path)
}

// LoadFile decodes one fixture file, choosing the format by extension.
func LoadFile(ctx context.Context, path string) (*Set, error) {
	logger := ctxlog.FromContext(ctx)
	if !isFixture(path) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: %w", err)
	}

	var set *Set
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		set, err = DecodeHCL(src, path)
	default:
		set, err = decodeYAML(src, path)
	}
	if err != nil {
		return nil, err
	}
	logger.Debug("Fixture file loaded.", "path", path, "graphs", len(set.graphs), "grids", len(set.grids))

	return set, nil
}

// LoadDir decodes every .hcl, .yaml and .yml file below dir concurrently
// and merges them into one Set. Files are merged in lexical path order.
func LoadDir(ctx context.Context, dir string) (*Set, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading fixtures from directory.", "path", dir)

	files, err := findFixtures(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to find fixture files in %s: %w", dir, err)
	}
	if len(files) == 0 {
		logger.Warn("No fixture files found in directory.", "path", dir)
		return NewSet(), nil
	}

	sets := make([]*Set, len(files))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range files {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			set, err := LoadFile(egCtx, path)
			if err != nil {
				return err
			}
			sets[i] = set
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	merged := NewSet()
	for _, set := range sets {
		if err := merged.merge(set); err != nil {
			return nil, err
		}
	}
	logger.Info("Fixtures loaded.", "path", dir, "files", len(files), "graphs", len(merged.graphs), "grids", len(merged.grids))

	return merged, nil
}

func findFixtures(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && isFixture(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)

	return files, nil
}

func isFixture(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl", ".yaml", ".yml":
		return true
	}
	return false
}
