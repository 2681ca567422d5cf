package fixture_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlwalk/bfs"
	"github.com/katalvlaran/lvlwalk/core"
	"github.com/katalvlaran/lvlwalk/dfs"
	"github.com/katalvlaran/lvlwalk/fixture"
	"github.com/katalvlaran/lvlwalk/gridgraph"
)

func TestLoadFile_HCLGraphs(t *testing.T) {
	set, err := fixture.LoadFile(context.Background(), filepath.Join("testdata", "suite", "graphs.hcl"))
	require.NoError(t, err)

	want := []string{"components", "has_path", "shortest", "traversal", "undirected"}
	if diff := cmp.Diff(want, set.GraphNames()); diff != "" {
		t.Errorf("GraphNames mismatch (-want +got):\n%s", diff)
	}
	assert.Empty(t, set.GridNames())

	traversal, err := set.Graph("traversal")
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"a", "b", "d", "f", "c", "e"}, dfs.OrderIterative(traversal, "a")); diff != "" {
		t.Errorf("OrderIterative mismatch (-want +got):\n%s", diff)
	}

	hasPath, err := set.Graph("has_path")
	require.NoError(t, err)
	assert.True(t, dfs.HasPath(hasPath, "f", "k"))
	assert.False(t, dfs.HasPath(hasPath, "j", "f"))

	components, err := set.Graph("components")
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "5", "8", "2", "3", "4"}, components.Nodes())
	assert.Equal(t, 2, dfs.ComponentsCount(components))
	assert.Equal(t, 4, bfs.LargestComponent(components))

	shortest, err := set.Graph("shortest")
	require.NoError(t, err)
	assert.Equal(t, 2, bfs.ShortestPath(shortest, "w", "z"))

	undirected, err := set.Graph("undirected")
	require.NoError(t, err)
	assert.True(t, dfs.UndirectedPath(undirected, "j", "m"))
	assert.False(t, bfs.UndirectedPath(undirected, "k", "o"))
}

func TestLoadFile_YAML(t *testing.T) {
	set, err := fixture.LoadFile(context.Background(), filepath.Join("testdata", "suite", "grids.yaml"))
	require.NoError(t, err)
	assert.Equal(t, []string{"diagonal", "islands"}, set.GridNames())
	assert.Equal(t, 3, set.Len())

	islands, err := set.Grid("islands")
	require.NoError(t, err)
	assert.Equal(t, 5, islands.Width())
	assert.Equal(t, 6, islands.Height())
	assert.Equal(t, 3, islands.IslandCount())
	assert.Equal(t, 2, islands.MinimumIsland())

	diagonal, err := set.Grid("diagonal")
	require.NoError(t, err)
	assert.Equal(t, 3, diagonal.Width(), "width defaults to the first row")
	assert.Equal(t, gridgraph.Conn8, diagonal.Connectivity())
	assert.Equal(t, 1, diagonal.IslandCount())

	lattice, err := set.Graph("lattice")
	require.NoError(t, err)
	assert.Equal(t, 2, bfs.ShortestPath(lattice, "a", "c"))
}

func TestLoadFile_HCLLabelVariables(t *testing.T) {
	set, err := fixture.LoadFile(context.Background(), filepath.Join("testdata", "islands.hcl"))
	require.NoError(t, err)

	islands, err := set.Grid("islands")
	require.NoError(t, err)
	label, ok := islands.Label(0, 1)
	require.True(t, ok)
	assert.Equal(t, gridgraph.Land, label)
	assert.Equal(t, 3, islands.IslandCountBFS())
	assert.Equal(t, 2, islands.MinimumIslandBFS())

	sea, err := set.Grid("sea")
	require.NoError(t, err)
	assert.Equal(t, 0, sea.IslandCount())
	assert.Equal(t, 0, sea.MinimumIsland())
}

func TestLoadDir_MergesInPathOrder(t *testing.T) {
	set, err := fixture.LoadDir(context.Background(), filepath.Join("testdata", "suite"))
	require.NoError(t, err)

	want := []string{"components", "has_path", "lattice", "shortest", "traversal", "undirected"}
	if diff := cmp.Diff(want, set.GraphNames()); diff != "" {
		t.Errorf("GraphNames mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"diagonal", "islands"}, set.GridNames())
}

func TestLoadDir_DuplicateName(t *testing.T) {
	// testdata/islands.hcl and testdata/suite/grids.yaml both define "islands".
	_, err := fixture.LoadDir(context.Background(), "testdata")
	require.Error(t, err)
	assert.ErrorIs(t, err, fixture.ErrDuplicateName)
	assert.Contains(t, err.Error(), `"islands"`)
}

func TestLoadDir_Empty(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o600))

	set, err := fixture.LoadDir(context.Background(), dir)
	require.NoError(t, err)
	assert.Zero(t, set.Len())
}

func TestLoadDir_PropagatesFileError(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.hcl"), []byte(`graph "ok" { edges = [["a", "b"]] }`), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.yaml"), []byte("graphs:\n  - name: bad\n    edges: [[x, y, z]]\n"), 0o600))

	_, err := fixture.LoadDir(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrArity)
}

func TestLoad_DispatchesOnPathKind(t *testing.T) {
	ctx := context.Background()

	fromDir, err := fixture.Load(ctx, filepath.Join("testdata", "suite"))
	require.NoError(t, err)
	assert.Equal(t, 8, fromDir.Len())

	fromFile, err := fixture.Load(ctx, filepath.Join("testdata", "islands.hcl"))
	require.NoError(t, err)
	assert.Equal(t, 2, fromFile.Len())

	_, err = fixture.Load(ctx, filepath.Join("testdata", "missing.hcl"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadFile_UnsupportedFormat(t *testing.T) {
	_, err := fixture.LoadFile(context.Background(), filepath.Join("testdata", "graphs.json"))
	assert.ErrorIs(t, err, fixture.ErrUnsupportedFormat)
}

func TestDecodeHCL_ConstructionErrors(t *testing.T) {
	cases := []struct {
		name   string
		src    string
		target error
	}{
		{"edge too long", `graph "g" { edges = [["a", "b", "c"]] }`, core.ErrArity},
		{"edge too short", `graph "g" { edges = [["a"]] }`, core.ErrArity},
		{"ragged grid", `grid "r" {
  width = 2
  rows  = [[land, water], [land, water, land]]
}`, gridgraph.ErrRowLength},
		{"empty grid", `grid "e" { rows = [] }`, gridgraph.ErrEmptyGrid},
		{"mixed graph", `graph "m" {
  edges = [["a", "b"]]
  node "a" { neighbors = ["b"] }
}`, fixture.ErrMixedGraph},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := fixture.DecodeHCL([]byte(tc.src), "inline.hcl")
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.target)
			assert.Contains(t, err.Error(), "inline.hcl")
		})
	}
}

func TestDecodeHCL_ArityDetailsSurvive(t *testing.T) {
	_, err := fixture.DecodeHCL([]byte(`graph "g" { edges = [["a", "b", "c"]] }`), "inline.hcl")
	require.Error(t, err)

	var arity *core.ArityError
	require.True(t, errors.As(err, &arity))
	assert.Equal(t, 3, arity.Actual)
	assert.Equal(t, core.EdgeArity, arity.Expected)
	assert.Contains(t, err.Error(), "edge length 3 exceeds maximum of 2")
}

func TestDecodeHCL_SyntaxAndSchemaErrors(t *testing.T) {
	_, err := fixture.DecodeHCL([]byte(`graph "g" {`), "broken.hcl")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse HCL file broken.hcl")

	_, err = fixture.DecodeHCL([]byte(`graph "g" { weight = 3 }`), "schema.hcl")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode HCL file schema.hcl")
}

func TestDecodeHCL_DuplicateWithinFile(t *testing.T) {
	src := `
graph "g" { edges = [["a", "b"]] }
graph "g" { edges = [["c", "d"]] }
`
	_, err := fixture.DecodeHCL([]byte(src), "dup.hcl")
	assert.ErrorIs(t, err, fixture.ErrDuplicateName)
}

func TestDecodeHCL_GraphAndGridNamespacesAreSeparate(t *testing.T) {
	src := `
graph "same" { edges = [["a", "b"]] }
grid "same" { rows = [[land]] }
`
	set, err := fixture.DecodeHCL([]byte(src), "ns.hcl")
	require.NoError(t, err)
	assert.Equal(t, 2, set.Len())
}

func TestDecodeYAML(t *testing.T) {
	src := []byte(`
graphs:
  - name: chain
    nodes:
      - id: "a"
        neighbors: ["b"]
      - id: "b"
        neighbors: ["c"]
      - id: "c"
`)
	set, err := fixture.DecodeYAML(src)
	require.NoError(t, err)

	g, err := set.Graph("chain")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, dfs.OrderRecursive(g, "a"))
	assert.True(t, bfs.HasPath(g, "a", "c"))
}

func TestDecodeYAML_Errors(t *testing.T) {
	_, err := fixture.DecodeYAML([]byte("graphs:\n  - name: g\n    weight: 3\n"))
	require.Error(t, err, "unknown keys are rejected")

	_, err = fixture.DecodeYAML([]byte("grids:\n  - name: r\n    width: 2\n    rows: [[L, W], [L]]\n"))
	var rowErr *gridgraph.RowLengthError
	require.True(t, errors.As(err, &rowErr))
	assert.Equal(t, 2, rowErr.Expected)
	assert.Equal(t, 1, rowErr.Actual)
}

func TestDecodeYAML_EmptyDocument(t *testing.T) {
	set, err := fixture.DecodeYAML(nil)
	require.NoError(t, err)
	assert.Zero(t, set.Len())
}

func TestSet_NotFound(t *testing.T) {
	set := fixture.NewSet()

	_, err := set.Graph("nope")
	assert.ErrorIs(t, err, fixture.ErrNotFound)
	_, err = set.Grid("nope")
	assert.ErrorIs(t, err, fixture.ErrNotFound)
}

func TestSet_GraphReturnsClone(t *testing.T) {
	set, err := fixture.DecodeHCL([]byte(`graph "g" { edges = [["a", "b"]] }`), "clone.hcl")
	require.NoError(t, err)

	first, err := set.Graph("g")
	require.NoError(t, err)
	first.AddNode("z")

	second, err := set.Graph("g")
	require.NoError(t, err)
	assert.False(t, second.HasNode("z"))
	assert.Equal(t, 2, second.NodeCount())
}
