package fixture

import (
	"fmt"

	"github.com/katalvlaran/lvlwalk/core"
	"github.com/katalvlaran/lvlwalk/gridgraph"
)

// graphDef and gridDef are the format-agnostic shapes both decoders produce.
type graphDef struct {
	Name  string
	Nodes []nodeDef
	Edges [][]string
}

type nodeDef struct {
	ID        string
	Neighbors []string
}

type gridDef struct {
	Name     string
	Width    int
	Rows     [][]string
	Water    string
	Diagonal bool
}

func (d graphDef) build() (*core.Graph, error) {
	if len(d.Nodes) > 0 && len(d.Edges) > 0 {
		return nil, fmt.Errorf("graph %q: %w", d.Name, ErrMixedGraph)
	}
	if len(d.Edges) > 0 {
		g, err := core.FromEdges(d.Edges)
		if err != nil {
			return nil, fmt.Errorf("graph %q: %w", d.Name, err)
		}
		return g, nil
	}

	g := core.NewGraph()
	for _, n := range d.Nodes {
		g.AddNode(n.ID, n.Neighbors...)
	}

	return g, nil
}

func (d gridDef) build() (*gridgraph.Grid, error) {
	width := d.Width
	if width == 0 && len(d.Rows) > 0 {
		width = len(d.Rows[0])
	}
	if width <= 0 || len(d.Rows) == 0 {
		return nil, fmt.Errorf("grid %q: %w", d.Name, gridgraph.ErrEmptyGrid)
	}

	var opts []gridgraph.Option
	if d.Water != "" {
		opts = append(opts, gridgraph.WithWater(d.Water))
	}
	if d.Diagonal {
		opts = append(opts, gridgraph.WithConnectivity(gridgraph.Conn8))
	}

	g := gridgraph.NewGrid(width, opts...)
	for i, row := range d.Rows {
		if err := g.AddRow(row...); err != nil {
			return nil, fmt.Errorf("grid %q row %d: %w", d.Name, i, err)
		}
	}

	return g, nil
}

// assemble builds every definition into a new Set tagged with origin.
func assemble(origin string, graphs []graphDef, grids []gridDef) (*Set, error) {
	set := NewSet()
	for _, d := range graphs {
		g, err := d.build()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", origin, err)
		}
		if err := set.addGraph(d.Name, origin, g); err != nil {
			return nil, err
		}
	}
	for _, d := range grids {
		g, err := d.build()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", origin, err)
		}
		if err := set.addGrid(d.Name, origin, g); err != nil {
			return nil, err
		}
	}

	return set, nil
}
