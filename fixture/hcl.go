package fixture

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/lvlwalk/gridgraph"
)

// hclFile is the top-level schema of a fixture file.
type hclFile struct {
	Graphs []*hclGraph `hcl:"graph,block"`
	Grids  []*hclGrid  `hcl:"grid,block"`
}

type hclGraph struct {
	Name  string     `hcl:"name,label"`
	Nodes []*hclNode `hcl:"node,block"`
	Edges [][]string `hcl:"edges,optional"`
}

type hclNode struct {
	ID        string   `hcl:"id,label"`
	Neighbors []string `hcl:"neighbors,optional"`
}

type hclGrid struct {
	Name     string     `hcl:"name,label"`
	Width    int        `hcl:"width,optional"`
	Rows     [][]string `hcl:"rows"`
	Water    string     `hcl:"water,optional"`
	Diagonal bool       `hcl:"diagonal,optional"`
}

// evalContext exposes the default cell labels as the variables land and water.
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"land":  cty.StringVal(gridgraph.Land),
			"water": cty.StringVal(gridgraph.Water),
		},
	}
}

// DecodeHCL parses src as an HCL fixture. filename is used in diagnostics
// and as the origin reported by duplicate-name errors.
func DecodeHCL(src []byte, filename string) (*Set, error) {
	return decodeHCL(hclparse.NewParser(), src, filename)
}

func decodeHCL(parser *hclparse.Parser, src []byte, filename string) (*Set, error) {
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	var parsed hclFile
	diags = gohcl.DecodeBody(file.Body, evalContext(), &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	graphs := make([]graphDef, 0, len(parsed.Graphs))
	for _, hg := range parsed.Graphs {
		d := graphDef{Name: hg.Name, Edges: hg.Edges}
		for _, n := range hg.Nodes {
			d.Nodes = append(d.Nodes, nodeDef{ID: n.ID, Neighbors: n.Neighbors})
		}
		graphs = append(graphs, d)
	}
	grids := make([]gridDef, 0, len(parsed.Grids))
	for _, hg := range parsed.Grids {
		grids = append(grids, gridDef{
			Name:     hg.Name,
			Width:    hg.Width,
			Rows:     hg.Rows,
			Water:    hg.Water,
			Diagonal: hg.Diagonal,
		})
	}

	return assemble(filename, graphs, grids)
}
