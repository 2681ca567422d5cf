package fixture

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type yamlFile struct {
	Graphs []yamlGraph `yaml:"graphs"`
	Grids  []yamlGrid  `yaml:"grids"`
}

type yamlGraph struct {
	Name  string     `yaml:"name"`
	Nodes []yamlNode `yaml:"nodes"`
	Edges [][]string `yaml:"edges"`
}

type yamlNode struct {
	ID        string   `yaml:"id"`
	Neighbors []string `yaml:"neighbors"`
}

type yamlGrid struct {
	Name     string     `yaml:"name"`
	Width    int        `yaml:"width"`
	Rows     [][]string `yaml:"rows"`
	Water    string     `yaml:"water"`
	Diagonal bool       `yaml:"diagonal"`
}

// DecodeYAML parses src as a YAML fixture. Unknown keys are rejected.
func DecodeYAML(src []byte) (*Set, error) {
	return decodeYAML(src, "<yaml>")
}

func decodeYAML(src []byte, filename string) (*Set, error) {
	dec := yaml.NewDecoder(bytes.NewReader(src))
	dec.KnownFields(true)

	var parsed yamlFile
	if err := dec.Decode(&parsed); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode YAML file %s: %w", filename, err)
	}

	graphs := make([]graphDef, 0, len(parsed.Graphs))
	for _, yg := range parsed.Graphs {
		d := graphDef{Name: yg.Name, Edges: yg.Edges}
		for _, n := range yg.Nodes {
			d.Nodes = append(d.Nodes, nodeDef{ID: n.ID, Neighbors: n.Neighbors})
		}
		graphs = append(graphs, d)
	}
	grids := make([]gridDef, 0, len(parsed.Grids))
	for _, yg := range parsed.Grids {
		grids = append(grids, gridDef(yg))
	}

	return assemble(filename, graphs, grids)
}
