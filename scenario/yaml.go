package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridwalk/grid"
)

// yamlFile is the YAML counterpart of hclFile.
//
//	scenarios:
//	  - name: corridor
//	    algorithm: dfs
//	    rows: 20
//	    cols: 40
//	    density: 30
//	    start: [0, 0]
//	    end: {row: 19, col: 39}
type yamlFile struct {
	Scenarios []yamlScenario `yaml:"scenarios"`
}

type yamlScenario struct {
	Name          string    `yaml:"name"`
	Algorithm     *string   `yaml:"algorithm"`
	Mode          *string   `yaml:"mode"`
	Rows          *int      `yaml:"rows"`
	Cols          *int      `yaml:"cols"`
	Density       *float64  `yaml:"density"`
	Seed          *int64    `yaml:"seed"`
	Start         *yamlCell `yaml:"start"`
	End           *yamlCell `yaml:"end"`
	Layout        []string  `yaml:"layout"`
	SkipEndpoints *bool     `yaml:"skip_endpoints"`
	Retry         *int      `yaml:"retry"`
}

// yamlCell accepts a coordinate as [row, col] or {row: r, col: c}.
type yamlCell grid.Cell

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *yamlCell) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var rc []int
		if err := node.Decode(&rc); err != nil {
			return err
		}
		if len(rc) != 2 {
			return fmt.Errorf("%w: line %d: coordinate needs 2 numbers, got %d", ErrInvalidScenario, node.Line, len(rc))
		}
		*c = yamlCell(grid.At(rc[0], rc[1]))
		return nil
	case yaml.MappingNode:
		var gc grid.Cell
		if err := node.Decode(&gc); err != nil {
			return err
		}
		*c = yamlCell(gc)
		return nil
	default:
		return fmt.Errorf("%w: line %d: coordinate must be a list or a mapping", ErrInvalidScenario, node.Line)
	}
}

// parseYAML decodes src, rejecting unknown keys.
func parseYAML(src []byte, filename string) ([]Scenario, error) {
	var parsed yamlFile
	dec := yaml.NewDecoder(bytes.NewReader(src))
	dec.KnownFields(true)
	if err := dec.Decode(&parsed); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode YAML file %s: %w", filename, err)
	}

	out := make([]Scenario, 0, len(parsed.Scenarios))
	for _, y := range parsed.Scenarios {
		s := Default()
		s.Name = y.Name
		setIf(&s.Algorithm, y.Algorithm)
		setIf(&s.Mode, y.Mode)
		setIf(&s.Rows, y.Rows)
		setIf(&s.Cols, y.Cols)
		setIf(&s.Density, y.Density)
		setIf(&s.Seed, y.Seed)
		setIf(&s.SkipEndpoints, y.SkipEndpoints)
		setIf(&s.Retry, y.Retry)
		s.Layout = y.Layout
		if y.Start != nil {
			c := grid.Cell(*y.Start)
			s.Start = &c
		}
		if y.End != nil {
			c := grid.Cell(*y.End)
			s.End = &c
		}
		out = append(out, s)
	}
	return out, nil
}
