package scenario

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/katalvlaran/gridwalk/grid"
)

// hclFile is the top-level structure of a scenario file.
//
//	scenario "corridor" {
//	  algorithm = "dfs"
//	  rows      = 20
//	  cols      = 40
//	  density   = 30
//	  seed      = 7
//	  start     = [0, 0]
//	  end       = { row = 19, col = 39 }
//	}
type hclFile struct {
	Scenarios []*hclScenario `hcl:"scenario,block"`
}

// hclScenario mirrors Scenario with every attribute optional, so unset
// attributes keep their Default values.
type hclScenario struct {
	Name          string     `hcl:"name,label"`
	Algorithm     *string    `hcl:"algorithm,optional"`
	Mode          *string    `hcl:"mode,optional"`
	Rows          *int       `hcl:"rows,optional"`
	Cols          *int       `hcl:"cols,optional"`
	Density       *float64   `hcl:"density,optional"`
	Seed          *int64     `hcl:"seed,optional"`
	Start         *cty.Value `hcl:"start,optional"`
	End           *cty.Value `hcl:"end,optional"`
	Layout        []string   `hcl:"layout,optional"`
	SkipEndpoints *bool      `hcl:"skip_endpoints,optional"`
	Retry         *int       `hcl:"retry,optional"`
}

// cellObject is the object form of a coordinate.
type cellObject struct {
	Row int `cty:"row"`
	Col int `cty:"col"`
}

var cellObjectType = cty.Object(map[string]cty.Type{
	"row": cty.Number,
	"col": cty.Number,
})

// parseHCL decodes every scenario block of src. filename is used in
// diagnostics only.
func parseHCL(src []byte, filename string) ([]Scenario, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	var parsed hclFile
	diags = gohcl.DecodeBody(f.Body, nil, &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	out := make([]Scenario, 0, len(parsed.Scenarios))
	for _, h := range parsed.Scenarios {
		s, err := h.toScenario()
		if err != nil {
			return nil, fmt.Errorf("%s: scenario %q: %w", filename, h.Name, err)
		}
		out = append(out, s)
	}
	return out, nil
}

func (h *hclScenario) toScenario() (Scenario, error) {
	s := Default()
	s.Name = h.Name
	setIf(&s.Algorithm, h.Algorithm)
	setIf(&s.Mode, h.Mode)
	setIf(&s.Rows, h.Rows)
	setIf(&s.Cols, h.Cols)
	setIf(&s.Density, h.Density)
	setIf(&s.Seed, h.Seed)
	setIf(&s.SkipEndpoints, h.SkipEndpoints)
	setIf(&s.Retry, h.Retry)
	s.Layout = h.Layout

	var err error
	if s.Start, err = cellFromCty(h.Start); err != nil {
		return s, fmt.Errorf("start: %w", err)
	}
	if s.End, err = cellFromCty(h.End); err != nil {
		return s, fmt.Errorf("end: %w", err)
	}
	return s, nil
}

// cellFromCty accepts [row, col] or { row = r, col = c }. A nil or null
// value yields a nil cell.
func cellFromCty(v *cty.Value) (*grid.Cell, error) {
	if v == nil || v.IsNull() {
		return nil, nil
	}
	if !v.IsWhollyKnown() {
		return nil, fmt.Errorf("%w: coordinate is not known", ErrInvalidScenario)
	}

	if v.Type().IsObjectType() {
		obj, err := convert.Convert(*v, cellObjectType)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidScenario, err)
		}
		var co cellObject
		if err = gocty.FromCtyValue(obj, &co); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidScenario, err)
		}
		c := grid.At(co.Row, co.Col)
		return &c, nil
	}

	list, err := convert.Convert(*v, cty.List(cty.Number))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}
	var rc []int
	if err = gocty.FromCtyValue(list, &rc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}
	if len(rc) != 2 {
		return nil, fmt.Errorf("%w: coordinate needs 2 numbers, got %d", ErrInvalidScenario, len(rc))
	}
	c := grid.At(rc[0], rc[1])
	return &c, nil
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
