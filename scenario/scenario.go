// Package scenario describes a reproducible search run: grid shape, obstacle
// density and seed (or an explicit layout), endpoints, algorithm and mode.
//
// Scenarios come from HCL or YAML files (Load), with GRIDWALK_* environment
// variables layered on top (ApplyEnv). Build turns a validated Scenario into
// a grid.Grid.
package scenario

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/session"
)

// Defaults mirror the interactive tool: a 100×100 board at 25% obstacles,
// corner endpoints, solved by BFS to completion.
const (
	DefaultRows = 100
	DefaultCols = 100
	DefaultSeed = 1
)

// Run modes.
const (
	ModeRun  = "run"  // step to completion, print the result
	ModeStep = "step" // print every event
)

var (
	// ErrInvalidScenario wraps every validation failure.
	ErrInvalidScenario = errors.New("scenario: invalid")

	// ErrNotFound is returned when a named scenario is absent from a file.
	ErrNotFound = errors.New("scenario: not found")

	// ErrUnsupportedFormat is returned for file extensions other than
	// .hcl, .yaml and .yml.
	ErrUnsupportedFormat = errors.New("scenario: unsupported file format")
)

// Scenario is one run description. The zero value is not valid; start from
// Default.
type Scenario struct {
	Name      string
	Algorithm string
	Mode      string

	Rows, Cols int
	// Density is a fraction in [0,1] or a percent in (1,100].
	Density float64
	Seed    int64

	// Start and End override the corner endpoints when non-nil.
	Start, End *grid.Cell

	// Layout, when set, replaces Rows, Cols, Density and Seed with an
	// explicit map in grid.Parse notation.
	Layout []string

	SkipEndpoints bool
	// Retry is how many times to regenerate (seed+1) after Exhausted.
	Retry int
}

// Default returns the built-in scenario.
func Default() Scenario {
	return Scenario{
		Name:      "default",
		Algorithm: session.BFS.String(),
		Mode:      ModeRun,
		Rows:      DefaultRows,
		Cols:      DefaultCols,
		Density:   grid.DefaultDensity,
		Seed:      DefaultSeed,
	}
}

// Validate normalizes Density to a fraction and Algorithm/Mode to lower
// case, and checks every field. It returns the first problem found wrapped
// in ErrInvalidScenario.
func (s *Scenario) Validate() error {
	if _, err := session.ParseAlgorithm(s.Algorithm); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}
	s.Algorithm = strings.ToLower(strings.TrimSpace(s.Algorithm))

	s.Mode = strings.ToLower(strings.TrimSpace(s.Mode))
	if s.Mode != ModeRun && s.Mode != ModeStep {
		return fmt.Errorf("%w: mode %q (want %q or %q)", ErrInvalidScenario, s.Mode, ModeRun, ModeStep)
	}
	if s.Retry < 0 {
		return fmt.Errorf("%w: retry %d is negative", ErrInvalidScenario, s.Retry)
	}
	if len(s.Layout) > 0 {
		return nil
	}
	if s.Rows <= 0 || s.Cols <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d", ErrInvalidScenario, s.Rows, s.Cols)
	}
	d, err := grid.DensityFromPercent(s.Density)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}
	s.Density = d
	return nil
}

// AlgorithmValue parses Algorithm.
func (s Scenario) AlgorithmValue() (session.Algorithm, error) {
	return session.ParseAlgorithm(s.Algorithm)
}

// Build produces the grid described by s. Call Validate first.
//
// With a Layout the parsed grid's S/E markers apply unless Start/End
// override them; otherwise a random grid is generated from Seed.
func (s Scenario) Build() (*grid.Grid, error) {
	if len(s.Layout) > 0 {
		g, err := grid.Parse(s.Layout)
		if err != nil {
			return nil, err
		}
		if s.Start == nil && s.End == nil {
			return g, nil
		}
		start, end := g.Start(), g.End()
		if s.Start != nil {
			start = *s.Start
		}
		if s.End != nil {
			end = *s.End
		}
		return g.WithEndpoints(start, end)
	}

	var opts []grid.Option
	if s.Start != nil {
		opts = append(opts, grid.WithStart(*s.Start))
	}
	if s.End != nil {
		opts = append(opts, grid.WithEnd(*s.End))
	}
	return grid.Generate(s.Rows, s.Cols, s.Density, s.Seed, opts...)
}
