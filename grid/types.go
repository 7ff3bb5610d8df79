// Package grid defines core types, options, and sentinel errors
// for the grid package of github.com/katalvlaran/gridwalk.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")

	// ErrNonRectangular indicates layout rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")

	// ErrInvalidLayout indicates an unknown rune or a duplicated marker in a text layout.
	ErrInvalidLayout = errors.New("grid: invalid layout")

	// ErrInvalidDensity indicates an obstacle density outside [0,1].
	ErrInvalidDensity = errors.New("grid: density out of range")

	// ErrOutOfBounds indicates a cell outside the grid.
	ErrOutOfBounds = errors.New("grid: cell out of bounds")

	// ErrInvalidEndpoint indicates a start or end cell that is out of bounds or Blocked.
	ErrInvalidEndpoint = errors.New("grid: invalid endpoint")
)

// Cell is a (row, column) coordinate, 0-indexed. It is a comparable value
// type and can be used directly as a map key.
type Cell struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

// At is shorthand for Cell{Row: row, Col: col}.
func At(row, col int) Cell {
	return Cell{Row: row, Col: col}
}

// Add returns c moved by the offset d.
func (c Cell) Add(d Cell) Cell {
	return Cell{Row: c.Row + d.Row, Col: c.Col + d.Col}
}

// String formats the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// State is the traversability of a cell.
type State uint8

const (
	// Passable cells can be entered by a search.
	Passable State = iota
	// Blocked cells are obstacles.
	Blocked
)

// String returns "passable" or "blocked".
func (s State) String() string {
	if s == Blocked {
		return "blocked"
	}
	return "passable"
}

// Direction offsets in the fixed neighbor priority order.
var (
	East  = Cell{Row: 0, Col: 1}
	South = Cell{Row: 1, Col: 0}
	West  = Cell{Row: 0, Col: -1}
	North = Cell{Row: -1, Col: 0}
)

// Directions lists the neighbor offsets in priority order: East, South, West, North.
// Callers must not modify it.
var Directions = [4]Cell{East, South, West, North}

// Option configures a Grid during construction.
type Option func(*gridOptions)

// gridOptions collects construction-time settings.
type gridOptions struct {
	start, end       Cell
	startSet, endSet bool
	blocked          []Cell
}

// WithStart overrides the default start cell (0,0).
func WithStart(c Cell) Option {
	return func(o *gridOptions) {
		o.start = c
		o.startSet = true
	}
}

// WithEnd overrides the default end cell (rows-1, cols-1).
func WithEnd(c Cell) Option {
	return func(o *gridOptions) {
		o.end = c
		o.endSet = true
	}
}

// WithBlocked marks the given cells as obstacles. Cells outside the grid
// are reported as ErrOutOfBounds by the constructor; start and end are
// cleared afterwards regardless.
func WithBlocked(cells ...Cell) Option {
	return func(o *gridOptions) {
		o.blocked = append(o.blocked, cells...)
	}
}

// Grid is an immutable rows×cols obstacle map. blocked[i] holds the state of
// the cell with row-major index i.
type Grid struct {
	rows, cols int
	blocked    []bool
	start, end Cell
}
