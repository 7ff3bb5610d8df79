package grid

import (
	"fmt"
	"strings"
)

// Layout runes used by Parse and String.
const (
	RunePassable = '.'
	RuneBlocked  = '#'
	RuneStart    = 'S'
	RuneEnd      = 'E'
	RuneStartEnd = 'X' // start and end on one cell
)

// Parse builds a Grid from a text layout, one string per row:
//
//	'.' passable, '#' blocked, 'S' start, 'E' end, 'X' start and end.
//
// Missing markers fall back to the New defaults. Returns ErrEmptyGrid,
// ErrNonRectangular, or ErrInvalidLayout for unknown runes and repeated
// markers.
// Complexity: O(R×C).
func Parse(lines []string) (*Grid, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(lines), len([]rune(lines[0]))

	var opts []Option
	var blocked []Cell
	var haveStart, haveEnd bool
	for r, line := range lines {
		runes := []rune(line)
		if len(runes) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(runes), cols)
		}
		for c, ch := range runes {
			switch ch {
			case RunePassable:
			case RuneBlocked:
				blocked = append(blocked, Cell{Row: r, Col: c})
			case RuneStart:
				if haveStart {
					return nil, fmt.Errorf("%w: second %q at (%d,%d)", ErrInvalidLayout, ch, r, c)
				}
				haveStart = true
				opts = append(opts, WithStart(Cell{Row: r, Col: c}))
			case RuneEnd:
				if haveEnd {
					return nil, fmt.Errorf("%w: second %q at (%d,%d)", ErrInvalidLayout, ch, r, c)
				}
				haveEnd = true
				opts = append(opts, WithEnd(Cell{Row: r, Col: c}))
			case RuneStartEnd:
				if haveStart || haveEnd {
					return nil, fmt.Errorf("%w: %q at (%d,%d) repeats a marker", ErrInvalidLayout, ch, r, c)
				}
				haveStart, haveEnd = true, true
				opts = append(opts, WithStart(Cell{Row: r, Col: c}), WithEnd(Cell{Row: r, Col: c}))
			default:
				return nil, fmt.Errorf("%w: unknown rune %q at (%d,%d)", ErrInvalidLayout, ch, r, c)
			}
		}
	}

	return New(rows, cols, append(opts, WithBlocked(blocked...))...)
}

// MustParse is like Parse but panics on error. Intended for tests and
// examples with literal layouts.
func MustParse(lines ...string) *Grid {
	g, err := Parse(lines)
	if err != nil {
		panic(err)
	}
	return g
}

// Lines renders the grid in Parse syntax, one string per row.
// When start == end the cell is shown as 'X', so Parse restores both.
func (g *Grid) Lines() []string {
	out := make([]string, g.rows)
	var sb strings.Builder
	for r := 0; r < g.rows; r++ {
		sb.Reset()
		for c := 0; c < g.cols; c++ {
			sb.WriteRune(g.runeAt(Cell{Row: r, Col: c}))
		}
		out[r] = sb.String()
	}
	return out
}

// String renders the grid in Parse syntax with rows separated by newlines.
func (g *Grid) String() string {
	return strings.Join(g.Lines(), "\n")
}

// runeAt returns the layout rune for c.
func (g *Grid) runeAt(c Cell) rune {
	switch {
	case c == g.start && c == g.end:
		return RuneStartEnd
	case c == g.start:
		return RuneStart
	case c == g.end:
		return RuneEnd
	case g.blocked[g.Index(c)]:
		return RuneBlocked
	default:
		return RunePassable
	}
}
