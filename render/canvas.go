// Package render draws a grid and the events of a search on it as ASCII.
//
// A Canvas only ever sees events, never engine state: applying the event
// stream of a session in order reproduces what the search has done so far.
//
//	S  start            .  passable, untouched
//	E  end              o  visited (DFS entry or BFS dequeue)
//	#  blocked          +  frontier (BFS enqueued, not yet visited)
//	@  current cell     *  cell of the final path
package render

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridwalk/event"
	"github.com/katalvlaran/gridwalk/grid"
)

// Cell runes of a rendered canvas.
const (
	RuneStart    = grid.RuneStart
	RuneEnd      = grid.RuneEnd
	RuneBlocked  = grid.RuneBlocked
	RuneEmpty    = grid.RunePassable
	RuneVisited  = 'o'
	RuneFrontier = '+'
	RuneCurrent  = '@'
	RunePath     = '*'
)

// mark is the overlay state of one cell.
type mark uint8

const (
	markNone mark = iota
	markFrontier
	markVisited
	markPath
)

// Canvas is an overlay of search progress on a grid.
// A Canvas is not safe for concurrent use.
type Canvas struct {
	g          *grid.Grid
	start, end grid.Cell
	marks      []mark
	current    int // row-major index of the current cell, -1 for none
}

// NewCanvas returns an empty overlay on g with the given endpoints.
func NewCanvas(g *grid.Grid, start, end grid.Cell) *Canvas {
	return &Canvas{
		g:       g,
		start:   start,
		end:     end,
		marks:   make([]mark, g.Len()),
		current: -1,
	}
}

// Apply records ev on the canvas.
//
//   - Visiting marks the cell visited and makes it current.
//   - Frontier marks an untouched cell as frontier.
//   - Backtrack leaves the cell visited and clears current.
//   - PathFound marks every path cell.
//   - Exhausted and Cancelled clear current.
//
// Cells outside the grid are ignored.
func (c *Canvas) Apply(ev event.Event) {
	switch ev.Kind {
	case event.Visiting:
		if i, ok := c.index(ev.Cell); ok {
			c.marks[i] = markVisited
			c.current = i
		}
	case event.Frontier:
		if i, ok := c.index(ev.Cell); ok && c.marks[i] == markNone {
			c.marks[i] = markFrontier
		}
	case event.Backtrack:
		if i, ok := c.index(ev.Cell); ok {
			c.marks[i] = markVisited
		}
		c.current = -1
	case event.PathFound:
		for _, p := range ev.Path {
			if i, ok := c.index(p); ok {
				c.marks[i] = markPath
			}
		}
		c.current = -1
	default:
		c.current = -1
	}
}

// Reset clears the overlay and keeps the obstacles ("clear solution").
func (c *Canvas) Reset() {
	clear(c.marks)
	c.current = -1
}

// Visited returns the number of cells marked visited or path.
func (c *Canvas) Visited() int {
	n := 0
	for _, m := range c.marks {
		if m == markVisited || m == markPath {
			n++
		}
	}
	return n
}

// Lines renders one string per grid row.
// Endpoints always show as S and E, then blocked cells, then the current
// cell, then overlay marks.
func (c *Canvas) Lines() []string {
	rows, cols := c.g.Rows(), c.g.Cols()
	out := make([]string, rows)
	var b strings.Builder
	for r := 0; r < rows; r++ {
		b.Reset()
		for col := 0; col < cols; col++ {
			b.WriteRune(c.runeAt(grid.At(r, col)))
		}
		out[r] = b.String()
	}
	return out
}

// String joins Lines with newlines.
func (c *Canvas) String() string {
	return strings.Join(c.Lines(), "\n")
}

func (c *Canvas) runeAt(cell grid.Cell) rune {
	switch {
	case cell == c.start:
		return RuneStart
	case cell == c.end:
		return RuneEnd
	case !c.g.IsPassable(cell):
		return RuneBlocked
	}
	i := c.g.Index(cell)
	if i == c.current {
		return RuneCurrent
	}
	switch c.marks[i] {
	case markPath:
		return RunePath
	case markVisited:
		return RuneVisited
	case markFrontier:
		return RuneFrontier
	default:
		return RuneEmpty
	}
}

func (c *Canvas) index(cell grid.Cell) (int, bool) {
	if !c.g.InBounds(cell) {
		return 0, false
	}
	return c.g.Index(cell), true
}

// Status is the one-line summary shown next to the canvas, prefixed with
// the upper-cased algorithm name.
func Status(algo fmt.Stringer, ev event.Event) string {
	name := strings.ToUpper(algo.String())
	switch ev.Kind {
	case event.PathFound:
		return fmt.Sprintf("%s: Path found! length %d", name, len(ev.Path))
	case event.Exhausted:
		return fmt.Sprintf("%s: No path found", name)
	case event.Cancelled:
		return fmt.Sprintf("%s: Cancelled", name)
	default:
		return fmt.Sprintf("%s: %s %v", name, ev.Kind, ev.Cell)
	}
}
