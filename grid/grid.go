// Package grid provides the obstacle map and the neighbor rule shared by
// every search engine.
//
// Cells are addressed by Cell{Row, Col}; internally they are stored
// row-major at index Row*Cols + Col.
package grid

import "fmt"

// New constructs a rows×cols grid with no obstacles other than those given
// through WithBlocked. Start defaults to (0,0) and End to (rows-1, cols-1).
// Returns ErrEmptyGrid if rows or cols < 1, ErrOutOfBounds if a blocked
// cell lies outside the grid, and ErrInvalidEndpoint if start or end lies
// outside the grid.
// Complexity: O(R×C) time and memory.
func New(rows, cols int, opts ...Option) (*Grid, error) {
	// 1. Validate dimensions
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: rows=%d, cols=%d", ErrEmptyGrid, rows, cols)
	}

	// 2. Resolve options
	o := gridOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	g := &Grid{
		rows:    rows,
		cols:    cols,
		blocked: make([]bool, rows*cols),
		start:   Cell{},
		end:     Cell{Row: rows - 1, Col: cols - 1},
	}
	if o.startSet {
		g.start = o.start
	}
	if o.endSet {
		g.end = o.end
	}

	// 3. Apply explicit obstacles
	for _, c := range o.blocked {
		if !g.InBounds(c) {
			return nil, fmt.Errorf("%w: blocked cell %v in %dx%d grid", ErrOutOfBounds, c, rows, cols)
		}
		g.blocked[g.Index(c)] = true
	}

	// 4. Endpoints must exist and are always passable
	if err := g.clearEndpoints(); err != nil {
		return nil, err
	}

	return g, nil
}

// clearEndpoints validates start/end bounds and forces both cells Passable.
func (g *Grid) clearEndpoints() error {
	if !g.InBounds(g.start) {
		return fmt.Errorf("%w: start %v outside %dx%d grid", ErrInvalidEndpoint, g.start, g.rows, g.cols)
	}
	if !g.InBounds(g.end) {
		return fmt.Errorf("%w: end %v outside %dx%d grid", ErrInvalidEndpoint, g.end, g.rows, g.cols)
	}
	g.blocked[g.Index(g.start)] = false
	g.blocked[g.Index(g.end)] = false
	return nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Len returns the total number of cells, Rows()*Cols().
func (g *Grid) Len() int { return len(g.blocked) }

// Start returns the designated start cell.
func (g *Grid) Start() Cell { return g.start }

// End returns the designated end cell.
func (g *Grid) End() Cell { return g.end }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Index maps c to its row-major index: Row*Cols + Col.
// The result is meaningless for cells that are not InBounds.
// Complexity: O(1).
func (g *Grid) Index(c Cell) int {
	return c.Row*g.cols + c.Col
}

// CellAt converts a row-major index back to a Cell.
// Complexity: O(1).
func (g *Grid) CellAt(idx int) Cell {
	return Cell{Row: idx / g.cols, Col: idx % g.cols}
}

// State returns the traversability of c. Out-of-bounds cells report Blocked.
func (g *Grid) State(c Cell) State {
	if !g.IsPassable(c) {
		return Blocked
	}
	return Passable
}

// IsPassable reports whether c is in bounds and not Blocked.
// Complexity: O(1).
func (g *Grid) IsPassable(c Cell) bool {
	return g.InBounds(c) && !g.blocked[g.Index(c)]
}

// PassableCount returns the number of Passable cells. It bounds the depth
// of any DFS frame stack on this grid.
// Complexity: O(R×C).
func (g *Grid) PassableCount() int {
	n := 0
	for _, b := range g.blocked {
		if !b {
			n++
		}
	}
	return n
}

// Neighbors returns the traversable neighbors of c in the fixed priority
// order East, South, West, North. Directions that leave the grid or hit an
// obstacle are omitted; nothing is substituted for them.
// Complexity: O(1).
func (g *Grid) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, len(Directions))
	for _, d := range Directions {
		n := c.Add(d)
		if g.IsPassable(n) {
			out = append(out, n)
		}
	}
	return out
}

// IsNeighbor reports whether a and b are 4-adjacent.
func IsNeighbor(a, b Cell) bool {
	dr, dc := a.Row-b.Row, a.Col-b.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr+dc == 1
}

// WithEndpoints returns a copy of g with start and end replaced. Obstacles at
// the new endpoints are cleared, keeping the endpoint invariant.
// Returns ErrInvalidEndpoint if either cell is outside the grid.
// Complexity: O(R×C).
func (g *Grid) WithEndpoints(start, end Cell) (*Grid, error) {
	cp := &Grid{
		rows:    g.rows,
		cols:    g.cols,
		blocked: append([]bool(nil), g.blocked...),
		start:   start,
		end:     end,
	}
	if err := cp.clearEndpoints(); err != nil {
		return nil, err
	}
	return cp, nil
}
