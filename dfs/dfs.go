// Package dfs implements a resumable depth-first path search on a grid.Grid.
//
// The walker keeps an explicit stack of frames instead of recursing, so the
// search depth is bounded only by the number of Passable cells, never by the
// goroutine stack. Each frame records its cell, that cell's neighbors in the
// fixed East, South, West, North order, and a cursor into them; the stack's
// cells are the current candidate path.
//
// Every Step call performs one unit of work and returns exactly one event:
//
//   - frame entry:  event.Visiting(cell)
//   - end reached:  event.PathFound, on the call after Visiting(end)
//   - frame exit:   event.Backtrack(cell), the cell is popped off the path
//   - stack empty:  event.Exhausted
//   - cancellation: event.Cancelled
//
// Attempts on a cell that is already visited or not passable are pruned
// inside the same call: they mark nothing and emit nothing.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/gridwalk/event"
	"github.com/katalvlaran/gridwalk/grid"
)

// frame is one resumable level of the depth-first descent.
type frame struct {
	cell grid.Cell   // cell entered by this frame
	nbrs []grid.Cell // neighbors in priority order
	next int         // cursor: index of the next neighbor to attempt
}

// Walker encapsulates the mutable state of one depth-first search.
// A Walker is not safe for concurrent use.
type Walker struct {
	g          *grid.Grid
	opts       DFSOptions
	start, end grid.Cell

	stack   []frame     // explicit call stack
	path    []grid.Cell // candidate path, parallel to stack
	visited []bool      // row-major visited flags
	pending *grid.Cell  // cell whose entry is attempted next, if any
	reached bool        // end was entered; PathFound is due

	state State
	last  event.Event // sticky terminal event
	seq   int
}

// NewWalker prepares a depth-first search from start to end on g.
// Returns ErrGridNil for a nil grid and grid.ErrInvalidEndpoint when start or
// end is out of bounds or Blocked.
// Complexity: O(R×C) for the visited flags.
func NewWalker(g *grid.Grid, start, end grid.Cell, opts ...Option) (*Walker, error) {
	// 1. Validate input grid and endpoints
	if g == nil {
		return nil, ErrGridNil
	}
	if !g.IsPassable(start) {
		return nil, fmt.Errorf("%w: dfs start %v", grid.ErrInvalidEndpoint, start)
	}
	if !g.IsPassable(end) {
		return nil, fmt.Errorf("%w: dfs end %v", grid.ErrInvalidEndpoint, end)
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Seed the machine with an attempt on start
	s := start
	w := &Walker{
		g:       g,
		opts:    o,
		start:   start,
		end:     end,
		visited: make([]bool, g.Len()),
		pending: &s,
		state:   Exploring,
	}

	// Trivial search: start is the end, no frame is ever entered
	if start == end {
		w.pending = nil
		w.path = []grid.Cell{start}
		w.reached = true
	}
	return w, nil
}

// State returns the walker's current state.
func (w *Walker) State() State { return w.state }

// Done reports whether the walker reached a terminal state.
func (w *Walker) Done() bool { return w.state.Terminal() }

// Depth returns the current length of the candidate path.
func (w *Walker) Depth() int { return len(w.path) }

// Step advances the search by one frame entry or exit and returns the
// resulting event. After a terminal event every further call returns that
// same event again.
func (w *Walker) Step() event.Event {
	if w.state.Terminal() {
		return w.last
	}
	// 1. Cancellation check at every call
	if w.cancelled() {
		return w.finish(Cancelled, event.Event{Kind: event.Cancelled})
	}
	if w.reached {
		return w.finish(Found, event.Found(w.path))
	}

	for {
		// 2. Frame entry: attempt the pending cell
		if w.pending != nil {
			c := *w.pending
			w.pending = nil
			if ev, entered := w.enter(c); entered {
				return ev
			}
			// pruned: resume the parent frame in the same call
			continue
		}

		// 3. Nothing left on the stack: every branch from start failed
		if len(w.stack) == 0 {
			return w.finish(Exhausted, event.Event{Kind: event.Exhausted})
		}

		// 4. Resume the top frame: descend into its next neighbor
		top := &w.stack[len(w.stack)-1]
		if top.next < len(top.nbrs) {
			if w.cancelled() {
				return w.finish(Cancelled, event.Event{Kind: event.Cancelled})
			}
			nb := top.nbrs[top.next]
			top.next++
			if !w.g.InBounds(nb) {
				panic(fmt.Errorf("%w: dfs neighbor %v of %v", grid.ErrOutOfBounds, nb, top.cell))
			}
			w.pending = &nb
			continue
		}

		// 5. Frame exit: all neighbors failed, pop and report the backtrack
		return w.exit()
	}
}

// enter performs a frame entry on c. It reports false for a pruned attempt
// (already visited or not passable), which marks and emits nothing.
// Entering end emits Visiting(end) and leaves PathFound for the next call.
func (w *Walker) enter(c grid.Cell) (event.Event, bool) {
	if !w.g.IsPassable(c) || w.visited[w.g.Index(c)] {
		return event.Event{}, false
	}

	w.visited[w.g.Index(c)] = true
	w.path = append(w.path, c)

	if c == w.end {
		w.reached = true
		return w.emit(event.Event{Kind: event.Visiting, Cell: c, Depth: len(w.path) - 1}), true
	}

	w.stack = append(w.stack, frame{cell: c, nbrs: w.g.Neighbors(c)})
	w.state = Exploring

	return w.emit(event.Event{Kind: event.Visiting, Cell: c, Depth: len(w.path) - 1}), true
}

// exit pops the top frame and its path entry.
func (w *Walker) exit() event.Event {
	top := w.stack[len(w.stack)-1]
	w.stack = w.stack[:len(w.stack)-1]
	w.path = w.path[:len(w.path)-1]
	w.state = Backtracking

	return w.emit(event.Event{Kind: event.Backtrack, Cell: top.cell, Depth: len(w.path)})
}

// cancelled polls the context without blocking.
func (w *Walker) cancelled() bool {
	select {
	case <-w.opts.Ctx.Done():
		return true
	default:
		return false
	}
}

// emit stamps the next sequence number onto ev.
func (w *Walker) emit(ev event.Event) event.Event {
	w.seq++
	ev.Seq = w.seq
	return ev
}

// finish settles the walker in a terminal state and drops the search state.
func (w *Walker) finish(s State, ev event.Event) event.Event {
	w.state = s
	w.last = w.emit(ev)
	w.stack = nil
	w.path = nil
	w.visited = nil
	w.pending = nil
	w.reached = false
	return w.last
}
