// Package bfs provides a step-wise breadth-first path search over a
// grid.Grid that reports an unweighted shortest path.
//
// One unit of work dequeues the front cell and scans its neighbors in the
// fixed East, South, West, North order. The events of that unit (Visiting
// for the dequeued cell unless it is start, Frontier for every newly
// enqueued neighbor, and a PathFound when end is discovered) are handed out
// one per Step call. End is never dequeued, so it is never Visiting either.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/gridwalk/event"
	"github.com/katalvlaran/gridwalk/grid"
)

// queueItem pairs a row-major cell index with its BFS depth.
type queueItem struct {
	idx   int
	depth int
}

// Walker encapsulates mutable BFS state for one search.
// A Walker is not safe for concurrent use.
type Walker struct {
	g          *grid.Grid
	opts       BFSOptions
	start, end grid.Cell

	queue   []queueItem
	head    int
	visited []bool
	parent  []int // row-major predecessor index, -1 for start

	pending []event.Event // events of the current unit not yet returned
	status  Status
	last    event.Event
	seq     int
}

// NewWalker prepares a breadth-first search from start to end on g, with
// start already marked visited and enqueued.
// Returns ErrGridNil for a nil grid and grid.ErrInvalidEndpoint when start or
// end is out of bounds or Blocked.
// Complexity: O(R×C) for visited and parent slices.
func NewWalker(g *grid.Grid, start, end grid.Cell, opts ...Option) (*Walker, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	if !g.IsPassable(start) {
		return nil, fmt.Errorf("%w: bfs start %v", grid.ErrInvalidEndpoint, start)
	}
	if !g.IsPassable(end) {
		return nil, fmt.Errorf("%w: bfs end %v", grid.ErrInvalidEndpoint, end)
	}

	// Build options
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := g.Len()
	w := &Walker{
		g:       g,
		opts:    o,
		start:   start,
		end:     end,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		parent:  make([]int, n),
	}

	// Trivial search: start is the end, no neighbor is ever explored
	if start == end {
		w.pending = append(w.pending, event.Found([]grid.Cell{start}))
		return w, nil
	}

	// Seed queue with start (no parent)
	si := g.Index(start)
	w.visited[si] = true
	w.parent[si] = -1
	w.queue = append(w.queue, queueItem{idx: si, depth: 0})

	return w, nil
}

// Status returns the walker's current status.
func (w *Walker) Status() Status { return w.status }

// Done reports whether a terminal event has been returned.
func (w *Walker) Done() bool { return w.status != Searching }

// Frontier returns the number of enqueued cells not yet dequeued.
func (w *Walker) Frontier() int { return len(w.queue) - w.head }

// Step returns the next event. A new unit of work (one dequeue) starts only
// when the events of the previous unit are used up. After a terminal event
// every further call returns that same event.
func (w *Walker) Step() event.Event {
	if w.status != Searching {
		return w.last
	}
	// 1. Cancellation check (once per call, so before every emitted event)
	select {
	case <-w.opts.Ctx.Done():
		return w.finish(event.Event{Kind: event.Cancelled})
	default:
	}

	// 2. Start new units until one buffers an event (the start unit may be
	// silent when all its neighbors are blocked)
	for len(w.pending) == 0 {
		if w.head == len(w.queue) {
			return w.finish(event.Event{Kind: event.Exhausted})
		}
		w.expand(w.dequeue())
	}

	// 3. Hand out the next buffered event
	ev := w.pending[0]
	w.pending = w.pending[1:]
	if ev.Kind.Terminal() {
		return w.finish(ev)
	}
	return w.emit(ev)
}

// dequeue pops the front item.
func (w *Walker) dequeue() queueItem {
	item := w.queue[w.head]
	w.head++
	return item
}

// expand buffers the events of one unit: Visiting for item (not for start),
// then for each
// unseen neighbor either Frontier (enqueued) or PathFound (end discovered,
// which stops the scan and abandons everything still queued).
func (w *Walker) expand(item queueItem) {
	cur := w.g.CellAt(item.idx)
	if cur != w.start {
		w.pending = append(w.pending, event.Event{Kind: event.Visiting, Cell: cur, Depth: item.depth})
	}

	for _, nb := range w.g.Neighbors(cur) {
		if !w.g.InBounds(nb) {
			panic(fmt.Errorf("%w: bfs neighbor %v of %v", grid.ErrOutOfBounds, nb, cur))
		}
		ni := w.g.Index(nb)
		if w.visited[ni] {
			continue
		}
		w.visited[ni] = true
		w.parent[ni] = item.idx

		if nb == w.end {
			w.pending = append(w.pending, event.Found(w.pathTo(ni)))
			return
		}
		w.queue = append(w.queue, queueItem{idx: ni, depth: item.depth + 1})
		w.pending = append(w.pending, event.Event{Kind: event.Frontier, Cell: nb, Depth: item.depth + 1})
	}
}

// pathTo reconstructs the path from start to the cell at idx via parent links.
func (w *Walker) pathTo(idx int) []grid.Cell {
	var path []grid.Cell
	for at := idx; at >= 0; at = w.parent[at] {
		path = append(path, w.g.CellAt(at))
	}
	// reverse to get start → idx
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// emit stamps the next sequence number onto ev.
func (w *Walker) emit(ev event.Event) event.Event {
	w.seq++
	ev.Seq = w.seq
	return ev
}

// finish records the terminal event and discards queue, visited set and buffer.
func (w *Walker) finish(ev event.Event) event.Event {
	switch ev.Kind {
	case event.PathFound:
		w.status = Found
	case event.Exhausted:
		w.status = Exhausted
	default:
		w.status = Cancelled
	}
	w.last = w.emit(ev)
	w.queue = nil
	w.head = 0
	w.visited = nil
	w.parent = nil
	w.pending = nil
	return w.last
}
