// Package bfs provides a step-wise breadth-first path search over a
// grid.Grid, returning an unweighted shortest path from start to end.
//
// What
//
//   - Explore cells in non-decreasing distance (edge count) from start.
//   - FIFO queue of cells; visited set seeded with start; parent links
//     rebuild the path-so-far of any discovered cell.
//   - One unit of work dequeues the front cell and produces, in order:
//   - Visiting(cell)        for the dequeued cell, except start
//   - Frontier(neighbor)    for each newly enqueued neighbor
//   - PathFound(path)       as soon as end is discovered as a neighbor;
//     the scan stops immediately and everything still queued is abandoned
//   - Exhausted is produced when the queue empties first.
//   - Step hands out exactly one event per call.
//
// Why
//
//   - Every edge has weight 1 and the queue is FIFO, so cells are discovered
//     in non-decreasing distance: the first discovery of end records a
//     shortest path. Among equal-length shortest paths the fixed neighbor
//     order (East, South, West, North) decides which one is reported.
//
// Determinism
//
//	The neighbor order comes from grid.Neighbors and the queue is FIFO, so
//	the event sequence is fully reproducible for a given grid.
//
// Cancellation
//
//	WithContext(ctx): the context is polled at the start of every Step. A
//	cancelled walker returns Cancelled, drops its queue, visited set and
//	buffered events, and returns Cancelled forever after.
//
// Complexity (N = R×C)
//
//   - Time:   O(N) for a whole search, O(1) amortized per Step
//   - Memory: O(N) for queue, visited flags and parent links
//
// Errors
//
//   - ErrGridNil              if the grid pointer is nil.
//   - grid.ErrInvalidEndpoint if start or end is out of bounds or Blocked.
package bfs
