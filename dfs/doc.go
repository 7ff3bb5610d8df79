// Package dfs implements a step-wise depth-first path search over a
// grid.Grid, driven one frame at a time so a caller can render progress.
//
// What:
//
//   - Walker explores as far as possible along each branch before
//     backtracking, trying neighbors in the fixed East, South, West, North
//     order and stopping at the first branch that reaches the end cell.
//   - State machine: Exploring, Backtracking, Found, Exhausted, Cancelled.
//   - Each Step returns one event.Event: Visiting on frame entry (end
//     included), Backtrack on frame exit, then a terminal PathFound,
//     Exhausted or Cancelled. PathFound follows Visiting(end) directly.
//   - Cancellation via context.Context, observed at every Step and before
//     every descent; once observed no further Visiting/Backtrack/PathFound
//     events are produced.
//
// Why:
//
//   - Visualize how depth-first search commits to a branch and unwinds.
//   - The reported path is valid (adjacent, passable, no repeats) but not
//     necessarily shortest; use package bfs for shortest paths.
//
// Depth:
//
//	Frames live on an explicit slice-backed stack, so a serpentine grid whose
//	path visits every one of R×C cells needs R×C frames and no recursion.
//
// Complexity:
//
//   - Whole search: Time O(R×C) steps, Memory O(R×C).
//   - Step:         O(1) amortized (pruned attempts are bounded by 4 per frame).
//
// Errors:
//
//   - ErrGridNil              grid pointer is nil
//   - grid.ErrInvalidEndpoint start or end out of bounds or Blocked
//
// Usage:
//
//	w, err := dfs.NewWalker(g, g.Start(), g.End(), dfs.WithContext(ctx))
//	if err != nil {
//		// handle
//	}
//	for ev := w.Step(); ; ev = w.Step() {
//		render(ev)
//		if ev.Terminal() {
//			break
//		}
//	}
package dfs
