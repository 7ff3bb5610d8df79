// Package session drives a dfs or bfs search one event at a time on behalf
// of a renderer or a command-line front end.
//
// What:
//
//   - Board owns a grid.Grid and at most one active Session on it.
//   - Board.Start(ctx, algo, opts...) validates the endpoints, builds the
//     engine and registers the session; Board.Replace swaps the grid.
//   - Session.Step returns exactly one event per call; Session.Run steps to
//     completion; Session.Events exposes the same stream as an iter.Seq.
//   - Session.Cancel makes the next Step return event.Cancelled, forever.
//     Cancelling the ctx passed to Start has the same effect.
//
// Policy:
//
//	One search per board. While a session has not produced its terminal
//	event (or been cancelled) both Start and Replace fail with
//	ErrSessionAlreadyActive; the caller cancels the running search first.
//	The grid under a running search therefore never changes.
//
// Logging:
//
//	Lifecycle records (start, finish, step-limit) go to the zerolog.Logger
//	carried by the ctx given to Start, at debug level; individual events at
//	trace level. A ctx without a logger logs nothing.
//
// Errors:
//
//   - ErrGridNil              nil grid for NewBoard or Replace
//   - ErrUnknownAlgorithm     algorithm other than DFS or BFS
//   - ErrSessionAlreadyActive Start or Replace while a search runs
//   - grid.ErrInvalidEndpoint start or end out of bounds or Blocked
//   - ErrStepLimit            Run exceeded its step budget
//
// Usage:
//
//	b, _ := session.NewBoard(g)
//	s, err := b.Start(ctx, session.BFS, session.WithSkipEndpoints())
//	if err != nil {
//		// handle
//	}
//	for ev := range s.Events() {
//		canvas.Apply(ev)
//	}
package session
