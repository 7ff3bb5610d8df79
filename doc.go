// Package gridwalk is a step-by-step playground for path search on a
// rectangular obstacle grid: generate a board, pick depth-first or
// breadth-first search, and watch it one event at a time.
//
// 🚀 What is gridwalk?
//
//	An incremental search engine whose every step is observable:
//		• Grid: seeded random obstacles, fixed East, South, West, North neighbors
//		• DFS: explicit-stack depth-first walker with visible backtracking
//		• BFS: layered walker with frontier events and shortest paths
//		• Session: one search per board, step / run / cancel, iter.Seq events
//		• Render: ASCII canvas driven purely by events
//
// ✨ Why gridwalk?
//
//   - Resumable: a search pauses between any two events, no goroutines
//   - Deterministic: the same seed and layout give the same event stream
//   - Deep-safe: no recursion, a path may visit every cell of the grid
//   - Cancellable: context.Context or Session.Cancel, observed on every step
//
// Packages:
//
//	grid/         Grid, Cell, neighbor rule, Generate, Parse, flood fill
//	event/        Event kinds and path validation
//	dfs/          depth-first walker
//	bfs/          breadth-first walker
//	session/      Board (one active search) and Session
//	render/       ASCII canvas and status line
//	scenario/     HCL / YAML scenario files and GRIDWALK_* overrides
//	cmd/gridwalk  command-line front end
//
// Quick ASCII example (BFS on a 3×3 board, S start, E end, # wall):
//
//	S . #        S o #
//	. # .   →    * # .
//	. . E        * * E
//
//	go run ./cmd/gridwalk -rows 30 -cols 60 -algo dfs -mode step
package gridwalk
