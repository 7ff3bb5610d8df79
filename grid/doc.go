// Package grid models a rectangular 2-D obstacle map with designated start
// and end cells, the board every gridwalk search runs on.
//
// What:
//
//   - Grid holds Rows×Cols cells, each Passable or Blocked, stored row-major.
//   - Start and End are always Passable: every constructor clears any
//     obstacle at those coordinates, even at obstacle density 1.0.
//   - Neighbors implements the 4-directional neighbor rule in the fixed
//     priority order East, South, West, North.
//   - Generate fills a grid with random obstacles, deterministic per seed.
//   - Parse/String convert to and from a text layout ('#', '.', 'S', 'E', and 'X' for a
//     shared start and end).
//   - Reachable/Connected give a plain flood-fill connectivity answer.
//
// Why:
//
//   - The neighbor order decides which path DFS discovers and which of
//     several equal-length shortest paths BFS reports, so it is fixed here
//     once for every engine.
//   - A Grid never changes after construction; engines borrow it read-only
//     and a "regenerate" builds a new Grid.
//
// Complexity:
//
//   - IsPassable, InBounds, Index: O(1).
//   - Neighbors:                   O(1) (at most 4 cells).
//   - Generate, Parse, String:     O(R×C).
//   - Reachable, Connected:        O(R×C) time and memory.
//
// Errors:
//
//   - ErrEmptyGrid:       rows or cols < 1, or empty layout.
//   - ErrNonRectangular:  layout rows of differing lengths.
//   - ErrInvalidLayout:   unknown rune or duplicated 'S'/'E'/'X' in a layout.
//   - ErrInvalidDensity:  density outside [0,1].
//   - ErrOutOfBounds:     a cell outside the grid where one is required.
//   - ErrInvalidEndpoint: start or end is out of bounds or Blocked.
package grid
