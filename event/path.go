package event

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridwalk/grid"
)

// Sentinel errors reported by ValidatePath.
var (
	// ErrEmptyPath indicates a path with no cells.
	ErrEmptyPath = errors.New("event: empty path")

	// ErrPathEndpoints indicates a path that does not run from start to end.
	ErrPathEndpoints = errors.New("event: path does not join start and end")

	// ErrPathStep indicates two consecutive cells that are not 4-adjacent.
	ErrPathStep = errors.New("event: consecutive cells are not neighbors")

	// ErrPathBlocked indicates a path through a Blocked or out-of-bounds cell.
	ErrPathBlocked = errors.New("event: path crosses a blocked cell")

	// ErrPathRepeat indicates a cell that appears twice.
	ErrPathRepeat = errors.New("event: path repeats a cell")
)

// ValidatePath checks that path is a simple 4-connected walk over Passable
// cells of g from start to end.
// Complexity: O(len(path)).
func ValidatePath(g *grid.Grid, start, end grid.Cell, path []grid.Cell) error {
	if len(path) == 0 {
		return ErrEmptyPath
	}
	if path[0] != start || path[len(path)-1] != end {
		return fmt.Errorf("%w: got %v..%v, want %v..%v",
			ErrPathEndpoints, path[0], path[len(path)-1], start, end)
	}

	seen := make(map[grid.Cell]struct{}, len(path))
	for i, c := range path {
		if !g.IsPassable(c) {
			return fmt.Errorf("%w: %v at index %d", ErrPathBlocked, c, i)
		}
		if _, dup := seen[c]; dup {
			return fmt.Errorf("%w: %v at index %d", ErrPathRepeat, c, i)
		}
		seen[c] = struct{}{}
		if i > 0 && !grid.IsNeighbor(path[i-1], c) {
			return fmt.Errorf("%w: %v -> %v at index %d", ErrPathStep, path[i-1], c, i)
		}
	}
	return nil
}
