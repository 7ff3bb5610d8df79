package session

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridwalk/grid"
)

// Sentinel errors returned by Board and Session.
var (
	// ErrGridNil is returned when a nil grid is handed to a Board.
	ErrGridNil = errors.New("session: grid is nil")

	// ErrSessionAlreadyActive is returned by Start and Replace while a
	// search on the board has not reached a terminal event.
	ErrSessionAlreadyActive = errors.New("session: a search is already active on this board")

	// ErrUnknownAlgorithm is returned for an Algorithm outside {DFS, BFS}.
	ErrUnknownAlgorithm = errors.New("session: unknown algorithm")

	// ErrStepLimit is returned by Run when the search did not terminate
	// within its step budget.
	ErrStepLimit = errors.New("session: step limit exceeded")
)

// Algorithm selects the search engine of a session.
type Algorithm uint8

const (
	// DFS is the depth-first engine: some path, not necessarily shortest.
	DFS Algorithm = iota + 1
	// BFS is the breadth-first engine: a shortest path.
	BFS
)

// String returns "dfs" or "bfs".
func (a Algorithm) String() string {
	switch a {
	case DFS:
		return "dfs"
	case BFS:
		return "bfs"
	default:
		return fmt.Sprintf("algorithm(%d)", uint8(a))
	}
}

// ParseAlgorithm maps a case-insensitive name to an Algorithm.
// Accepts "dfs", "depth-first", "bfs" and "breadth-first".
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dfs", "depth-first":
		return DFS, nil
	case "bfs", "breadth-first":
		return BFS, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

// Option configures a Session via functional arguments.
type Option func(*Options)

// Options holds parameters to customize a Session.
type Options struct {
	// Start and End override the grid's endpoints when non-nil.
	Start, End *grid.Cell

	// SkipEndpoints drops Visiting events whose cell is start or end. Only
	// DFS reports them; BFS never visits its endpoints.
	SkipEndpoints bool

	// StepLimit caps the engine steps Run may take; 0 means the bound
	// 2×cells+1, which no valid search exceeds.
	StepLimit int
}

// DefaultOptions returns Options with the grid's endpoints and no limit override.
func DefaultOptions() Options {
	return Options{}
}

// WithEndpoints searches from start to end instead of the grid's endpoints.
func WithEndpoints(start, end grid.Cell) Option {
	return func(o *Options) {
		o.Start = &start
		o.End = &end
	}
}

// WithSkipEndpoints suppresses Visiting events for the start and end cells.
func WithSkipEndpoints() Option {
	return func(o *Options) {
		o.SkipEndpoints = true
	}
}

// WithStepLimit caps the number of engine steps Run may take. Values <= 0
// keep the default bound.
func WithStepLimit(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.StepLimit = n
		}
	}
}
