package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/gridwalk/bfs"
	"github.com/katalvlaran/gridwalk/dfs"
	"github.com/katalvlaran/gridwalk/event"
	"github.com/katalvlaran/gridwalk/grid"
)

// engine is the stepping surface shared by dfs.Walker and bfs.Walker.
type engine interface {
	Step() event.Event
	Done() bool
}

// Board owns a grid and at most one active Session on it.
// Board methods are safe for concurrent use.
type Board struct {
	mu     sync.Mutex
	g      *grid.Grid
	active *Session
}

// NewBoard wraps g. Returns ErrGridNil for a nil grid.
func NewBoard(g *grid.Grid) (*Board, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	return &Board{g: g}, nil
}

// Grid returns the board's current grid.
func (b *Board) Grid() *grid.Grid {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.g
}

// Active returns the running session, or nil when the board is idle.
func (b *Board) Active() *Session {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.active
}

// Replace swaps in a new grid (regenerate, reset maze). The grid of a
// running search never changes under it, so Replace fails with
// ErrSessionAlreadyActive while a session is active.
func (b *Board) Replace(g *grid.Grid) error {
	if g == nil {
		return ErrGridNil
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.active != nil {
		return ErrSessionAlreadyActive
	}
	b.g = g
	return nil
}

// Start begins a search with algo on the board's grid.
//
// Steps:
//  1. Validate algo and apply options.
//  2. Reject when another session is active.
//  3. Build the engine; it validates the endpoints.
//  4. Register the session as active and watch ctx for cancellation.
//
// The logger travels in ctx (zerolog.Ctx); without one nothing is logged.
// Errors: ErrUnknownAlgorithm, ErrSessionAlreadyActive, grid.ErrInvalidEndpoint.
func (b *Board) Start(ctx context.Context, algo Algorithm, opts ...Option) (*Session, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	// 1. Algorithm and options
	if algo != DFS && algo != BFS {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, uint8(algo))
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	// 2. One active session per board
	if b.active != nil {
		return nil, ErrSessionAlreadyActive
	}

	start, end := b.g.Start(), b.g.End()
	if o.Start != nil {
		start = *o.Start
	}
	if o.End != nil {
		end = *o.End
	}

	// 3. Engine on a session-owned context
	sctx, cancel := context.WithCancel(ctx)
	eng, err := newEngine(sctx, algo, b.g, start, end)
	if err != nil {
		cancel()
		return nil, err
	}

	limit := o.StepLimit
	if limit == 0 {
		limit = 2*b.g.Len() + 1
	}
	s := &Session{
		board:  b,
		algo:   algo,
		start:  start,
		end:    end,
		eng:    eng,
		cancel: cancel,
		skip:   o.SkipEndpoints,
		limit:  limit,
		log:    zerolog.Ctx(ctx),
	}

	// 4. Parent cancellation frees the board even if nobody steps again
	s.stop = context.AfterFunc(sctx, func() { b.release(s) })
	b.active = s

	s.log.Debug().
		Stringer("algorithm", algo).
		Stringer("start", start).
		Stringer("end", end).
		Int("rows", b.g.Rows()).
		Int("cols", b.g.Cols()).
		Msg("search started")
	return s, nil
}

// release clears the active slot if s still holds it.
func (b *Board) release(s *Session) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.active == s {
		b.active = nil
	}
}

func newEngine(ctx context.Context, algo Algorithm, g *grid.Grid, start, end grid.Cell) (engine, error) {
	if algo == DFS {
		return dfs.NewWalker(g, start, end, dfs.WithContext(ctx))
	}
	return bfs.NewWalker(g, start, end, bfs.WithContext(ctx))
}
