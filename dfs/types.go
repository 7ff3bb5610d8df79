// Package dfs defines options, states and sentinel errors for the
// step-wise depth-first search walker.
package dfs

import (
	"context"
	"errors"
)

// ErrGridNil is returned when a nil *grid.Grid is passed to NewWalker.
var ErrGridNil = errors.New("dfs: grid is nil")

// State is the walker's position in the DFS state machine.
type State uint8

const (
	// Exploring: the last step entered a frame (or the walk has not started).
	Exploring State = iota
	// Backtracking: the last step exited a frame whose neighbors all failed.
	Backtracking
	// Found: the end cell was entered; terminal.
	Found
	// Exhausted: the start frame exited without reaching end; terminal.
	Exhausted
	// Cancelled: cancellation was observed; terminal.
	Cancelled
)

var stateNames = [...]string{
	Exploring:    "exploring",
	Backtracking: "backtracking",
	Found:        "found",
	Exhausted:    "exhausted",
	Cancelled:    "cancelled",
}

// String returns the lower-case state name.
func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// Terminal reports whether no further steps can change the outcome.
func (s State) Terminal() bool {
	return s == Found || s == Exhausted || s == Cancelled
}

// Option configures optional behavior of a Walker.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for a Walker.
type DFSOptions struct {
	// Ctx allows cancellation; defaults to context.Background().
	// Once Ctx is done the walker settles in Cancelled.
	Ctx context.Context
}

// DefaultOptions returns a DFSOptions with a background context.
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx: context.Background(),
	}
}

// WithContext returns an Option that sets the Context used for cancellation.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}
