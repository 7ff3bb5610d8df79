// Package bfs provides tunable options and error definitions
// for the step-wise breadth-first search walker.
package bfs

import (
	"context"
	"errors"
)

// ErrGridNil is returned if a nil grid pointer is passed.
var ErrGridNil = errors.New("bfs: grid is nil")

// Option configures a Walker via functional arguments.
type Option func(*BFSOptions)

// BFSOptions holds parameters to customize a Walker.
type BFSOptions struct {
	// Ctx allows cancellation; checked at the start of every Step.
	Ctx context.Context
}

// DefaultOptions returns a BFSOptions with context.Background().
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx: context.Background(),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// Status summarizes a Walker's progress.
type Status uint8

const (
	// Searching: the walker can still produce non-terminal events.
	Searching Status = iota
	// Found: the end cell was discovered; terminal.
	Found
	// Exhausted: the queue emptied before end was discovered; terminal.
	Exhausted
	// Cancelled: cancellation was observed; terminal.
	Cancelled
)

var statusNames = [...]string{
	Searching: "searching",
	Found:     "found",
	Exhausted: "exhausted",
	Cancelled: "cancelled",
}

// String returns the lower-case status name.
func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "unknown"
}
