package session

import (
	"context"
	"iter"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/gridwalk/event"
	"github.com/katalvlaran/gridwalk/grid"
)

// Session is one search started by Board.Start.
//
// A Session is driven from a single goroutine: Step, Run and Events are not
// safe for concurrent use. Cancel may be called from any goroutine.
type Session struct {
	board      *Board
	algo       Algorithm
	start, end grid.Cell
	eng        engine
	cancel     context.CancelFunc
	stop       func() bool // unregisters the ctx watcher
	skip       bool
	limit      int
	steps      int
	log        *zerolog.Logger

	done   bool
	result event.Event
}

// Algorithm returns the engine the session runs.
func (s *Session) Algorithm() Algorithm { return s.algo }

// Endpoints returns the session's start and end cells.
func (s *Session) Endpoints() (start, end grid.Cell) { return s.start, s.end }

// Steps returns the number of engine steps taken so far.
func (s *Session) Steps() int { return s.steps }

// Step advances the search and returns the next event. After a terminal
// event every further call returns it again without touching the engine.
// With WithSkipEndpoints, Visiting events on start or end are consumed
// silently and the following event is returned instead.
func (s *Session) Step() event.Event {
	if s.done {
		return s.result
	}
	for {
		ev := s.eng.Step()
		s.steps++
		if ev.Terminal() {
			s.settle(ev)
			return ev
		}
		if s.skip && ev.Kind == event.Visiting && (ev.Cell == s.start || ev.Cell == s.end) {
			continue
		}
		s.log.Trace().Stringer("event", ev).Msg("step")
		return ev
	}
}

// Run steps the search to completion and returns the terminal event.
// If the engine has not terminated after the step limit the session is
// cancelled and Run returns the Cancelled event with ErrStepLimit.
func (s *Session) Run() (event.Event, error) {
	for !s.done {
		if s.steps >= s.limit {
			s.log.Warn().Int("limit", s.limit).Msg("step limit reached, cancelling search")
			s.Cancel()
			return s.Step(), ErrStepLimit
		}
		s.Step()
	}
	return s.result, nil
}

// Cancel requests termination. The next Step returns Cancelled, and so does
// every Step after it. The board is released right away. Cancel after a
// terminal event is a no-op.
func (s *Session) Cancel() {
	s.cancel()
	s.board.release(s)
}

// Done reports whether Step has returned a terminal event.
func (s *Session) Done() bool { return s.done }

// Result returns the terminal event and true once the search is done.
func (s *Session) Result() (event.Event, bool) {
	return s.result, s.done
}

// Events returns the remaining events as a lazy sequence ending with the
// terminal event. The sequence is not restartable: events consumed by an
// earlier range, Step or Run are not produced again, and ranging over a
// finished session yields nothing.
func (s *Session) Events() iter.Seq[event.Event] {
	return func(yield func(event.Event) bool) {
		for !s.done {
			if !yield(s.Step()) {
				return
			}
		}
	}
}

// settle records the terminal event and frees the board.
func (s *Session) settle(ev event.Event) {
	s.done = true
	s.result = ev
	s.stop()
	s.cancel()
	s.board.release(s)

	l := s.log.Debug().
		Stringer("algorithm", s.algo).
		Stringer("result", ev.Kind).
		Int("steps", s.steps)
	if ev.Kind == event.PathFound {
		l = l.Int("path_len", len(ev.Path))
	}
	l.Msg("search finished")
}
