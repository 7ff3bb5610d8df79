// Package event defines the step events emitted by gridwalk search engines.
//
// An Event is a tagged variant: Kind selects which of Cell, Path and Depth
// are meaningful. Events carry values only; they never reference the engine
// that produced them, so a renderer can hold on to them freely.
//
//	Kind       Cell      Path                 Depth
//	Visiting   visited   -                    distance from start along the current path
//	Frontier   enqueued  -                    BFS layer of the cell
//	Backtrack  popped    -                    depth of the popped frame
//	PathFound  end       start..end (inclusive) len(Path)-1
//	Exhausted  -         -                    -
//	Cancelled  -         -                    -
package event

import (
	"fmt"

	"github.com/katalvlaran/gridwalk/grid"
)

// Kind tags an Event.
type Kind uint8

const (
	// Visiting reports a cell being processed: a DFS frame entry or a BFS dequeue.
	Visiting Kind = iota
	// Frontier reports a cell newly enqueued by BFS but not yet processed.
	Frontier
	// Backtrack reports a DFS frame exit: the cell leaves the candidate path.
	Backtrack
	// PathFound is terminal and carries the path from start to end.
	PathFound
	// Exhausted is terminal: no passable path connects start and end.
	Exhausted
	// Cancelled is terminal: the search was cancelled before completing.
	Cancelled
)

var kindNames = [...]string{
	Visiting:  "visiting",
	Frontier:  "frontier",
	Backtrack: "backtrack",
	PathFound: "path_found",
	Exhausted: "exhausted",
	Cancelled: "cancelled",
}

// String returns the snake_case name of k.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// MarshalText encodes k by name, so JSON output reads "path_found" not 3.
func (k Kind) MarshalText() ([]byte, error) {
	if int(k) >= len(kindNames) {
		return nil, fmt.Errorf("event: unknown kind %d", uint8(k))
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText is the inverse of MarshalText.
func (k *Kind) UnmarshalText(b []byte) error {
	for i, name := range kindNames {
		if name == string(b) {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("event: unknown kind %q", b)
}

// Terminal reports whether k ends a search.
func (k Kind) Terminal() bool {
	return k == PathFound || k == Exhausted || k == Cancelled
}

// Event is one step of a search.
type Event struct {
	Kind  Kind        `json:"kind"`
	Cell  grid.Cell   `json:"cell"`
	Path  []grid.Cell `json:"path,omitempty"`
	Depth int         `json:"depth"`
	// Seq numbers events of one search from 1 in emission order.
	Seq int `json:"seq"`
}

// Terminal reports whether e ends a search.
func (e Event) Terminal() bool { return e.Kind.Terminal() }

// String renders the event for logs and text output.
func (e Event) String() string {
	switch e.Kind {
	case PathFound:
		return fmt.Sprintf("#%d %s len=%d %v", e.Seq, e.Kind, len(e.Path), e.Path)
	case Exhausted, Cancelled:
		return fmt.Sprintf("#%d %s", e.Seq, e.Kind)
	default:
		return fmt.Sprintf("#%d %s %v depth=%d", e.Seq, e.Kind, e.Cell, e.Depth)
	}
}

// Found builds a PathFound event. The path is copied so the caller owns it.
func Found(path []grid.Cell) Event {
	p := append([]grid.Cell(nil), path...)
	e := Event{Kind: PathFound, Path: p}
	if len(p) > 0 {
		e.Cell = p[len(p)-1]
		e.Depth = len(p) - 1
	}
	return e
}
