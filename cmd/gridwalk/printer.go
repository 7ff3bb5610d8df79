package main

import (
	"fmt"
	"io"

	"github.com/bytedance/sonic"

	"github.com/katalvlaran/gridwalk/event"
	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/internal/cli"
	"github.com/katalvlaran/gridwalk/render"
	"github.com/katalvlaran/gridwalk/session"
)

// record is one JSON line of the event stream. Cell is left out for
// Exhausted and Cancelled, which carry no cell.
type record struct {
	Algorithm string      `json:"algorithm"`
	Attempt   int         `json:"attempt"`
	Seed      int64       `json:"seed"`
	Kind      event.Kind  `json:"kind"`
	Cell      *grid.Cell  `json:"cell,omitempty"`
	Path      []grid.Cell `json:"path,omitempty"`
	Depth     int         `json:"depth"`
	Seq       int         `json:"seq"`
}

func newRecord(algo string, attempt int, seed int64, ev event.Event) record {
	rec := record{
		Algorithm: algo,
		Attempt:   attempt,
		Seed:      seed,
		Kind:      ev.Kind,
		Path:      ev.Path,
		Depth:     ev.Depth,
		Seq:       ev.Seq,
	}
	if ev.Kind != event.Exhausted && ev.Kind != event.Cancelled {
		c := ev.Cell
		rec.Cell = &c
	}
	return rec
}

// summaryRecord closes a JSON stream with the rendered grid.
type summaryRecord struct {
	Algorithm string   `json:"algorithm"`
	Status    string   `json:"status"`
	Visited   int      `json:"visited"`
	Grid      []string `json:"grid,omitempty"`
}

// printer writes events as text lines or JSON lines.
type printer struct {
	w      io.Writer
	format string
	algo   session.Algorithm
	render bool
}

func newPrinter(w io.Writer, format string, algo session.Algorithm, render bool) *printer {
	return &printer{w: w, format: format, algo: algo, render: render}
}

func (p *printer) event(attempt int, seed int64, ev event.Event) error {
	if p.format == cli.FormatJSON {
		return p.encode(newRecord(p.algo.String(), attempt, seed, ev))
	}
	_, err := fmt.Fprintln(p.w, ev)
	return err
}

func (p *printer) summary(c *render.Canvas, result event.Event) error {
	status := render.Status(p.algo, result)
	if p.format == cli.FormatJSON {
		rec := summaryRecord{Algorithm: p.algo.String(), Status: status, Visited: c.Visited()}
		if p.render {
			rec.Grid = c.Lines()
		}
		return p.encode(rec)
	}
	if p.render {
		if _, err := fmt.Fprintln(p.w, c); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(p.w, status)
	return err
}

func (p *printer) encode(v any) error {
	b, err := sonic.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	b = append(b, '\n')
	_, err = p.w.Write(b)
	return err
}
