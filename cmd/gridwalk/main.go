// Command gridwalk generates an obstacle grid and walks it with depth-first
// or breadth-first search, printing either every step or the final result.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/gridwalk/event"
	"github.com/katalvlaran/gridwalk/internal/cli"
	"github.com/katalvlaran/gridwalk/internal/logging"
	"github.com/katalvlaran/gridwalk/render"
	"github.com/katalvlaran/gridwalk/scenario"
	"github.com/katalvlaran/gridwalk/session"
)

// Exit codes beyond the usual 0/1/2.
const (
	exitNoPath    = 3
	exitCancelled = 130
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			stop()
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// run encapsulates the command so tests can drive it with buffers.
func run(ctx context.Context, outW, logW io.Writer, args []string) error {
	cfg, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger, err := logging.New(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: logW,
	})
	if err != nil {
		return &cli.ExitError{Code: 2, Message: err.Error()}
	}
	ctx = logger.WithContext(ctx)

	sc, err := loadScenario(cfg)
	if err != nil {
		return &cli.ExitError{Code: 2, Message: err.Error()}
	}
	algo, err := sc.AlgorithmValue()
	if err != nil {
		return &cli.ExitError{Code: 2, Message: err.Error()}
	}
	logger.Info().
		Str("scenario", sc.Name).
		Stringer("algorithm", algo).
		Str("mode", sc.Mode).
		Int64("seed", sc.Seed).
		Msg("scenario loaded")

	g, err := sc.Build()
	if err != nil {
		return err
	}
	board, err := session.NewBoard(g)
	if err != nil {
		return err
	}

	out := newPrinter(outW, cfg.Format, algo, cfg.Render)
	var opts []session.Option
	if sc.SkipEndpoints {
		opts = append(opts, session.WithSkipEndpoints())
	}

	// Search, regenerating with the next seed after Exhausted while retries remain
	var result event.Event
	for attempt := 0; ; attempt++ {
		result, err = search(ctx, board, algo, sc, attempt, out, opts)
		if err != nil {
			return err
		}
		if result.Kind != event.Exhausted || attempt >= sc.Retry || len(sc.Layout) > 0 {
			break
		}
		sc.Seed++
		zerolog.Ctx(ctx).Warn().Int("attempt", attempt+1).Int64("seed", sc.Seed).Msg("no path, regenerating grid")
		next, err := sc.Build()
		if err != nil {
			return err
		}
		if err = board.Replace(next); err != nil {
			return err
		}
	}

	switch result.Kind {
	case event.Exhausted:
		return &cli.ExitError{Code: exitNoPath, Message: render.Status(algo, result)}
	case event.Cancelled:
		return &cli.ExitError{Code: exitCancelled, Message: render.Status(algo, result)}
	}
	return nil
}

// loadScenario layers defaults, the scenario file, the environment and the
// explicit flags, then validates the result.
func loadScenario(cfg *cli.Config) (scenario.Scenario, error) {
	sc := scenario.Default()
	if cfg.ScenarioPath != "" {
		list, err := scenario.Load(cfg.ScenarioPath)
		if err != nil {
			return sc, err
		}
		if sc, err = scenario.Select(list, cfg.ScenarioName); err != nil {
			return sc, err
		}
	}

	lookup, err := scenario.EnvLookup(cfg.EnvFile)
	if err != nil {
		return sc, err
	}
	if err = sc.ApplyEnv(lookup); err != nil {
		return sc, err
	}
	cfg.Apply(&sc)

	return sc, sc.Validate()
}

// search runs one session on the board's grid and prints it.
func search(ctx context.Context, board *session.Board, algo session.Algorithm, sc scenario.Scenario,
	attempt int, out *printer, opts []session.Option) (event.Event, error) {
	g := board.Grid()
	s, err := board.Start(ctx, algo, opts...)
	if err != nil {
		return event.Event{}, err
	}
	start, end := s.Endpoints()
	if e := zerolog.Ctx(ctx).Debug(); e.Enabled() {
		e.Int("attempt", attempt).
			Int("passable", g.PassableCount()).
			Bool("connected", g.Connected(start, end)).
			Msg("grid ready")
	}
	canvas := render.NewCanvas(g, start, end)

	// Run mode prints only the terminal event; the canvas sees every event
	var result event.Event
	for ev := range s.Events() {
		canvas.Apply(ev)
		result = ev
		if sc.Mode != scenario.ModeStep && !ev.Terminal() {
			continue
		}
		if err = out.event(attempt, sc.Seed, ev); err != nil {
			s.Cancel()
			return event.Event{}, err
		}
	}

	if err = out.summary(canvas, result); err != nil {
		return result, err
	}
	return result, nil
}
