package cli

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/internal/logging"
	"github.com/katalvlaran/gridwalk/scenario"
)

// Output formats of the event stream.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ExitError is an error that carries a process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Config is the parsed command line.
type Config struct {
	ScenarioPath string
	ScenarioName string
	EnvFile      string

	Format    string
	Render    bool
	LogLevel  string
	LogFormat string

	overrides []func(*scenario.Scenario)
}

// Apply writes every flag that was given explicitly onto s.
func (c *Config) Apply(s *scenario.Scenario) {
	for _, fn := range c.overrides {
		fn(s)
	}
}

// cellFlag parses "row,col".
type cellFlag struct {
	cell grid.Cell
}

func (f *cellFlag) String() string {
	if f == nil {
		return ""
	}
	return fmt.Sprintf("%d,%d", f.cell.Row, f.cell.Col)
}

func (f *cellFlag) Set(v string) error {
	parts := strings.Split(v, ",")
	if len(parts) != 2 {
		return fmt.Errorf("want row,col, got %q", v)
	}
	r, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return fmt.Errorf("row: %w", err)
	}
	c, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return fmt.Errorf("col: %w", err)
	}
	f.cell = grid.At(r, c)
	return nil
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*Config, bool, error) {
	flagSet := flag.NewFlagSet("gridwalk", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
gridwalk - step-by-step DFS and BFS path search on a random obstacle grid.

Usage:
  gridwalk [options] [SCENARIO_FILE]

Arguments:
  SCENARIO_FILE
    Optional .hcl or .yaml file with one or more scenario blocks.

Environment:
  GRIDWALK_ALGORITHM, GRIDWALK_MODE, GRIDWALK_ROWS, GRIDWALK_COLS,
  GRIDWALK_DENSITY, GRIDWALK_SEED, GRIDWALK_RETRY, GRIDWALK_SKIP_ENDPOINTS
    Override the scenario; flags override the environment.

Options:
`)
		flagSet.PrintDefaults()
	}

	d := scenario.Default()
	scenarioFlag := flagSet.String("scenario", "", "Path to a scenario file (.hcl, .yaml).")
	nameFlag := flagSet.String("name", "", "Scenario to run from the file; the first one when empty.")
	envFlag := flagSet.String("env", ".env", "Dotenv file with GRIDWALK_* overrides; skipped when missing.")
	algoFlag := flagSet.String("algo", d.Algorithm, "Search algorithm: 'dfs' or 'bfs'.")
	modeFlag := flagSet.String("mode", d.Mode, "'run' prints the result, 'step' prints every event.")
	rowsFlag := flagSet.Int("rows", d.Rows, "Grid rows.")
	colsFlag := flagSet.Int("cols", d.Cols, "Grid columns.")
	densityFlag := flagSet.Float64("density", 25, "Obstacle density, percent 0-100 or fraction 0-1.")
	seedFlag := flagSet.Int64("seed", d.Seed, "Random seed for obstacle generation.")
	retryFlag := flagSet.Int("retry", 0, "Regenerate with seed+1 up to n times when no path exists.")
	skipFlag := flagSet.Bool("skip-endpoints", false, "Suppress visiting events on the start and end cells.")
	var startFlag, endFlag cellFlag
	flagSet.Var(&startFlag, "start", "Start cell as row,col (default top-left).")
	flagSet.Var(&endFlag, "end", "End cell as row,col (default bottom-right).")
	formatFlag := flagSet.String("format", FormatText, "Event output format: 'text' or 'json'.")
	renderFlag := flagSet.Bool("render", true, "Print the final grid in text format.")
	logLevelFlag := flagSet.String("log-level", "warn", "Logging level: 'trace', 'debug', 'info', 'warn', 'error', 'disabled'.")
	logFormatFlag := flagSet.String("log-format", logging.FormatConsole, "Log output format: 'console' or 'json'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	cfg := &Config{
		ScenarioPath: *scenarioFlag,
		ScenarioName: *nameFlag,
		EnvFile:      *envFlag,
		Format:       strings.ToLower(*formatFlag),
		Render:       *renderFlag,
		LogLevel:     strings.ToLower(*logLevelFlag),
		LogFormat:    strings.ToLower(*logFormatFlag),
	}
	if cfg.ScenarioPath == "" && flagSet.NArg() > 0 {
		cfg.ScenarioPath = flagSet.Arg(0)
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected arguments: %v", flagSet.Args()[1:])}
	}

	if cfg.Format != FormatText && cfg.Format != FormatJSON {
		return nil, false, &ExitError{Code: 2, Message: "invalid format: must be 'text' or 'json'"}
	}
	if cfg.LogFormat != logging.FormatConsole && cfg.LogFormat != logging.FormatJSON {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'console' or 'json'"}
	}
	switch cfg.LogLevel {
	case "trace", "debug", "info", "warn", "error", "disabled":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'trace', 'debug', 'info', 'warn', 'error', or 'disabled'"}
	}

	// Only explicitly set flags override the scenario
	flagSet.Visit(func(f *flag.Flag) {
		var fn func(*scenario.Scenario)
		switch f.Name {
		case "algo":
			fn = func(s *scenario.Scenario) { s.Algorithm = *algoFlag }
		case "mode":
			fn = func(s *scenario.Scenario) { s.Mode = *modeFlag }
		case "rows":
			fn = func(s *scenario.Scenario) { s.Rows = *rowsFlag }
		case "cols":
			fn = func(s *scenario.Scenario) { s.Cols = *colsFlag }
		case "density":
			fn = func(s *scenario.Scenario) { s.Density = *densityFlag }
		case "seed":
			fn = func(s *scenario.Scenario) { s.Seed = *seedFlag }
		case "retry":
			fn = func(s *scenario.Scenario) { s.Retry = *retryFlag }
		case "skip-endpoints":
			fn = func(s *scenario.Scenario) { s.SkipEndpoints = *skipFlag }
		case "start":
			fn = func(s *scenario.Scenario) { c := startFlag.cell; s.Start = &c }
		case "end":
			fn = func(s *scenario.Scenario) { c := endFlag.cell; s.End = &c }
		}
		if fn != nil {
			cfg.overrides = append(cfg.overrides, fn)
		}
	})

	return cfg, false, nil
}
