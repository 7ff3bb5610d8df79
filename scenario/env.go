package scenario

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "GRIDWALK_"

// LookupFunc has the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// EnvLookup returns a lookup that consults the process environment first and
// then the given .env files, in order. Missing files are skipped; other read
// or parse errors are returned.
func EnvLookup(files ...string) (LookupFunc, error) {
	var present []string
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("scenario: env file %s: %w", f, err)
		}
		present = append(present, f)
	}

	fileVars := map[string]string{}
	if len(present) > 0 {
		vars, err := godotenv.Read(present...)
		if err != nil {
			return nil, fmt.Errorf("scenario: env files %v: %w", present, err)
		}
		fileVars = vars
	}

	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileVars[key]
		return v, ok
	}, nil
}

// ApplyEnv overrides fields from GRIDWALK_ALGORITHM, GRIDWALK_MODE,
// GRIDWALK_ROWS, GRIDWALK_COLS, GRIDWALK_DENSITY, GRIDWALK_SEED,
// GRIDWALK_RETRY and GRIDWALK_SKIP_ENDPOINTS. Unset variables leave the
// field alone; malformed numbers fail with ErrInvalidScenario.
func (s *Scenario) ApplyEnv(lookup LookupFunc) error {
	if lookup == nil {
		return nil
	}
	str := func(name string, dst *string) {
		if v, ok := lookup(EnvPrefix + name); ok && v != "" {
			*dst = v
		}
	}
	str("ALGORITHM", &s.Algorithm)
	str("MODE", &s.Mode)

	for _, f := range []struct {
		name  string
		apply func(string) error
	}{
		{"ROWS", func(v string) (err error) { s.Rows, err = strconv.Atoi(v); return }},
		{"COLS", func(v string) (err error) { s.Cols, err = strconv.Atoi(v); return }},
		{"DENSITY", func(v string) (err error) { s.Density, err = strconv.ParseFloat(v, 64); return }},
		{"SEED", func(v string) (err error) { s.Seed, err = strconv.ParseInt(v, 10, 64); return }},
		{"RETRY", func(v string) (err error) { s.Retry, err = strconv.Atoi(v); return }},
		{"SKIP_ENDPOINTS", func(v string) (err error) { s.SkipEndpoints, err = strconv.ParseBool(v); return }},
	} {
		v, ok := lookup(EnvPrefix + f.name)
		if !ok || v == "" {
			continue
		}
		if err := f.apply(v); err != nil {
			return fmt.Errorf("%w: %s%s=%q: %w", ErrInvalidScenario, EnvPrefix, f.name, v, err)
		}
	}
	return nil
}
