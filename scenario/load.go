package scenario

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Load reads every scenario in the file at path. The format follows the
// extension: .hcl, or .yaml/.yml.
func Load(path string) ([]Scenario, error) {
	var parse func([]byte, string) ([]Scenario, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		parse = parseHCL
	case ".yaml", ".yml":
		parse = parseYAML
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: reading %s: %w", path, err)
	}
	return parse(src, path)
}

// Select returns the scenario called name, or the first one when name is
// empty. Returns ErrNotFound otherwise.
func Select(list []Scenario, name string) (Scenario, error) {
	if name == "" && len(list) > 0 {
		return list[0], nil
	}
	for _, s := range list {
		if s.Name == name {
			return s, nil
		}
	}
	if name == "" {
		return Scenario{}, fmt.Errorf("%w: file has no scenarios", ErrNotFound)
	}
	return Scenario{}, fmt.Errorf("%w: %q", ErrNotFound, name)
}
