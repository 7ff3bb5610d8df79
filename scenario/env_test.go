package scenario_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridwalk/scenario"
)

func mapLookup(m map[string]string) scenario.LookupFunc {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestApplyEnv(t *testing.T) {
	s := scenario.Default()
	err := s.ApplyEnv(mapLookup(map[string]string{
		"GRIDWALK_ALGORITHM":      "dfs",
		"GRIDWALK_MODE":           "step",
		"GRIDWALK_ROWS":           "9",
		"GRIDWALK_COLS":           "11",
		"GRIDWALK_DENSITY":        "35",
		"GRIDWALK_SEED":           "-4",
		"GRIDWALK_RETRY":          "3",
		"GRIDWALK_SKIP_ENDPOINTS": "true",
		"GRIDWALK_UNRELATED":      "x",
	}))
	require.NoError(t, err)
	assert.Equal(t, "dfs", s.Algorithm)
	assert.Equal(t, "step", s.Mode)
	assert.Equal(t, 9, s.Rows)
	assert.Equal(t, 11, s.Cols)
	assert.Equal(t, 35.0, s.Density)
	assert.Equal(t, int64(-4), s.Seed)
	assert.Equal(t, 3, s.Retry)
	assert.True(t, s.SkipEndpoints)

	// empty values are ignored
	s = scenario.Default()
	require.NoError(t, s.ApplyEnv(mapLookup(map[string]string{"GRIDWALK_ROWS": ""})))
	assert.Equal(t, scenario.DefaultRows, s.Rows)

	require.NoError(t, s.ApplyEnv(nil))
}

func TestApplyEnv_Malformed(t *testing.T) {
	for _, key := range []string{"GRIDWALK_ROWS", "GRIDWALK_DENSITY", "GRIDWALK_SEED", "GRIDWALK_SKIP_ENDPOINTS"} {
		s := scenario.Default()
		err := s.ApplyEnv(mapLookup(map[string]string{key: "many"}))
		assert.ErrorIs(t, err, scenario.ErrInvalidScenario, key)
	}
}

// TestEnvLookup layers the process environment over .env files.
func TestEnvLookup(t *testing.T) {
	dir := t.TempDir()
	envFile := writeFile(t, ".env", "GRIDWALK_ROWS=7\nGRIDWALK_SEED=5\n")
	t.Setenv("GRIDWALK_SEED", "9")

	lookup, err := scenario.EnvLookup(filepath.Join(dir, "absent.env"), envFile)
	require.NoError(t, err)

	s := scenario.Default()
	require.NoError(t, s.ApplyEnv(lookup))
	assert.Equal(t, 7, s.Rows, "from the file")
	assert.Equal(t, int64(9), s.Seed, "process environment wins")

	_, ok := lookup("GRIDWALK_NOT_SET_ANYWHERE")
	assert.False(t, ok)
}

func TestEnvLookup_Malformed(t *testing.T) {
	bad := writeFile(t, "bad.env", "GRIDWALK_ROWS='unterminated\n")
	_, err := scenario.EnvLookup(bad)
	assert.Error(t, err)
}
