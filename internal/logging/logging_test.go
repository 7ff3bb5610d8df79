package logging_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridwalk/internal/logging"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New(logging.Config{Level: "DEBUG", Format: "json", Output: &buf})
	require.NoError(t, err)

	log.Debug().Int("rows", 3).Msg("hello")
	log.Trace().Msg("hidden")

	out := buf.String()
	assert.Contains(t, out, `"level":"debug"`)
	assert.Contains(t, out, `"app":"gridwalk"`)
	assert.Contains(t, out, `"rows":3`)
	assert.Contains(t, out, `"message":"hello"`)
	assert.NotContains(t, out, "hidden")
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New(logging.Config{Level: "warn", Output: &buf, NoColor: true})
	require.NoError(t, err)

	log.Info().Msg("quiet")
	log.Warn().Str("seed", "7").Msg("retrying")

	out := buf.String()
	assert.NotContains(t, out, "quiet")
	assert.Contains(t, out, "WRN")
	assert.Contains(t, out, "retrying")
	assert.Contains(t, out, "seed=7")
}

func TestNew_Errors(t *testing.T) {
	_, err := logging.New(logging.Config{Level: "loud"})
	assert.Error(t, err)

	_, err = logging.New(logging.Config{Format: "xml"})
	assert.ErrorIs(t, err, logging.ErrInvalidFormat)
}
