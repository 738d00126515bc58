package logging_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/codemerge/logging"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected zerolog.Level
	}{
		{input: "debug", expected: zerolog.DebugLevel},
		{input: "WARNING", expected: zerolog.WarnLevel},
		{input: "", expected: zerolog.InfoLevel},
		{input: "off", expected: zerolog.Disabled},
		{input: "bogus", expected: zerolog.InfoLevel},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.expected, logging.ParseLevel(tc.input), tc.input)
	}
}

func TestContext(t *testing.T) {
	assert.NotNil(t, logging.FromContext(context.Background()))

	logger := logging.Nop()
	ctx := logging.WithLogger(context.Background(), logger)
	assert.Same(t, logger, logging.FromContext(ctx))
	assert.Same(t, logger, logging.Ctx(ctx))
}

func TestNew_FileOutput(t *testing.T) {
	location := filepath.Join(t.TempDir(), "codemerge.log")
	config := &logging.Config{Level: "info", Format: "json", Output: location}
	logger := logging.New(config)
	logger.Debug().Msg("hidden")
	logger.Info().Str("path", "app.yaml").Msg("merged")
	again := logging.New(config)
	again.Info().Msg("shared")
	require.NoError(t, logging.Close())

	data, err := os.ReadFile(location)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"path":"app.yaml"`)
	assert.Contains(t, string(data), "shared")
	assert.NotContains(t, string(data), "hidden")

	reopened := logging.New(config)
	reopened.Info().Msg("reopened")
	require.NoError(t, logging.Close())
	data, err = os.ReadFile(location)
	require.NoError(t, err)
	assert.Contains(t, string(data), "reopened")
}

func TestConfigure(t *testing.T) {
	previous := *logging.Default()
	t.Cleanup(func() { logging.SetDefault(previous) })

	logging.Configure(&logging.Config{Level: "warn", Output: "discard"})
	assert.Equal(t, zerolog.WarnLevel, logging.Default().GetLevel())
}
