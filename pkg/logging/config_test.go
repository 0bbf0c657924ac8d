package logging_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s2wiki/pagetools/pkg/logging"
)

func restoreLogging(t *testing.T) {
	t.Helper()
	original := *logging.Default()
	originalLevel := zerolog.GlobalLevel()
	t.Cleanup(func() {
		logging.SetDefault(original)
		zerolog.SetGlobalLevel(originalLevel)
	})
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(content)
}

func TestDefaultConfig(t *testing.T) {
	cfg := logging.DefaultConfig()
	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "auto", cfg.Format)
	assert.Equal(t, "stderr", cfg.Output)
	assert.False(t, cfg.AddCaller)
}

func TestNewLoggerFromConfig(t *testing.T) {
	restoreLogging(t)

	t.Run("json to file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "pagetools.log")
		logger := logging.NewLoggerFromConfig(&logging.Config{
			Level:     "debug",
			Format:    "json",
			Output:    path,
			AddCaller: true,
		})
		logger.Info().Msg("test message")

		output := readLog(t, path)
		assert.Contains(t, output, "test message")
		assert.Contains(t, output, `"level":"info"`)
		assert.Contains(t, output, `"caller"`)
	})

	t.Run("console format", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "console.log")
		logger := logging.NewLoggerFromConfig(&logging.Config{
			Level:   "info",
			Format:  "console",
			Output:  path,
			NoColor: true,
		})
		logger.Info().Str("game", "hla").Msg("console test")

		output := readLog(t, path)
		assert.Contains(t, output, "console test")
		assert.Contains(t, output, "INF")
		assert.Contains(t, output, "game=hla")
	})

	t.Run("nil config uses defaults", func(t *testing.T) {
		logger := logging.NewLoggerFromConfig(nil)
		assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
	})
}

func TestConfigureLevels(t *testing.T) {
	restoreLogging(t)

	testCases := []struct {
		level     string
		logFunc   func() *zerolog.Event
		shouldLog bool
	}{
		{"debug", logging.Debug, true},
		{"info", logging.Info, true},
		{"info", logging.Debug, false},
		{"warning", logging.Warn, true},
		{"warn", logging.Info, false},
		{"error", logging.Error, true},
		{"error", logging.Warn, false},
		{"off", logging.Error, false},
	}

	for _, tc := range testCases {
		t.Run(tc.level, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "level.log")
			logging.Configure(&logging.Config{Level: tc.level, Format: "json", Output: path})
			tc.logFunc().Msg("test")

			output := readLog(t, path)
			if tc.shouldLog {
				assert.Contains(t, output, "test")
			} else {
				assert.Empty(t, output)
			}
		})
	}
}

func TestConfigureFromEnv(t *testing.T) {
	restoreLogging(t)

	path := filepath.Join(t.TempDir(), "env.log")
	t.Setenv("PAGETOOLS_LOG_LEVEL", "warn")
	t.Setenv("PAGETOOLS_LOG_FORMAT", "json")
	t.Setenv("PAGETOOLS_LOG_OUTPUT", path)

	logging.ConfigureFromEnv()
	logging.Info().Msg("hidden")
	logging.Warn().Msg("shown")

	output := readLog(t, path)
	assert.NotContains(t, output, "hidden")
	assert.Contains(t, output, "shown")
}
