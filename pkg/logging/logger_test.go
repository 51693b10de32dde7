package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kumar2007/RepoBook/pkg/logging"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	logger := logging.New(&buf)
	logger.Info().Str("url", "https://github.com/golang/go").Msg("entry added")

	var event map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &event))
	assert.Equal(t, "entry added", event["message"])
	assert.Equal(t, "https://github.com/golang/go", event["url"])
	assert.NotEmpty(t, event["time"])
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	logger := logging.New(&buf)
	logger.Info().Msg("suppressed")
	assert.Empty(t, buf.Bytes())

	logger.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewLoggerFromConfig(t *testing.T) {
	t.Run("nil config uses defaults", func(t *testing.T) {
		logger := logging.NewLoggerFromConfig(nil)
		assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
	})

	t.Run("level parsing", func(t *testing.T) {
		tests := []struct {
			level    string
			expected zerolog.Level
		}{
			{"debug", zerolog.DebugLevel},
			{"warn", zerolog.WarnLevel},
			{"warning", zerolog.WarnLevel},
			{"error", zerolog.ErrorLevel},
			{"bogus", zerolog.InfoLevel},
		}
		for _, tt := range tests {
			cfg := logging.DefaultConfig()
			cfg.Level = tt.level
			logger := logging.NewLoggerFromConfig(cfg)
			assert.Equal(t, tt.expected, logger.GetLevel(), "level %q", tt.level)
		}
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	})
}
