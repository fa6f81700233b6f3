package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("JSONFormat", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(Config{Level: "debug", Format: FormatJSON, Out: &buf})
		logger.Debug().Str("key", "value").Msg("hello")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "hello", entry["message"])
		assert.Equal(t, "value", entry["key"])
	})

	t.Run("ConsoleFormat", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(Config{Level: "info", Format: FormatConsole, Out: &buf})
		logger.Info().Msg("hello")

		assert.Contains(t, buf.String(), "hello")
		assert.NotContains(t, buf.String(), `"message"`)
	})

	t.Run("InvalidLevelFallsBackToInfo", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(Config{Level: "nope", Format: FormatJSON, Out: &buf})
		logger.Debug().Msg("suppressed")
		assert.Empty(t, buf.String())

		logger.Info().Msg("kept")
		assert.Contains(t, buf.String(), "kept")
	})
}

func TestComponentLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := ComponentLogger(New(Config{Level: "info", Format: FormatJSON, Out: &buf}), "dispatch")
	logger.Info().Msg("tagged")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "dispatch", entry["component"])
}

func TestContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "info", Format: FormatJSON, Out: &buf})

	ctx := WithContext(context.Background(), logger)
	fromCtx := FromContext(ctx)
	fromCtx.Info().Msg("from context")
	assert.Contains(t, buf.String(), "from context")

	// A bare context yields a disabled logger.
	got := FromContext(context.Background())
	assert.Equal(t, zerolog.Disabled, got.GetLevel())
}
