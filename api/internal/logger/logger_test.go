package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	charmlog "github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContext(t *testing.T) {
	t.Run("Should return logger from context when present", func(t *testing.T) {
		expected := NewForTests()
		ctx := ContextWithLogger(t.Context(), expected)
		assert.Equal(t, expected, FromContext(ctx))
	})

	t.Run("Should return default logger when no logger in context", func(t *testing.T) {
		l := FromContext(t.Context())
		require.NotNil(t, l)
	})

	t.Run("Should return default logger when wrong type in context", func(t *testing.T) {
		ctx := context.WithValue(t.Context(), LoggerCtxKey, "not a logger")
		require.NotNil(t, FromContext(ctx))
	})
}

func TestParseLevel(t *testing.T) {
	t.Run("Should map known levels", func(t *testing.T) {
		assert.Equal(t, charmlog.DebugLevel, ParseLevel("debug"))
		assert.Equal(t, charmlog.WarnLevel, ParseLevel("WARN"))
		assert.Equal(t, charmlog.ErrorLevel, ParseLevel("error"))
		assert.Equal(t, charmlog.InfoLevel, ParseLevel("info"))
	})

	t.Run("Should fall back to info", func(t *testing.T) {
		assert.Equal(t, charmlog.InfoLevel, ParseLevel("verbose"))
	})
}

func TestNewLogger(t *testing.T) {
	t.Run("Should write json lines with key values", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLogger(&Config{Level: "debug", Output: &buf, JSON: true})
		l.With("component", "test").Info("hello", "n", 1)

		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		assert.Equal(t, "hello", rec["msg"])
		assert.Equal(t, "test", rec["component"])
	})

	t.Run("Should drop messages below the level", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLogger(&Config{Level: "warn", Output: &buf})
		l.Info("quiet")
		assert.Empty(t, buf.String())
		l.Warn("loud")
		assert.Contains(t, buf.String(), "loud")
	})
}
