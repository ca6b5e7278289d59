package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/uniedit/reduxkit/internal/config"
)

func TestNew(t *testing.T) {
	t.Run("creates with default options", func(t *testing.T) {
		l := New(nil)
		assert.NotNil(t, l)
	})

	t.Run("json format", func(t *testing.T) {
		buf := &bytes.Buffer{}
		l := New(&Options{Level: "debug", Format: "json", Output: zapcore.AddSync(buf)})

		l.Info("test message", zap.String("key", "value"))

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "test message", entry["msg"])
		assert.Equal(t, "value", entry["key"])
		assert.Equal(t, "info", entry["level"])
	})

	t.Run("console format", func(t *testing.T) {
		buf := &bytes.Buffer{}
		l := New(&Options{Level: "info", Format: "console", Output: zapcore.AddSync(buf)})

		l.Info("test message")
		output := buf.String()
		assert.Contains(t, output, "test message")
		assert.False(t, strings.HasPrefix(output, "{"))
	})

	t.Run("level filters lower entries", func(t *testing.T) {
		buf := &bytes.Buffer{}
		l := New(&Options{Level: "error", Format: "json", Output: zapcore.AddSync(buf)})

		l.Warn("dropped")
		assert.Empty(t, buf.String())

		l.Error("kept")
		assert.Contains(t, buf.String(), "kept")
	})
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"DEBUG", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"unknown", zapcore.InfoLevel}, // default
		{"", zapcore.InfoLevel},        // default
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.input))
		})
	}
}

func TestFromConfig(t *testing.T) {
	opts := FromConfig(config.LogConfig{Level: "debug", Format: "console"})
	assert.Equal(t, "debug", opts.Level)
	assert.Equal(t, "console", opts.Format)
	assert.Nil(t, opts.Output)
}

func TestDefault(t *testing.T) {
	l := Default()
	require.NotNil(t, l)
	assert.Same(t, l, Default())
}

func TestBuild(t *testing.T) {
	t.Run("uses loaded config", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("REDUXKIT_LOG_LEVEL", "error")

		buf := &bytes.Buffer{}
		l := build(zapcore.AddSync(buf))

		l.Warn("dropped")
		assert.Empty(t, buf.String())
		l.Error("kept")
		assert.Contains(t, buf.String(), "kept")
	})

	t.Run("malformed config file still logs", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "reduxkit.yaml"), []byte("log: [unterminated"), 0o600))
		t.Chdir(dir)

		buf := &bytes.Buffer{}
		l := build(zapcore.AddSync(buf))
		require.NotNil(t, l)
		assert.Contains(t, buf.String(), "reduxkit config not loaded")

		buf.Reset()
		l.Error("handler returned no state")
		assert.Contains(t, buf.String(), "handler returned no state")

		buf.Reset()
		l.Warn("missing name")
		assert.Contains(t, buf.String(), "missing name")
	})
}
