package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructuredLogger(t *testing.T) {
	t.Run("creates JSON logger with proper configuration", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		logger.Info("tram created",
			slog.String("component", "console"),
			slog.Int("stops", 4))

		output := buf.String()
		assert.Contains(t, output, `"level":"INFO"`)
		assert.Contains(t, output, `"msg":"tram created"`)
		assert.Contains(t, output, `"component":"console"`)
		assert.Contains(t, output, `"stops":4`)
		assert.Contains(t, output, `"time":`)
	})

	t.Run("respects log level configuration", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelWarn)

		logger.Debug("debug message")
		logger.Info("info message")
		logger.Warn("warning message")

		output := buf.String()
		assert.NotContains(t, output, "debug message")
		assert.NotContains(t, output, "info message")
		assert.Contains(t, output, "warning message")
	})
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		want    slog.Level
		wantErr bool
	}{
		{name: "", want: slog.LevelInfo},
		{name: "debug", want: slog.LevelDebug},
		{name: "INFO", want: slog.LevelInfo},
		{name: "warn", want: slog.LevelWarn},
		{name: "warning", want: slog.LevelWarn},
		{name: " error ", want: slog.LevelError},
		{name: "verbose", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, err := ParseLevel(tt.name)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, level)
		})
	}
}

func TestLoggerHelpers(t *testing.T) {
	t.Run("LogError creates structured error log", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		LogError(logger, "failed to import feed", assert.AnError,
			slog.String("path", "feed.zip"),
			slog.String("component", "gtfs_import"))

		output := buf.String()
		assert.Contains(t, output, `"level":"ERROR"`)
		assert.Contains(t, output, `"msg":"failed to import feed"`)
		assert.Contains(t, output, `"error":"assert.AnError general error for testing"`)
		assert.Contains(t, output, `"path":"feed.zip"`)
		assert.Contains(t, output, `"component":"gtfs_import"`)
	})

	t.Run("LogError tolerates a nil logger", func(t *testing.T) {
		assert.NotPanics(t, func() {
			LogError(nil, "ignored", assert.AnError)
		})
	})

	t.Run("LogOperation logs structured operation info", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		LogOperation(logger, "gtfs_trams_imported",
			slog.String("source", "file.zip"),
			slog.Int("trams", 12),
			slog.Duration("duration", 0))

		output := buf.String()
		assert.Contains(t, output, `"level":"INFO"`)
		assert.Contains(t, output, `"msg":"gtfs_trams_imported"`)
		assert.Contains(t, output, `"source":"file.zip"`)
		assert.Contains(t, output, `"trams":12`)
		assert.NotContains(t, output, `"duration"`)
	})

	t.Run("LogOperation keeps a measured duration", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		LogOperation(logger, "console_quit", slog.Duration("duration", 1500))

		assert.Contains(t, buf.String(), `"duration":1500`)
	})

	t.Run("LogError ignores a nil error", func(t *testing.T) {
		var buf bytes.Buffer
		LogError(NewStructuredLogger(&buf, slog.LevelInfo), "nothing failed", nil)
		assert.Empty(t, buf.String())
	})
}

func TestContextLogger(t *testing.T) {
	t.Run("stores and retrieves logger from context", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		ctx := WithLogger(context.Background(), logger)

		retrievedLogger := FromContext(ctx)
		require.NotNil(t, retrievedLogger)

		retrievedLogger.Info("test from context")
		assert.Contains(t, buf.String(), "test from context")
	})

	t.Run("returns default logger when not in context", func(t *testing.T) {
		logger := FromContext(context.Background())
		require.NotNil(t, logger)
	})
}
