package parser

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNopLogger(t *testing.T) {
	l := NopLogger{}
	// None of these should panic
	l.Debug("test message", "key", "value")
	l.Info("test message", "key", "value")
	l.Warn("test message", "key", "value")
	l.Error("test message", "key", "value")

	_, ok := l.With("key", "value").(NopLogger)
	assert.True(t, ok, "With should return NopLogger")
}

func TestSlogAdapter(t *testing.T) {
	t.Run("NewSlogAdapter with nil uses default", func(t *testing.T) {
		adapter := NewSlogAdapter(nil)
		assert.NotNil(t, adapter.logger)
	})

	t.Run("levels and attributes", func(t *testing.T) {
		var buf bytes.Buffer
		handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
		adapter := NewSlogAdapter(slog.New(handler))

		adapter.Debug("debug message", "path", "/api/v0/id")
		adapter.Info("info message")
		adapter.Warn("warn message")
		adapter.Error("error message")

		out := buf.String()
		assert.Contains(t, out, "level=DEBUG msg=\"debug message\" path=/api/v0/id")
		assert.Contains(t, out, "level=INFO msg=\"info message\"")
		assert.Contains(t, out, "level=WARN msg=\"warn message\"")
		assert.Contains(t, out, "level=ERROR msg=\"error message\"")
	})

	t.Run("With prepends attributes", func(t *testing.T) {
		var buf bytes.Buffer
		adapter := NewSlogAdapter(slog.New(slog.NewTextHandler(&buf, nil)))

		adapter.With("source", "rpc.md").Info("hello")
		assert.Contains(t, buf.String(), "source=rpc.md")
	})
}

func TestZapAdapter(t *testing.T) {
	t.Run("NewZapAdapter with nil uses nop", func(t *testing.T) {
		adapter := NewZapAdapter(nil)
		require.NotNil(t, adapter.logger)
		adapter.Info("dropped")
	})

	t.Run("levels and attributes", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)
		adapter := NewZapAdapter(zap.New(core))

		adapter.Debug("debug message", "path", "/api/v0/id")
		adapter.Info("info message")
		adapter.Warn("warn message")
		adapter.Error("error message")

		entries := logs.All()
		require.Len(t, entries, 4)
		assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
		assert.Equal(t, "/api/v0/id", entries[0].ContextMap()["path"])
		assert.Equal(t, zapcore.InfoLevel, entries[1].Level)
		assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
		assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
	})

	t.Run("With prepends attributes", func(t *testing.T) {
		core, logs := observer.New(zapcore.InfoLevel)
		adapter := NewZapAdapter(zap.New(core))

		adapter.With("source", "rpc.md").Info("hello")
		entries := logs.FilterMessage("hello").All()
		require.Len(t, entries, 1)
		assert.Equal(t, "rpc.md", entries[0].ContextMap()["source"])
	})
}

func TestParser_LogsRejections(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})

	doc := strings.Join([]string{
		"## /api/v0/files/write",
		"Write to a mutable file.",
		"### Request Body",
		"Argument \"data\" is of file type.",
		"---",
		"## /api/v0/broken",
		"No terminator.",
	}, "\n")

	p := New()
	p.Logger = NewSlogAdapter(slog.New(handler))
	result, err := p.ParseBytes([]byte(doc))
	require.NoError(t, err)
	require.Len(t, result.Rejections, 2)

	out := buf.String()
	assert.Contains(t, out, "level=INFO msg=\"skipping endpoint\"")
	assert.Contains(t, out, "reason=UnsupportedRequestBody")
	assert.Contains(t, out, "level=WARN msg=\"rejected endpoint\"")
	assert.Contains(t, out, "reason=MalformedBlock")
	assert.Contains(t, out, "msg=\"parsed document\"")
}
