package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferedLogger(minSource slog.Level) (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	base := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(NewConditionalSourceHandler(base, minSource)), &buf
}

func TestConditionalSourceHandler(t *testing.T) {
	tests := []struct {
		name       string
		level      slog.Level
		minSource  slog.Level
		wantSource bool
	}{
		{"info below warn threshold", slog.LevelInfo, slog.LevelWarn, false},
		{"debug below warn threshold", slog.LevelDebug, slog.LevelWarn, false},
		{"warn at threshold", slog.LevelWarn, slog.LevelWarn, true},
		{"error above threshold", slog.LevelError, slog.LevelWarn, true},
		{"info in debug mode", slog.LevelInfo, slog.LevelDebug, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, buf := newBufferedLogger(tt.minSource)
			l.Log(context.Background(), tt.level, "test message")

			out := buf.String()
			require.Contains(t, out, "test message")
			assert.Equal(t, tt.wantSource, bytes.Contains(buf.Bytes(), []byte("source=")), out)
		})
	}
}

func TestConditionalSourceHandler_PointsAtCaller(t *testing.T) {
	l, buf := newBufferedLogger(slog.LevelWarn)
	l.Warn("careful")

	assert.Contains(t, buf.String(), "conditional_source_handler_test.go")
}

func TestConditionalSourceHandler_KeepsAttrsAndGroups(t *testing.T) {
	l, buf := newBufferedLogger(slog.LevelWarn)
	l.With("component", "store").WithGroup("req").Error("failed", "id", 7)

	out := buf.String()
	assert.Contains(t, out, "component=store")
	assert.Contains(t, out, "req.id=7")
	assert.Contains(t, out, "source=")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestNopLogger(t *testing.T) {
	l := NewNopLogger()
	assert.NotPanics(t, func() {
		l.Named("x").With("k", "v").Errorw("ignored", "err", "boom")
	})
}
