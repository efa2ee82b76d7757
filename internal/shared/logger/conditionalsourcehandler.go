package logger

import (
	"context"
	"log/slog"
	"runtime"
)

type conditionalSourceHandler struct {
	handler   slog.Handler
	minSource slog.Level
}

// NewConditionalSourceHandler wraps handler so that records at or above
// minSource carry a source attribute. The wrapped handler must not add
// source itself.
func NewConditionalSourceHandler(handler slog.Handler, minSource slog.Level) slog.Handler {
	return &conditionalSourceHandler{handler: handler, minSource: minSource}
}

func (h *conditionalSourceHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= h.minSource {
		src := recordSource(r)
		if src == nil {
			src = callerSource()
		}
		if src != nil {
			r.AddAttrs(slog.Any(slog.SourceKey, src))
		}
	}
	return h.handler.Handle(ctx, r)
}

// recordSource resolves the call site slog captured in the record.
func recordSource(r slog.Record) *slog.Source {
	if r.PC == 0 {
		return nil
	}
	frames := runtime.CallersFrames([]uintptr{r.PC})
	f, _ := frames.Next()
	if f.File == "" {
		return nil
	}
	return &slog.Source{Function: f.Function, File: f.File, Line: f.Line}
}

func callerSource() *slog.Source {
	var pcs [1]uintptr
	if runtime.Callers(4, pcs[:]) == 0 {
		return nil
	}
	f, _ := runtime.CallersFrames(pcs[:]).Next()
	return &slog.Source{Function: f.Function, File: f.File, Line: f.Line}
}

func (h *conditionalSourceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &conditionalSourceHandler{handler: h.handler.WithAttrs(attrs), minSource: h.minSource}
}

func (h *conditionalSourceHandler) WithGroup(name string) slog.Handler {
	return &conditionalSourceHandler{handler: h.handler.WithGroup(name), minSource: h.minSource}
}

func (h *conditionalSourceHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }
