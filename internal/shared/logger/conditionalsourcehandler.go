package logger

import (
	"context"
	"log/slog"
	"runtime"
)

type conditionalSourceHandler struct {
	handler      slog.Handler
	sourceLevels map[slog.Level]bool
}

// NewConditionalSourceHandler wraps a handler so that the source location is
// attached only to records at the given levels. The wrapped handler must be
// created with AddSource: false.
func NewConditionalSourceHandler(handler slog.Handler, levels ...slog.Level) slog.Handler {
	sourceLevels := make(map[slog.Level]bool, len(levels))
	for _, level := range levels {
		sourceLevels[level] = true
	}
	return &conditionalSourceHandler{
		handler:      handler,
		sourceLevels: sourceLevels,
	}
}

func (h *conditionalSourceHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.sourceLevels[r.Level] {
		// skip runtime.Callers, Handle and the slog frame
		var pcs [1]uintptr
		runtime.Callers(3, pcs[:])
		frame, _ := runtime.CallersFrames(pcs[:]).Next()

		r.AddAttrs(slog.Any(slog.SourceKey, &slog.Source{
			Function: frame.Function,
			File:     frame.File,
			Line:     frame.Line,
		}))
	}

	return h.handler.Handle(ctx, r)
}

func (h *conditionalSourceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &conditionalSourceHandler{
		handler:      h.handler.WithAttrs(attrs),
		sourceLevels: h.sourceLevels,
	}
}

func (h *conditionalSourceHandler) WithGroup(name string) slog.Handler {
	return &conditionalSourceHandler{
		handler:      h.handler.WithGroup(name),
		sourceLevels: h.sourceLevels,
	}
}

func (h *conditionalSourceHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}
