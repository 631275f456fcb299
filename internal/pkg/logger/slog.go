package logger

import (
	"context"
	"log/slog"
	"os"
	"runtime"
)

type contextKey string

const (
	RequestIDKey contextKey = "request_id"
	SearchIDKey  contextKey = "search_id"
	TaskIDKey    contextKey = "task_id"
)

var contextKeys = []contextKey{RequestIDKey, SearchIDKey, TaskIDKey}

// StackTraceHandler is a handler that adds stack trace to error records
// and extracts correlation ids from context
type StackTraceHandler struct {
	slog.Handler
}

func (h *StackTraceHandler) Handle(ctx context.Context, r slog.Record) error {
	if ctx != nil {
		for _, key := range contextKeys {
			if value, ok := ctx.Value(key).(string); ok && value != "" {
				r.AddAttrs(slog.String(string(key), value))
			}
		}
	}

	if r.Level >= slog.LevelError {
		buf := make([]byte, 4096)
		n := runtime.Stack(buf, false)
		r.AddAttrs(slog.String("stack_trace", string(buf[:n])))
	}
	return h.Handler.Handle(ctx, r)
}

func (h *StackTraceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &StackTraceHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *StackTraceHandler) WithGroup(name string) slog.Handler {
	return &StackTraceHandler{Handler: h.Handler.WithGroup(name)}
}

// WithSearchID tags every record logged with ctx with the saved search id.
func WithSearchID(ctx context.Context, searchID string) context.Context {
	return context.WithValue(ctx, SearchIDKey, searchID)
}

// WithTaskID tags every record logged with ctx with the background task id.
func WithTaskID(ctx context.Context, taskID string) context.Context {
	return context.WithValue(ctx, TaskIDKey, taskID)
}

// InitStructuredLogger initialize structured logger
func InitStructuredLogger(level slog.Leveler) {
	opts := &slog.HandlerOptions{
		Level: level,
	}

	if level.Level() == slog.LevelDebug {
		opts.AddSource = true
	}

	jsonHandler := slog.NewJSONHandler(os.Stdout, opts)
	handler := &StackTraceHandler{Handler: jsonHandler}

	slog.SetDefault(slog.New(handler))
}
