package logger

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

type ctxKey struct{}

func WithLogger(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

func FromContext(ctx context.Context) *slog.Logger {
	l, ok := ctx.Value(ctxKey{}).(*slog.Logger)
	if !ok || l == nil {
		return slog.Default()
	}
	return l
}

// New builds a logger writing to w. Format "json" selects the JSON handler,
// anything else the colored console handler.
func New(w io.Writer, format, level string) *slog.Logger {
	lvl := ParseLevel(level)

	if strings.EqualFold(format, "json") {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl}))
	}

	opts := new(tint.Options)
	opts.Level = lvl
	opts.AddSource = lvl == slog.LevelDebug
	opts.TimeFormat = "[15:04:05.000]"
	return slog.New(tint.NewHandler(w, opts))
}

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Since is a convenience attribute for request durations.
func Since(start time.Time) slog.Attr {
	return slog.Duration("duration", time.Since(start))
}
