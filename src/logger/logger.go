// backend/src/logger/logger.go
package logger

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"
)

// L is the process-wide logger. Handlers normally log through the
// request-scoped variant carried in the context instead.
var L *slog.Logger

type contextKey string

const loggerKey contextKey = "logger"

// InitLogger sets up the global JSON logger. Call once at startup,
// right after the config is loaded.
func InitLogger(logLevelStr string) {
	var level slog.Level
	switch strings.ToLower(logLevelStr) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
		// L does not exist yet, so this one warning goes through the
		// package-level default.
		slog.Warn("Invalid LOG_LEVEL specified, defaulting to INFO", "configuredLevel", logLevelStr)
	}

	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// RFC3339 timestamps keep the JSON lines machine-parseable.
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.Format(time.RFC3339))
				}
			}
			return a
		},
	}

	handler := slog.NewJSONHandler(os.Stdout, opts)
	L = slog.New(handler)

	slog.SetDefault(L)
	L.Info("Logger initialized", "level", level.String())
}

// FromContext returns the request-scoped logger embedded in ctx, or the
// global logger when none was embedded.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return L
}

// ToContext embeds a slog.Logger into a context.Context.
func ToContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}
