package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

// contextKey is the key used to store the logger in a context.
// Using a custom type prevents collisions.
type contextKey string

const loggerKey = contextKey("logger")

// NewLogger builds the process logger. Production writes JSON, development writes text.
func NewLogger(w io.Writer, level string, isProduction bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}
	if isProduction {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// ParseLevel maps a config value to a slog level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// WithCommandLogger enriches base with a fresh command ID and the command name and stores it in ctx.
func WithCommandLogger(ctx context.Context, base *slog.Logger, command string) (context.Context, *slog.Logger) {
	commandLogger := base.With(
		slog.String("command_id", uuid.NewString()),
		slog.String("command", command),
	)
	return WithLogger(ctx, commandLogger), commandLogger
}

// GetLoggerFromCtx retrieves the scoped logger from ctx.
// It returns the default logger if none is found.
func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return slog.Default()
	}
	logger, ok := ctx.Value(loggerKey).(*slog.Logger)
	if !ok || logger == nil {
		return slog.Default()
	}
	return logger
}
