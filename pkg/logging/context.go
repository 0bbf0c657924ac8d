package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey int

const (
	// loggerKey is the context key for the logger.
	loggerKey contextKey = iota
	// runIDKey is the context key for the regeneration run number.
	runIDKey
)

// WithLogger adds a logger to the context.
func WithLogger(ctx context.Context, logger *zerolog.Logger) context.Context {
	if logger == nil {
		logger = Default()
	}
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext extracts the logger from context, or returns the default logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	if ctx == nil {
		return Default()
	}

	if logger, ok := ctx.Value(loggerKey).(*zerolog.Logger); ok && logger != nil {
		return logger
	}

	return Default()
}

// WithRunID tags the context with the regeneration run number so that
// every line written during one run can be grouped.
func WithRunID(ctx context.Context, run uint64) context.Context {
	ctx = context.WithValue(ctx, runIDKey, run)

	logger := FromContext(ctx)
	newLogger := logger.With().Uint64("run", run).Logger()
	return WithLogger(ctx, &newLogger)
}

// RunID extracts the run number from context. Zero means no run is tagged.
func RunID(ctx context.Context) uint64 {
	if id, ok := ctx.Value(runIDKey).(uint64); ok {
		return id
	}
	return 0
}

// WithGame adds the game identifier to the logger.
func WithGame(ctx context.Context, game string) context.Context {
	return withStr(ctx, "game", game)
}

// WithEntity adds the entity classname to the logger.
func WithEntity(ctx context.Context, entity string) context.Context {
	return withStr(ctx, "entity", entity)
}

// WithFile adds the file being read or written to the logger.
func WithFile(ctx context.Context, path string) context.Context {
	return withStr(ctx, "file", path)
}

// WithOperation names the pipeline stage in the logger.
func WithOperation(ctx context.Context, operation string) context.Context {
	return withStr(ctx, "operation", operation)
}

func withStr(ctx context.Context, key, value string) context.Context {
	logger := FromContext(ctx).With().Str(key, value).Logger()
	return WithLogger(ctx, &logger)
}
