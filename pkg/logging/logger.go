// Package logging provides structured logging for pagetools using zerolog.
// Console output is used when stderr is a terminal, structured JSON otherwise.
//
// Example usage:
//
//	log := logging.Default()
//	log.Info().Str("game", "cs2").Msg("Loading dump")
//
//	ctx := logging.WithLogger(context.Background(), log)
//	ctx = logging.WithEntity(ctx, "prop_door_rotating")
//	logging.FromContext(ctx).Debug().Msg("Applying override")
package logging

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// EnvPrefix is prepended to the environment variables read by the logger.
const EnvPrefix = "PAGETOOLS_"

// defaultLogger is used until the CLI installs a configured logger. It
// honours the PAGETOOLS_LOG_* variables.
var defaultLogger = NewLoggerFromConfig(configFromEnv())

// Default returns the default global logger.
func Default() *zerolog.Logger {
	return &defaultLogger
}

// SetDefault sets the default global logger.
func SetDefault(logger zerolog.Logger) {
	defaultLogger = logger
	log.Logger = logger
}

// Debug starts a new debug level log event.
func Debug() *zerolog.Event {
	return defaultLogger.Debug()
}

// Info starts a new info level log event.
func Info() *zerolog.Event {
	return defaultLogger.Info()
}

// Warn starts a new warning level log event.
func Warn() *zerolog.Event {
	return defaultLogger.Warn()
}

// Error starts a new error level log event.
func Error() *zerolog.Event {
	return defaultLogger.Error()
}

// Err creates a new error log event with the given error.
func Err(err error) *zerolog.Event {
	return defaultLogger.Err(err)
}

func stderrIsTerminal() bool {
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
