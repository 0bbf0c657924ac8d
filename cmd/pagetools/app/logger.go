package app

import (
	"github.com/rs/zerolog"

	"github.com/s2wiki/pagetools/pkg/logging"
)

// NewLogger creates the application logger and installs it as the package
// default used by the pipeline. Log level precedence (highest to lowest):
//  1. --log-level flag or PAGETOOLS_LOG_LEVEL
//  2. -v/--verbose (debug)
//  3. -q/--quiet (warn)
//  4. Default (info)
func NewLogger(config *Config) zerolog.Logger {
	level := determineLogLevel(config)

	logger := logging.NewLoggerFromConfig(&logging.Config{
		Level:     level,
		Format:    config.LogFormat,
		Output:    config.LogOutput,
		NoColor:   config.NoColor,
		AddCaller: level == "debug" || level == "trace",
	})
	logging.SetDefault(logger)
	return logger
}

func determineLogLevel(config *Config) string {
	if config.LogLevel != "" {
		validated := validateLogLevel(config.LogLevel)
		if validated != config.LogLevel {
			logging.Warn().Str("level", config.LogLevel).Msgf("Invalid log level, using %q", validated)
		}
		return validated
	}

	if config.Verbose && config.Quiet {
		logging.Warn().Msg("Both --verbose and --quiet specified, using --quiet")
		return "warn"
	}
	if config.Verbose {
		return "debug"
	}
	if config.Quiet {
		return "warn"
	}
	return "info"
}

// validateLogLevel returns level when it is known and "info" otherwise.
func validateLogLevel(level string) string {
	switch level {
	case "trace", "debug", "info", "warn", "error":
		return level
	}
	return "info"
}
