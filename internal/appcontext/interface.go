// Package appcontext provides the shared application context interface
// used by all commands. Commands accept the interface rather than the
// concrete App so they can be tested with Mock.
package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/s2wiki/pagetools"
	"github.com/s2wiki/pagetools/pkg/sources"
)

// Interface defines what commands need from the application.
type Interface interface {
	// Generator returns the generator built from the configuration,
	// creating it lazily.
	Generator() (pagetools.Generator, error)

	// GeneratorWithOptions creates a new generator from the configuration
	// with extra options applied last.
	GeneratorWithOptions(...pagetools.Option) (pagetools.Generator, error)

	// Registry returns the configured games without requiring a wiki root.
	Registry() (*sources.Registry, error)

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (table, json, yaml, wide).
	OutputFormat() string

	// Quiet reports whether informational output is suppressed.
	Quiet() bool

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
