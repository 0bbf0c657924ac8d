package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/s2wiki/pagetools"
	"github.com/s2wiki/pagetools/pkg/sources"
)

// Mock provides a mock implementation of Interface for testing.
// A nil function field yields a zero value.
type Mock struct {
	GeneratorFunc            func() (pagetools.Generator, error)
	GeneratorWithOptionsFunc func(...pagetools.Option) (pagetools.Generator, error)
	RegistryFunc             func() (*sources.Registry, error)
	LoggerFunc               func() *zerolog.Logger
	Format                   string
	IsQuiet                  bool
}

var _ Interface = (*Mock)(nil)

// Generator returns a generator using the mock function or nil.
func (m *Mock) Generator() (pagetools.Generator, error) {
	if m.GeneratorFunc != nil {
		return m.GeneratorFunc()
	}
	return nil, nil
}

// GeneratorWithOptions returns a generator using the mock function, falling
// back to Generator.
func (m *Mock) GeneratorWithOptions(opts ...pagetools.Option) (pagetools.Generator, error) {
	if m.GeneratorWithOptionsFunc != nil {
		return m.GeneratorWithOptionsFunc(opts...)
	}
	return m.Generator()
}

// Registry returns the mock registry or the built-in games.
func (m *Mock) Registry() (*sources.Registry, error) {
	if m.RegistryFunc != nil {
		return m.RegistryFunc()
	}
	return sources.Default(), nil
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat returns Format.
func (m *Mock) OutputFormat() string { return m.Format }

// Quiet returns IsQuiet.
func (m *Mock) Quiet() bool { return m.IsQuiet }

// Version returns "dev".
func (m *Mock) Version() string { return "dev" }

// Commit returns "unknown".
func (m *Mock) Commit() string { return "unknown" }

// Date returns "unknown".
func (m *Mock) Date() string { return "unknown" }

// BuiltBy returns "unknown".
func (m *Mock) BuiltBy() string { return "unknown" }
