// Package app wires configuration, logging and the generator for the
// pagetools CLI.
package app

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/s2wiki/pagetools"
	"github.com/s2wiki/pagetools/internal/appcontext"
	"github.com/s2wiki/pagetools/internal/config"
	"github.com/s2wiki/pagetools/pkg/errors"
	"github.com/s2wiki/pagetools/pkg/save"
	"github.com/s2wiki/pagetools/pkg/sources"
)

var _ appcontext.Interface = (*App)(nil)

// App holds the CLI dependencies.
type App struct {
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	logger *zerolog.Logger

	mu        sync.RWMutex
	generator pagetools.Generator
	registry  *sources.Registry
}

// New creates an App from the loaded configuration.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	cfg, err := LoadConfig("")
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = cfg

	logger := NewLogger(cfg)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}
	return app, nil
}

// Version returns the version information.
func (a *App) Version() string { return a.version }

// Commit returns the git commit hash.
func (a *App) Commit() string { return a.commit }

// Date returns the build date.
func (a *App) Date() string { return a.date }

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string { return a.builtBy }

// Config returns the application configuration.
func (a *App) Config() *Config { return a.config }

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger { return a.logger }

// OutputFormat returns the -o/--output value.
func (a *App) OutputFormat() string { return a.config.Output }

// Quiet reports whether -q was given.
func (a *App) Quiet() bool { return a.config.Quiet }

// Registry returns the configured games.
func (a *App) Registry() (*sources.Registry, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.registry != nil {
		return a.registry, nil
	}
	reg, err := config.Registry(a.config.Games)
	if err != nil {
		return nil, err
	}
	a.registry = reg
	return reg, nil
}

// Generator returns the generator, creating it on first use.
func (a *App) Generator() (pagetools.Generator, error) {
	a.mu.RLock()
	if a.generator != nil {
		g := a.generator
		a.mu.RUnlock()
		return g, nil
	}
	a.mu.RUnlock()

	g, err := a.GeneratorWithOptions()
	if err != nil {
		return nil, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.generator == nil {
		a.generator = g
	}
	return a.generator, nil
}

// GeneratorWithOptions creates a new generator from the configuration with
// opts applied last.
func (a *App) GeneratorWithOptions(opts ...pagetools.Option) (pagetools.Generator, error) {
	base, err := a.generatorOptions()
	if err != nil {
		return nil, err
	}
	g, err := pagetools.New(append(base, opts...)...)
	if err != nil {
		return nil, errors.WrapResource("create", "generator", a.config.Root, err)
	}
	return g, nil
}

// Shutdown releases resources held by the application.
func (a *App) Shutdown(_ context.Context) error {
	a.mu.Lock()
	a.generator = nil
	a.mu.Unlock()
	a.logger.Debug().Msg("Shutdown complete")
	return nil
}

func (a *App) generatorOptions() ([]pagetools.Option, error) {
	reg, err := a.Registry()
	if err != nil {
		return nil, err
	}

	opts := []pagetools.Option{
		pagetools.WithRoot(a.config.Root),
		pagetools.WithRegistry(reg),
	}
	if a.config.DumpDir != "" {
		opts = append(opts, pagetools.WithDumpDir(a.config.DumpDir))
	}
	if a.config.OverridesDir != "" {
		opts = append(opts, pagetools.WithOverridesDir(a.config.OverridesDir))
	}
	if a.config.OutputDir != "" {
		opts = append(opts, pagetools.WithOutputDir(a.config.OutputDir))
	}
	if a.config.PagesDir != "" {
		opts = append(opts, pagetools.WithPagesDir(a.config.PagesDir))
	}
	if a.config.IndexPath != "" {
		opts = append(opts, pagetools.WithIndexPath(a.config.IndexPath))
	}
	if a.config.Format != "" {
		format, err := save.ParseFormat(a.config.Format)
		if err != nil {
			return nil, errors.NewConfigError("format", "invalid document format", err)
		}
		opts = append(opts, pagetools.WithFormat(format))
	}
	return opts, nil
}

// Option configures an App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithGenerator sets the generator returned by Generator.
func WithGenerator(g pagetools.Generator) Option {
	return func(a *App) error {
		a.generator = g
		return nil
	}
}
