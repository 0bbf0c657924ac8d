// Package pagetools generates the entity documentation of the Source 2 wiki.
//
// A Generator reads the per-game record dump, groups records into one
// document per entity, applies the hand written overrides and writes the
// documents, per-game pages and the search index. Files are only rewritten
// when their contents change, so a run with unchanged inputs touches nothing.
//
// Example usage:
//
//	gen, err := pagetools.New(pagetools.WithRoot("/path/to/wiki"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	gen.OnDocumentWritten(func(path string, doc *pages.Document) {
//	    log.Printf("wrote %s", path)
//	})
//
//	result, err := gen.Generate(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Summary())
//
//	// Regenerate whenever an override changes, until ctx is cancelled.
//	err = gen.Watch(ctx)
package pagetools

import (
	"context"
	"path/filepath"

	"github.com/s2wiki/pagetools/internal/sources/dump"
	"github.com/s2wiki/pagetools/pkg/pages"
	"github.com/s2wiki/pagetools/pkg/sources"
)

// Generator builds the wiki artifacts from the record dump and overrides.
type Generator interface {
	// Generate runs the whole pipeline once and writes every changed artifact.
	Generate(ctx context.Context) (*Result, error)

	// Documents resolves the documents without writing anything.
	Documents(ctx context.Context) ([]*pages.Document, error)

	// Watch regenerates whenever an override file changes. It blocks until
	// ctx is cancelled.
	Watch(ctx context.Context) error

	// Registry returns the registered games.
	Registry() *sources.Registry

	// OnDocumentWritten registers a callback for every document written.
	OnDocumentWritten(DocumentWrittenHook)

	// OnRegenerated registers a callback for every watch triggered run.
	OnRegenerated(RegeneratedHook)
}

// generator is the default implementation of Generator. It holds no
// documents between runs.
type generator struct {
	config *config
	hooks  *hooks
}

var _ Generator = (*generator)(nil)

// New creates a Generator with the given options. WithRoot is required.
func New(opts ...Option) (Generator, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.adapter == nil {
		cfg.adapter = dump.New(cfg.fs, cfg.path(cfg.dumpDir), cfg.registry)
	}

	return &generator{
		config: cfg,
		hooks:  newHooks(),
	}, nil
}

// Registry returns the registered games.
func (g *generator) Registry() *sources.Registry {
	return g.config.registry
}

// OnDocumentWritten registers a callback for every document written.
func (g *generator) OnDocumentWritten(fn DocumentWrittenHook) {
	g.hooks.OnDocumentWritten(fn)
}

// OnRegenerated registers a callback for every watch triggered run.
func (g *generator) OnRegenerated(fn RegeneratedHook) {
	g.hooks.OnRegenerated(fn)
}

// path resolves p against the wiki root unless it is absolute.
func (c *config) path(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.root, p)
}

// adapterStats returns the dump counters when the adapter is the dump reader.
func (g *generator) adapterStats() *dump.Stats {
	if src, ok := g.config.adapter.(*dump.Source); ok {
		stats := src.Stats()
		return &stats
	}
	return nil
}
