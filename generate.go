//go:generate gomarkdoc -e -f github -o README.md . --repository.url https://github.com/s2wiki/pagetools --repository.default-branch main

package pagetools

import (
	"context"
	"path/filepath"
	"time"

	"github.com/s2wiki/pagetools/pkg/constants"
	"github.com/s2wiki/pagetools/pkg/index"
	"github.com/s2wiki/pagetools/pkg/logging"
	"github.com/s2wiki/pagetools/pkg/overrides"
	"github.com/s2wiki/pagetools/pkg/pages"
	"github.com/s2wiki/pagetools/pkg/reconciler"
	"github.com/s2wiki/pagetools/pkg/save"
)

// Generate runs the pipeline once: records are aggregated into documents,
// overrides are resolved onto them, and every artifact whose contents changed
// is written. A configuration error aborts the run before anything is
// written.
func (g *generator) Generate(ctx context.Context) (*Result, error) {
	start := time.Now()
	ctx = logging.WithOperation(ctx, "generate")
	logger := logging.FromContext(ctx)

	set, resolved, err := g.resolve(ctx)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Resolve: resolved,
		Dump:    g.adapterStats(),
		DryRun:  g.config.dryRun,
	}
	writer := save.NewWriter(g.config.fs,
		save.WithFormat(g.config.format),
		save.WithDryRun(g.config.dryRun),
	)
	docs := set.Documents()

	if result.Documents, err = g.writeDocuments(ctx, writer, docs); err != nil {
		return nil, err
	}
	if result.Pages, err = g.writePages(ctx, writer, docs); err != nil {
		return nil, err
	}
	if result.IndexWritten, err = g.writeIndex(writer, docs); err != nil {
		return nil, err
	}
	if result.Changed() {
		if result.ManifestWritten, err = g.writeManifest(writer, result); err != nil {
			return nil, err
		}
	}

	result.Duration = time.Since(start)
	logger.Info().Msgf("Wrote '%d' document(s), skipped '%d' document(s) with contents that did not change",
		result.Documents.Written, result.Documents.Skipped)
	logger.Info().Msgf("Wrote '%d' page(s), skipped '%d' page(s) with contents that did not change",
		result.Pages.Written, result.Pages.Skipped)
	if result.DryRun {
		logger.Info().Bool("dry_run", true).Msg("Dry run completed - no files written")
	}
	return result, nil
}

// Documents resolves the documents without writing anything.
func (g *generator) Documents(ctx context.Context) ([]*pages.Document, error) {
	set, _, err := g.resolve(logging.WithOperation(ctx, "documents"))
	if err != nil {
		return nil, err
	}
	return set.Documents(), nil
}

// resolve builds a fresh document set and applies the overrides to it.
func (g *generator) resolve(ctx context.Context) (*reconciler.Set, *reconciler.Result, error) {
	logger := logging.FromContext(ctx)
	cfg := g.config

	if err := ValidateRoot(cfg.fs, cfg.root); err != nil {
		return nil, nil, err
	}

	records, err := cfg.adapter.Records(ctx)
	if err != nil {
		return nil, nil, err
	}
	set := reconciler.Aggregate(records)
	logger.Debug().
		Int("records", len(records)).
		Int("documents", set.Len()).
		Msg("Aggregated records")

	patches, err := overrides.NewLoader(cfg.fs, cfg.path(cfg.overridesDir), cfg.registry).Load(ctx)
	if err != nil {
		return nil, nil, err
	}
	logger.Info().Msgf("Found '%d' page override(s)", patches.Files)

	r, err := reconciler.New(
		reconciler.WithRegistry(cfg.registry),
		reconciler.WithStrict(cfg.strict),
	)
	if err != nil {
		return nil, nil, err
	}
	resolved, err := r.Resolve(ctx, set, patches)
	if err != nil {
		return nil, nil, err
	}
	for _, e := range resolved.Errors {
		logger.Warn().Err(e).Msg("Override was not applied")
	}
	return set, resolved, nil
}

func (g *generator) writeDocuments(ctx context.Context, w *save.Writer, docs []*pages.Document) (save.Stats, error) {
	logger := logging.FromContext(ctx)
	w.Reset()

	dir := g.config.path(g.config.outputDir)
	for _, doc := range docs {
		path := filepath.Join(dir, doc.Name+w.Format().Ext())
		wrote, err := w.Save(path, doc)
		if err != nil {
			return save.Stats{}, err
		}
		if !wrote {
			logger.Debug().Msgf("Skipped writing document '%s' because the file contents did not change.", path)
			continue
		}
		logger.Info().Msgf("Wrote document '%s'", path)
		if !g.config.dryRun {
			g.hooks.documentWritten(path, doc)
		}
	}
	return w.Stats(), nil
}

// writePages writes one page per game of each document. When a game
// contributed several pages the last one is written.
func (g *generator) writePages(ctx context.Context, w *save.Writer, docs []*pages.Document) (save.Stats, error) {
	logger := logging.FromContext(ctx)
	w.Reset()

	dir := g.config.path(g.config.pagesDir)
	for _, doc := range docs {
		for _, game := range doc.Games() {
			page := doc.Latest(game)
			path := filepath.Join(dir, filepath.FromSlash(page.PageRelativePath())+w.Format().Ext())
			wrote, err := w.Save(path, page)
			if err != nil {
				return save.Stats{}, err
			}
			if wrote {
				logger.Info().Msgf("Wrote page '%s' because file contents changed", path)
			} else {
				logger.Debug().Msgf("Skipped writing page '%s' because the file contents did not change.", path)
			}
		}
	}
	return w.Stats(), nil
}

func (g *generator) writeIndex(w *save.Writer, docs []*pages.Document) (bool, error) {
	entries := index.Build(docs, index.FileExists(g.config.fs, g.config.root))
	data, err := save.Encode(entries, save.FormatJSON)
	if err != nil {
		return false, err
	}
	return w.WriteIfChanged(g.config.path(g.config.indexPath), data)
}

func (g *generator) writeManifest(w *save.Writer, result *Result) (bool, error) {
	data, err := save.Encode(newManifest(result), save.FormatJSON)
	if err != nil {
		return false, err
	}
	path := filepath.Join(g.config.path(g.config.outputDir), constants.ManifestFile)
	return w.WriteIfChanged(path, data)
}
