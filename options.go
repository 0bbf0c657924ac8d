package pagetools

import (
	"github.com/spf13/afero"

	"github.com/s2wiki/pagetools/pkg/constants"
	"github.com/s2wiki/pagetools/pkg/errors"
	"github.com/s2wiki/pagetools/pkg/reconciler"
	"github.com/s2wiki/pagetools/pkg/save"
	"github.com/s2wiki/pagetools/pkg/sources"
)

// config holds the generator configuration. Relative directories are
// resolved against root.
type config struct {
	fs       afero.Fs
	root     string
	registry *sources.Registry
	adapter  reconciler.Adapter

	dumpDir      string
	overridesDir string
	outputDir    string
	pagesDir     string
	indexPath    string

	format save.Format
	dryRun bool
	strict bool
}

func defaultConfig() *config {
	return &config{
		fs:           afero.NewOsFs(),
		registry:     sources.Default(),
		dumpDir:      constants.DumpFolder,
		overridesDir: constants.OverridesFolder,
		outputDir:    constants.DocsFolder,
		pagesDir:     constants.PagesFolder,
		indexPath:    constants.IndexPath,
		format:       save.FormatJSON,
	}
}

func (c *config) validate() error {
	if c.root == "" {
		return &errors.ConfigError{Component: "root", Message: "wiki root is required"}
	}
	return nil
}

// Option is a function that configures a Generator.
type Option func(*config) error

// WithRoot sets the wiki root: the folder holding docusaurus.config.ts.
func WithRoot(root string) Option {
	return func(c *config) error {
		c.root = root
		return nil
	}
}

// WithFs sets the filesystem every artifact is read from and written to.
// Watch always observes the OS filesystem.
func WithFs(fs afero.Fs) Option {
	return func(c *config) error {
		if fs == nil {
			return &errors.ValidationError{Field: "fs", Message: "cannot be nil"}
		}
		c.fs = fs
		return nil
	}
}

// WithRegistry replaces the built-in games.
func WithRegistry(reg *sources.Registry) Option {
	return func(c *config) error {
		if reg == nil {
			return &errors.ValidationError{Field: "registry", Message: "cannot be nil"}
		}
		c.registry = reg
		return nil
	}
}

// WithAdapter replaces the dump reader as the source of records.
func WithAdapter(a reconciler.Adapter) Option {
	return func(c *config) error {
		c.adapter = a
		return nil
	}
}

// WithDumpDir sets the record dump folder.
func WithDumpDir(dir string) Option {
	return func(c *config) error {
		c.dumpDir = dir
		return nil
	}
}

// WithOverridesDir sets the override folder.
func WithOverridesDir(dir string) Option {
	return func(c *config) error {
		c.overridesDir = dir
		return nil
	}
}

// WithOutputDir sets the folder receiving one document per entity.
func WithOutputDir(dir string) Option {
	return func(c *config) error {
		c.outputDir = dir
		return nil
	}
}

// WithPagesDir sets the folder receiving one page per entity and game.
func WithPagesDir(dir string) Option {
	return func(c *config) error {
		c.pagesDir = dir
		return nil
	}
}

// WithIndexPath sets where the search index is written.
func WithIndexPath(path string) Option {
	return func(c *config) error {
		c.indexPath = path
		return nil
	}
}

// WithFormat sets the format of documents and pages.
func WithFormat(f save.Format) Option {
	return func(c *config) error {
		if !f.IsValid() {
			return &errors.ValidationError{Field: "format", Value: f, Message: "unsupported format"}
		}
		c.format = f
		return nil
	}
}

// WithDryRun resolves and compares everything but writes nothing.
func WithDryRun(enabled bool) Option {
	return func(c *config) error {
		c.dryRun = enabled
		return nil
	}
}

// WithStrict fails the run when any override could not be applied.
func WithStrict(enabled bool) Option {
	return func(c *config) error {
		c.strict = enabled
		return nil
	}
}
