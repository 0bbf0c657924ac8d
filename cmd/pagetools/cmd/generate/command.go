// Package generate provides the generate command.
package generate

import (
	"github.com/spf13/cobra"

	"github.com/s2wiki/pagetools"
	"github.com/s2wiki/pagetools/internal/appcontext"
	"github.com/s2wiki/pagetools/pkg/errors"
	"github.com/s2wiki/pagetools/pkg/pages"
	"github.com/s2wiki/pagetools/pkg/save"
)

// Flags holds the generate command flags.
type Flags struct {
	NoListen bool
	Format   string
	DryRun   bool
	Strict   bool
}

// NewCommand creates the generate command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	flags := &Flags{}

	cmd := &cobra.Command{
		Use:     "generate",
		GroupID: "core",
		Short:   "Generate entity documents, pages and the search index",
		Long: `Generate reads the per-game entity dump, applies the page overrides and
writes one document per entity, one page per entity and game, and the
entity search index. Only files whose contents changed are written.

Afterwards it keeps watching the overrides folder and regenerates on every
change, unless --no-listen is given.`,
		Example: `  pagetools generate                  # Generate, then watch overrides
  pagetools generate --no-listen      # Generate once
  pagetools generate --format yaml    # Write YAML documents
  pagetools generate --dry-run -v     # Report what would change`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, app, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.NoListen, "no-listen", false, "exit after generating instead of watching for override changes")
	cmd.Flags().StringVar(&flags.Format, "format", "", "document format: json or yaml (default from config)")
	cmd.Flags().BoolVar(&flags.DryRun, "dry-run", false, "report changes without writing")
	cmd.Flags().BoolVar(&flags.Strict, "strict", false, "fail when any entity could not be resolved")

	return cmd
}

func run(cmd *cobra.Command, app appcontext.Interface, flags *Flags) error {
	logger := app.Logger()

	var opts []pagetools.Option
	if flags.Format != "" {
		format, err := save.ParseFormat(flags.Format)
		if err != nil {
			return errors.WrapValidation("format", err)
		}
		opts = append(opts, pagetools.WithFormat(format))
	}
	if flags.DryRun {
		opts = append(opts, pagetools.WithDryRun(true))
	}
	if flags.Strict {
		opts = append(opts, pagetools.WithStrict(true))
	}

	g, err := app.GeneratorWithOptions(opts...)
	if err != nil {
		return err
	}

	g.OnDocumentWritten(func(path string, _ *pages.Document) {
		logger.Debug().Str("path", path).Msg("Document written")
	})

	result, err := g.Generate(cmd.Context())
	if err != nil {
		return err
	}
	if !app.Quiet() {
		cmd.Println(result.Summary())
	}

	if flags.NoListen || flags.DryRun {
		return nil
	}
	return g.Watch(cmd.Context())
}
