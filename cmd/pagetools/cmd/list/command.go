// Package list provides the list command.
package list

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/s2wiki/pagetools/internal/appcontext"
	"github.com/s2wiki/pagetools/internal/cmd/output"
	"github.com/s2wiki/pagetools/internal/cmd/table"
	"github.com/s2wiki/pagetools/pkg/errors"
	"github.com/s2wiki/pagetools/pkg/pages"
	"github.com/s2wiki/pagetools/pkg/sources"
)

// Flags holds the list command flags.
type Flags struct {
	Game   string
	Search string
	Limit  int
}

// NewCommand creates the list command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	flags := &Flags{}

	cmd := &cobra.Command{
		Use:     "list",
		GroupID: "core",
		Aliases: []string{"ls"},
		Short:   "List resolved entity documents",
		Long: `List resolves the dump and the overrides exactly like generate, but
prints the resulting documents instead of writing them.`,
		Example: `  pagetools list                     # All documents
  pagetools list --game hla          # Documents with a Half-Life: Alyx page
  pagetools list --search door -o wide`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, app, flags)
		},
	}

	cmd.Flags().StringVar(&flags.Game, "game", "", "only documents with a page for this game")
	cmd.Flags().StringVar(&flags.Search, "search", "", "only documents whose name contains this text")
	cmd.Flags().IntVar(&flags.Limit, "limit", 0, "maximum number of documents (0 for all)")

	return cmd
}

func run(cmd *cobra.Command, app appcontext.Interface, flags *Flags) error {
	format, err := output.ParseFormat(app.OutputFormat())
	if err != nil {
		return errors.WrapValidation("output", err)
	}

	g, err := app.Generator()
	if err != nil {
		return err
	}

	if flags.Game != "" {
		if _, ok := g.Registry().Lookup(flags.Game); !ok {
			return g.Registry().UnknownError(flags.Game, "")
		}
	}

	docs, err := g.Documents(cmd.Context())
	if err != nil {
		return err
	}
	docs = Filter(docs, flags)

	if !app.Quiet() {
		app.Logger().Info().Msgf("Found %d document(s)", len(docs))
	}

	format = output.DetectFormat(string(format))
	var data any = docs
	if format.IsTable() {
		data = table.DocumentsToTableData(docs, format == output.FormatWide)
	}
	return output.NewFormatter(format).Format(cmd.OutOrStdout(), data)
}

// Filter applies the game, search and limit flags to docs.
func Filter(docs []*pages.Document, flags *Flags) []*pages.Document {
	search := strings.ToLower(flags.Search)
	out := make([]*pages.Document, 0, len(docs))
	for _, doc := range docs {
		if flags.Game != "" && doc.Latest(sources.ID(flags.Game)) == nil {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(doc.Name), search) {
			continue
		}
		out = append(out, doc)
		if flags.Limit > 0 && len(out) == flags.Limit {
			break
		}
	}
	return out
}
