// Package games provides the games command.
package games

import (
	"github.com/spf13/cobra"

	"github.com/s2wiki/pagetools/internal/appcontext"
	"github.com/s2wiki/pagetools/internal/cmd/output"
	"github.com/s2wiki/pagetools/internal/cmd/table"
	"github.com/s2wiki/pagetools/pkg/errors"
)

// NewCommand creates the games command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "games",
		GroupID: "info",
		Short:   "List the registered games",
		Long: `Games lists the games pages can come from, in the order their pages
appear in documents. An override file tag must be one of these IDs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := output.ParseFormat(app.OutputFormat())
			if err != nil {
				return errors.WrapValidation("output", err)
			}

			reg, err := app.Registry()
			if err != nil {
				return err
			}

			format = output.DetectFormat(string(format))
			var data any = reg.Games()
			if format.IsTable() {
				data = table.GamesToTableData(reg)
			}
			return output.NewFormatter(format).Format(cmd.OutOrStdout(), data)
		},
	}
}
