package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tr013432-design/spazio/internal/cli/formatter"
)

func newImportCmd(app *App) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a legacy browser-export JSON file",
		Long: `Import a legacy browser-export JSON file. A malformed or missing
file seeds the demo dataset instead, matching the old web app's
behavior on corrupted storage. --strict fails instead of seeding.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if strict {
				res, err := app.Importer.ImportFile(ctx, args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %d leads, %d projects, %d transactions\n",
					res.Leads, res.Projects, res.Transactions)
				return nil
			}

			res, err := app.Importer.ImportOrSeed(ctx, args[0])
			if err != nil {
				return err
			}
			if res.Seeded {
				fmt.Fprintln(cmd.OutOrStdout(),
					formatter.StyleYellow.Render("Export unreadable; applied the demo dataset instead."))
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d leads, %d projects, %d transactions\n",
				res.Leads, res.Projects, res.Transactions)
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Fail on a malformed file instead of seeding")
	return cmd
}
