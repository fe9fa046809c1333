package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tr013432-design/spazio/internal/cli/formatter"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the studio dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := app.Status.Snapshot(cmd.Context(), time.Now())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatStatus(snap))
			return nil
		},
	}
}
