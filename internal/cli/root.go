package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/tr013432-design/spazio/internal/importer"
	"github.com/tr013432-design/spazio/internal/intelligence"
	"github.com/tr013432-design/spazio/internal/portal"
	"github.com/tr013432-design/spazio/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Leads    service.LeadService
	Projects service.ProjectService
	Finance  service.FinanceService
	Status   service.StatusService

	// Studio is nil when no AI API key is configured.
	Studio intelligence.StudioService

	Importer   *importer.Importer
	ShareLinks *portal.ShareLinkIssuer

	PortalAddr        string
	PortalAllowOrigin string

	Logger *slog.Logger

	// IsInteractive reports whether stdin is a terminal; when it is, running
	// the bare binary opens the board instead of printing help.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "spazio" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "spazio",
		Short: "Studio management for architects: leads, projects, finance",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runBoard(app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newLeadCmd(app),
		newProjectCmd(app),
		newFinanceCmd(app),
		newStatusCmd(app),
		newAICmd(app),
		newImportCmd(app),
		newPortalCmd(app),
		newBoardCmd(app),
	)

	return root
}
