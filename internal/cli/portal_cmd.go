package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tr013432-design/spazio/internal/portal"
)

func newPortalCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "portal",
		Short: "Serve the read-only client portal",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.ShareLinks == nil {
				return fmt.Errorf("portal is not configured: set SPAZIO_PORTAL_SECRET")
			}

			listen := app.PortalAddr
			if addr != "" {
				listen = addr
			}

			h := portal.NewHandler(app.Projects, app.ShareLinks, app.Logger)
			router := portal.Router(h, app.PortalAllowOrigin)
			return portal.Serve(listen, router, app.Logger)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides SPAZIO_PORTAL_ADDR)")
	return cmd
}
