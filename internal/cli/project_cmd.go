package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tr013432-design/spazio/internal/cli/formatter"
	"github.com/tr013432-design/spazio/internal/domain"
	"github.com/tr013432-design/spazio/internal/insights"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage contracted projects",
	}

	cmd.AddCommand(
		newProjectAddCmd(app),
		newProjectListCmd(app),
		newProjectShowCmd(app),
		newProjectStageCmd(app),
		newProjectProgressCmd(app),
		newProjectRRTCmd(app),
		newProjectChargeCmd(app),
		newProjectLogCmd(app),
		newProjectMaterialCmd(app),
		newProjectShareCmd(app),
		newProjectRemoveCmd(app),
	)

	return cmd
}

func newProjectAddCmd(app *App) *cobra.Command {
	var title, client, deadline string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			total, err := moneyFlagCents(cmd.Flags(), "total")
			if err != nil {
				return err
			}
			costs, err := moneyFlagCents(cmd.Flags(), "costs")
			if err != nil {
				return err
			}

			p := &domain.Project{
				Title:      title,
				ClientName: client,
				TotalValue: total,
				Costs:      costs,
			}

			if deadline != "" {
				d, err := time.Parse("2006-01-02", deadline)
				if err != nil {
					return fmt.Errorf("invalid deadline %q: %w", deadline, err)
				}
				p.Deadline = &d
			}

			if err := app.Projects.Create(cmd.Context(), p); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created project %s [%s]\n", p.Title, p.DisplayID())
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Project title")
	cmd.Flags().StringVar(&client, "client", "", "Client name")
	cmd.Flags().String("total", "", "Contracted value, e.g. 80000")
	cmd.Flags().String("costs", "", "Estimated costs")
	cmd.Flags().StringVar(&deadline, "deadline", "", "Delivery deadline (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := app.Projects.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(projects) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No projects yet."))
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProjectList(projects))
			return nil
		},
	}
}

func newProjectShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one project with its diary and materials",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Projects.GetByID(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatProjectDetail(p))
			return nil
		},
	}
}

func formatProjectDetail(p *domain.Project) string {
	var b strings.Builder

	b.WriteString(formatter.RenderStepper(p.Stage) + "\n\n")

	pairs := [][2]string{
		{"Title", formatter.Bold(p.Title)},
		{"Client", p.ClientName},
		{"Progress", formatter.RenderProgress(p.Progress, 12)},
		{"Paid", formatter.FormatMoney(p.PaidValue) + formatter.Dim(" of ") + formatter.FormatMoney(p.TotalValue)},
		{"Outstanding", formatter.StyleYellow.Render(formatter.FormatMoney(p.Outstanding()))},
		{"RRT", formatter.RRTBadge(p.RRTStatus, p.RRTNumber)},
	}
	if pct, ok := insights.MarginPercent(p.TotalValue, p.Costs); ok {
		pairs = append(pairs, [2]string{"Margin", fmt.Sprintf("%d%%", pct)})
	}
	if p.Deadline != nil {
		pairs = append(pairs, [2]string{"Deadline", formatter.HumanDate(*p.Deadline)})
	}
	b.WriteString(formatter.RenderKeyValues(pairs))

	if len(p.DailyLogs) > 0 {
		b.WriteString("\n" + formatter.Header("Site diary") + "\n")
		for _, log := range p.DailyLogs {
			b.WriteString(fmt.Sprintf("  %s %s\n",
				formatter.Dim(log.Date.Format("2006-01-02")), log.Content))
		}
	}

	if len(p.MaterialApprovals) > 0 {
		b.WriteString("\n" + formatter.Header("Materials") + "\n")
		for _, m := range p.MaterialApprovals {
			b.WriteString(fmt.Sprintf("  %s %s %s %s\n",
				formatter.TruncID(m.ID), formatter.Bold(m.Name),
				formatter.Dim(m.Category), formatter.MaterialPill(m.Status)))
		}
	}

	return formatter.RenderBox(p.DisplayID(), b.String())
}

func newProjectStageCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stage <id> <stage>",
		Short: "Move a project to another lifecycle stage",
		Long: `Move a project to another lifecycle stage. Stages: briefing,
concept, executive, construction, completed.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			stage := domain.ProjectStage(strings.ToLower(args[1]))
			if err := app.Projects.SetStage(ctx, id, stage); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderStepper(stage))
			return nil
		},
	}
}

func newProjectProgressCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "progress <id> <percent>",
		Short: "Update construction progress (0-100)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			pct, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid percentage %q", args[1])
			}
			if err := app.Projects.SetProgress(ctx, id, pct); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderProgress(pct, 20))
			return nil
		},
	}
}

func newProjectRRTCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rrt",
		Short: "Manage the project's RRT permit",
	}

	issueCmd := &cobra.Command{
		Use:   "issue <id>",
		Short: "Issue the RRT and assign a registry number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			number, err := app.Projects.IssueRRT(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Issued %s\n", number)
			return nil
		},
	}

	paidCmd := &cobra.Command{
		Use:   "paid <id>",
		Short: "Mark the issued RRT as paid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Projects.MarkRRTPaid(ctx, id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "RRT paid.")
			return nil
		},
	}

	cmd.AddCommand(issueCmd, paidCmd)
	return cmd
}

func newProjectChargeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "charge <id>",
		Short: "Charge the next 25% milestone and record it in the ledger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			charged, err := app.Projects.ChargeMilestone(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Charged %s\n", formatter.FormatMoney(charged))
			return nil
		},
	}
}

func newProjectLogCmd(app *App) *cobra.Command {
	var image string

	cmd := &cobra.Command{
		Use:   "log <id> <content>",
		Short: "Add a site-diary entry",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			entry, err := app.Projects.AddDailyLog(ctx, id, strings.Join(args[1:], " "), image)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s\n", entry.Date.Format("2006-01-02"))
			return nil
		},
	}

	cmd.Flags().StringVar(&image, "image", "", "Photo URL for the entry")
	return cmd
}

func newProjectMaterialCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "material",
		Short: "Manage material approvals",
	}

	var category, image string
	addCmd := &cobra.Command{
		Use:   "add <project-id> <name>",
		Short: "Submit a material for client approval",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			m, err := app.Projects.AddMaterial(ctx, id, strings.Join(args[1:], " "), category, image)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Submitted %s [%s]\n", m.Name, m.ID[:8])
			return nil
		},
	}
	addCmd.Flags().StringVar(&category, "category", "", "Material category, e.g. flooring")
	addCmd.Flags().StringVar(&image, "image", "", "Sample photo URL")

	approveCmd := &cobra.Command{
		Use:   "approve <material-id>",
		Short: "Approve a pending material",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Projects.ReviewMaterial(cmd.Context(), args[0], true); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Material approved.")
			return nil
		},
	}

	rejectCmd := &cobra.Command{
		Use:   "reject <material-id>",
		Short: "Reject a pending material",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Projects.ReviewMaterial(cmd.Context(), args[0], false); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Material rejected.")
			return nil
		},
	}

	cmd.AddCommand(addCmd, approveCmd, rejectCmd)
	return cmd
}

func newProjectShareCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "share <id>",
		Short: "Create a signed client-portal link for a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.ShareLinks == nil {
				return fmt.Errorf("portal links are not configured: set SPAZIO_PORTAL_SECRET")
			}
			ctx := cmd.Context()
			id, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			token, err := app.ShareLinks.Issue(id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "http://localhost%s/portal/%s\n", app.PortalAddr, token)
			return nil
		},
	}
}

func newProjectRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a project and its collections",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Projects.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Project deleted.")
			return nil
		},
	}
}
