package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tr013432-design/spazio/internal/cli/formatter"
	"github.com/tr013432-design/spazio/internal/domain"
)

func newLeadCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lead",
		Short: "Manage the commercial pipeline",
	}

	cmd.AddCommand(
		newLeadAddCmd(app),
		newLeadListCmd(app),
		newLeadShowCmd(app),
		newLeadStageCmd(app),
		newLeadLoseCmd(app),
		newLeadConvertCmd(app),
		newLeadTaskCmd(app),
		newLeadRemoveCmd(app),
	)

	return cmd
}

func newLeadAddCmd(app *App) *cobra.Command {
	var name, email, phone, source, notes, temperature string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a lead to the board",
		RunE: func(cmd *cobra.Command, args []string) error {
			budget, err := moneyFlagCents(cmd.Flags(), "budget")
			if err != nil {
				return err
			}
			nextAction, err := dateFlag(cmd.Flags(), "next-action")
			if err != nil {
				return err
			}

			l := &domain.Lead{
				Name:           name,
				Email:          email,
				Phone:          phone,
				Source:         source,
				Notes:          notes,
				Budget:         budget,
				Temperature:    domain.LeadTemperature(temperature),
				NextActionDate: nextAction,
			}

			if err := app.Leads.Create(cmd.Context(), l); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created lead %s [%s]\n", l.Name, l.DisplayID())
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Client name")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&source, "source", "", "How the lead found the studio")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form briefing notes")
	cmd.Flags().String("budget", "", "Discussed budget, e.g. 150000 or 150000,00")
	cmd.Flags().StringVar(&temperature, "temp", "", "hot, warm or cold")
	cmd.Flags().String("next-action", "", "Next follow-up date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newLeadListCmd(app *App) *cobra.Command {
	var lost bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List leads on the active board",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if lost {
				leads, err := app.Leads.ListLost(ctx)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), formatLostLeads(leads))
				return nil
			}

			leads, err := app.Leads.ListActive(ctx)
			if err != nil {
				return err
			}
			if len(leads) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No leads on the board."))
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatLeadList(leads, time.Now()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&lost, "lost", false, "Show lost leads instead of the active board")

	return cmd
}

func formatLostLeads(leads []*domain.Lead) string {
	if len(leads) == 0 {
		return formatter.Dim("No lost leads.") + "\n"
	}
	rows := make([][]string, 0, len(leads))
	for _, l := range leads {
		reason := ""
		if l.LossReason != nil {
			reason = formatter.LossReasonLabel(*l.LossReason)
		}
		lostAt := ""
		if l.LostAt != nil {
			lostAt = l.LostAt.Format("2006-01-02")
		}
		rows = append(rows, []string{
			formatter.TruncID(l.ID),
			formatter.Bold(l.Name),
			reason,
			formatter.Dim(lostAt),
		})
	}
	return formatter.RenderTable([]string{"ID", "NAME", "REASON", "LOST"}, rows)
}

func newLeadShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one lead with its tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveLeadID(ctx, app, args[0])
			if err != nil {
				return err
			}
			l, err := app.Leads.GetByID(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatLeadDetail(l))
			return nil
		},
	}
}

func formatLeadDetail(l *domain.Lead) string {
	budget := "--"
	if l.Budget > 0 {
		budget = formatter.FormatMoney(l.Budget)
	}

	pairs := [][2]string{
		{"Name", formatter.Bold(l.Name)},
		{"Stage", formatter.LeadStageLabel(l.Stage)},
		{"Temperature", formatter.TemperatureBadge(l.Temperature)},
		{"Budget", budget},
		{"Source", l.Source},
	}
	if l.Email != "" {
		pairs = append(pairs, [2]string{"Email", l.Email})
	}
	if l.Phone != "" {
		pairs = append(pairs, [2]string{"Phone", l.Phone + formatter.Dim("  wa.me/"+l.WhatsAppDigits())})
	}
	if l.NextActionDate != nil {
		pairs = append(pairs, [2]string{"Next action", formatter.FollowUpDate(l.NextActionDate, time.Now())})
	}
	if l.Notes != "" {
		pairs = append(pairs, [2]string{"Notes", l.Notes})
	}

	var b strings.Builder
	b.WriteString(formatter.RenderKeyValues(pairs))

	if len(l.Tasks) > 0 {
		b.WriteString("\n" + formatter.Header("Tasks") + "\n")
		for _, t := range l.Tasks {
			box := formatter.Dim("☐")
			if t.Completed {
				box = formatter.StyleGreen.Render("☑")
			}
			b.WriteString(fmt.Sprintf("  %s %s %s\n", box, t.Description, formatter.TruncID(t.ID)))
		}
	}

	return formatter.RenderBox(l.DisplayID(), b.String())
}

func newLeadStageCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stage <id> <stage>",
		Short: "Move a lead to another pipeline stage",
		Long: `Move a lead to another pipeline stage. Stages: prospection,
technical_visit, briefing, concept, signed. Use "lead lose" for the
lost state.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveLeadID(ctx, app, args[0])
			if err != nil {
				return err
			}
			stage := domain.LeadStage(strings.ToLower(args[1]))
			if err := app.Leads.SetStage(ctx, id, stage); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Moved to %s\n", formatter.LeadStageLabel(stage))
			return nil
		},
	}
}

func newLeadLoseCmd(app *App) *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "lose <id>",
		Short: "Mark a lead as lost with a reason",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveLeadID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Leads.MarkLost(ctx, id, domain.LossReason(reason)); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Lead marked lost.")
			return nil
		},
	}

	cmd.Flags().StringVar(&reason, "reason", "", "price_too_high, competitor, withdrawn or no_contact")
	_ = cmd.MarkFlagRequired("reason")

	return cmd
}

func newLeadConvertCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <id>",
		Short: "Convert a signed lead into a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveLeadID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Leads.ConvertToProject(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created project %s [%s]\n", p.Title, p.DisplayID())
			return nil
		},
	}
}

func newLeadTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage a lead's follow-up tasks",
	}

	addCmd := &cobra.Command{
		Use:   "add <lead-id> <description>",
		Short: "Add a follow-up task",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveLeadID(ctx, app, args[0])
			if err != nil {
				return err
			}
			task, err := app.Leads.AddTask(ctx, id, strings.Join(args[1:], " "))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added task %s\n", task.ID[:8])
			return nil
		},
	}

	doneCmd := &cobra.Command{
		Use:   "done <task-id>",
		Short: "Mark a task as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Leads.SetTaskCompleted(cmd.Context(), args[0], true); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Task completed.")
			return nil
		},
	}

	rmCmd := &cobra.Command{
		Use:   "rm <task-id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Leads.DeleteTask(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Task deleted.")
			return nil
		},
	}

	cmd.AddCommand(addCmd, doneCmd, rmCmd)
	return cmd
}

func newLeadRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a lead and its tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveLeadID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Leads.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Lead deleted.")
			return nil
		},
	}
}
