package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tr013432-design/spazio/internal/cli/formatter"
)

func newAICmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ai",
		Short: "AI-assisted studio tools",
		Long: `AI-assisted studio tools. All subcommands need SPAZIO_AI_API_KEY;
without it they fail with a clear error and the rest of the CLI keeps
working.`,
	}

	cmd.AddCommand(
		newAIBriefingCmd(app),
		newAIFollowUpCmd(app),
		newAIProposalCmd(app),
		newAINormsCmd(app),
		newAIMoodboardCmd(app),
	)

	return cmd
}

func requireStudio(app *App) error {
	if app.Studio == nil || !app.Studio.Enabled() {
		return fmt.Errorf("AI features are disabled: set SPAZIO_AI_API_KEY")
	}
	return nil
}

func newAIBriefingCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "briefing <lead-id>",
		Short: "Analyze a lead's briefing notes into a taste profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireStudio(app); err != nil {
				return err
			}
			ctx := cmd.Context()
			id, err := resolveLeadID(ctx, app, args[0])
			if err != nil {
				return err
			}
			lead, err := app.Leads.GetByID(ctx, id)
			if err != nil {
				return err
			}
			if strings.TrimSpace(lead.Notes) == "" {
				return fmt.Errorf("lead %s has no briefing notes", lead.DisplayID())
			}

			analysis, err := app.Studio.AnalyzeBriefing(ctx, lead.Notes)
			if err != nil {
				return err
			}

			var b strings.Builder
			b.WriteString(formatter.RenderKeyValues([][2]string{
				{"Styles", strings.Join(analysis.Styles, ", ")},
				{"Materials", strings.Join(analysis.Materials, ", ")},
			}))
			b.WriteString("\n" + analysis.ProfileSummary + "\n")
			if analysis.Fallback {
				b.WriteString("\n" + formatter.Dim("Keyword-based summary; the model reply could not be parsed."))
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderBox("Briefing", b.String()))
			return nil
		},
	}
}

func newAIFollowUpCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "followup <lead-id>",
		Short: "Draft a follow-up message for a lead",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireStudio(app); err != nil {
				return err
			}
			ctx := cmd.Context()
			id, err := resolveLeadID(ctx, app, args[0])
			if err != nil {
				return err
			}
			lead, err := app.Leads.GetByID(ctx, id)
			if err != nil {
				return err
			}

			msg, err := app.Studio.FollowUpMessage(ctx, lead.Name, lead.Stage)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			if digits := lead.WhatsAppDigits(); digits != "" {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("wa.me/"+digits))
			}
			return nil
		},
	}
}

func newAIProposalCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "proposal <lead-id>",
		Short: "Draft a commercial proposal from the lead's notes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireStudio(app); err != nil {
				return err
			}
			ctx := cmd.Context()
			id, err := resolveLeadID(ctx, app, args[0])
			if err != nil {
				return err
			}
			lead, err := app.Leads.GetByID(ctx, id)
			if err != nil {
				return err
			}

			draft, err := app.Studio.ProposalDraft(ctx, lead.Name, lead.Notes, lead.Budget)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), draft)
			return nil
		},
	}
}

func newAINormsCmd(app *App) *cobra.Command {
	var projectID string

	cmd := &cobra.Command{
		Use:   "norms <question>",
		Short: "Ask a building-code question",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireStudio(app); err != nil {
				return err
			}
			ctx := cmd.Context()

			projectContext := "general practice in Brazil"
			if projectID != "" {
				id, err := resolveProjectID(ctx, app, projectID)
				if err != nil {
					return err
				}
				p, err := app.Projects.GetByID(ctx, id)
				if err != nil {
					return err
				}
				projectContext = fmt.Sprintf("%s, stage %s",
					p.Title, formatter.ProjectStageLabel(p.Stage))
			}

			answer, err := app.Studio.AnswerRegulatory(ctx, projectContext, strings.Join(args, " "))
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), answer.Answer)
			if len(answer.References) > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim(strings.Join(answer.References, ", ")))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&projectID, "project", "", "Project whose context frames the question")
	return cmd
}

func newAIMoodboardCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "moodboard <prompt>",
		Short: "Generate a moodboard image and save it to a file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireStudio(app); err != nil {
				return err
			}

			img, err := app.Studio.Moodboard(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}

			path := out
			if path == "" {
				path = "moodboard.png"
			}
			if err := os.WriteFile(path, img.Data, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s (%s, %d bytes)\n", path, img.MIMEType, len(img.Data))
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Output file (default moodboard.png)")
	return cmd
}
