package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tr013432-design/spazio/internal/cli/formatter"
	"github.com/tr013432-design/spazio/internal/domain"
)

func newFinanceCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "finance",
		Short: "Record and inspect the ledger",
	}

	cmd.AddCommand(
		newFinanceAddCmd(app),
		newFinanceListCmd(app),
		newFinanceSummaryCmd(app),
	)

	return cmd
}

func newFinanceAddCmd(app *App) *cobra.Command {
	var txnType, category, description, date, projectID string
	var pending bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a ledger entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := moneyFlagCents(cmd.Flags(), "amount")
			if err != nil {
				return err
			}

			txn := &domain.Transaction{
				Type:        domain.TransactionType(txnType),
				Category:    category,
				Amount:      amount,
				Description: description,
			}
			if pending {
				txn.Status = domain.TxnPending
			} else {
				txn.Status = domain.TxnPaid
			}
			if date != "" {
				d, err := time.Parse("2006-01-02", date)
				if err != nil {
					return fmt.Errorf("invalid date %q: %w", date, err)
				}
				txn.Date = d
			}
			if projectID != "" {
				resolved, err := resolveProjectID(cmd.Context(), app, projectID)
				if err != nil {
					return err
				}
				txn.ProjectID = resolved
			}

			if err := app.Finance.Record(cmd.Context(), txn); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s %s\n", formatter.TxnPill(txn), txn.Description)
			return nil
		},
	}

	cmd.Flags().StringVar(&txnType, "type", "expense", "income or expense")
	cmd.Flags().String("amount", "", "Amount, e.g. 1500 or 1500,00")
	cmd.Flags().StringVar(&category, "category", "general", "Ledger category")
	cmd.Flags().StringVar(&description, "desc", "", "Entry description")
	cmd.Flags().StringVar(&date, "date", "", "Entry date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&projectID, "project", "", "Link the entry to a project")
	cmd.Flags().BoolVar(&pending, "pending", false, "Record as pending instead of paid")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("desc")

	return cmd
}

func newFinanceListCmd(app *App) *cobra.Command {
	var projectID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List ledger entries, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var (
				txns []*domain.Transaction
				err  error
			)
			if projectID != "" {
				resolved, rerr := resolveProjectID(ctx, app, projectID)
				if rerr != nil {
					return rerr
				}
				txns, err = app.Finance.ListByProject(ctx, resolved)
			} else {
				txns, err = app.Finance.List(ctx)
			}
			if err != nil {
				return err
			}
			if len(txns) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Ledger is empty."))
				return nil
			}

			rows := make([][]string, 0, len(txns))
			for _, t := range txns {
				status := formatter.StyleGreen.Render("paid")
				if t.Status == domain.TxnPending {
					status = formatter.StyleYellow.Render("pending")
				}
				rows = append(rows, []string{
					t.Date.Format("2006-01-02"),
					formatter.TxnPill(t),
					t.Category,
					t.Description,
					status,
				})
			}
			fmt.Fprint(cmd.OutOrStdout(),
				formatter.RenderTable([]string{"DATE", "AMOUNT", "CATEGORY", "DESCRIPTION", "STATUS"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&projectID, "project", "", "Only entries linked to this project")
	return cmd
}

func newFinanceSummaryCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show realized totals and monthly cashflow",
		RunE: func(cmd *cobra.Command, args []string) error {
			sum, err := app.Finance.Summary(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatFinanceSummary(sum))
			return nil
		},
	}
}
