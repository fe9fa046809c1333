package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/tr013432-design/spazio/internal/domain"
	"github.com/tr013432-design/spazio/internal/insights"
	"github.com/tr013432-design/spazio/internal/service"
)

const distributionBarWidth = 12

// FormatStatus formats the studio snapshot into the CLI dashboard.
func FormatStatus(snap *service.StatusSnapshot) string {
	var b strings.Builder

	b.WriteString(RenderKeyValues([][2]string{
		{"Active projects", Bold(fmt.Sprintf("%d", snap.ActiveProjects))},
		{"Leads on board", Bold(fmt.Sprintf("%d", snap.NewLeads))},
		{"Realized income", StyleGreen.Render(FormatMoney(snap.RealizedIncome))},
		{"Pending expenses", StyleRed.Render(FormatMoney(snap.PendingExpenses))},
		{"Receivable", StyleYellow.Render(FormatMoney(snap.Receivable))},
		{"RRT pending", fmt.Sprintf("%d", snap.RRTPending)},
	}))

	b.WriteString("\n" + Header("Pipeline") + "\n")
	b.WriteString(renderDistribution(snap.LeadDistribution, leadBucketLabel))

	b.WriteString("\n" + Header("Projects") + "\n")
	b.WriteString(renderDistribution(snap.ProjDistribution, projectBucketLabel))

	if len(snap.OverdueLeads) > 0 {
		b.WriteString("\n" + Header("Overdue follow-ups") + "\n")
		for _, l := range snap.OverdueLeads {
			due := Dim("--")
			if l.NextActionDate != nil {
				due = StyleRed.Render(l.NextActionDate.Format("2006-01-02"))
			}
			b.WriteString(fmt.Sprintf("  %s %s  %s\n", TruncID(l.ID), Bold(l.Name), due))
		}
	}

	if len(snap.Cashflow) > 0 {
		b.WriteString("\n" + Header("Cashflow") + "\n")
		b.WriteString(FormatCashflow(snap.Cashflow))
	}

	return RenderBox("Studio", b.String())
}

func renderDistribution(dist []insights.StageCount, label func(insights.StageCount) string) string {
	maxCount := 0
	for _, d := range dist {
		if d.Count > maxCount {
			maxCount = d.Count
		}
	}

	var b strings.Builder
	for _, d := range dist {
		bar := ""
		if maxCount > 0 {
			filled := d.Count * distributionBarWidth / maxCount
			bar = StyleBlue.Render(strings.Repeat("█", filled)) +
				Dim(strings.Repeat("░", distributionBarWidth-filled))
		} else {
			bar = Dim(strings.Repeat("░", distributionBarWidth))
		}
		b.WriteString(fmt.Sprintf("  %s %s %2d\n", PadRight(label(d), 16), bar, d.Count))
	}
	return b.String()
}

func leadBucketLabel(d insights.StageCount) string {
	return LeadStageLabel(domain.LeadStage(d.Stage))
}

func projectBucketLabel(d insights.StageCount) string {
	return ProjectStageLabel(domain.ProjectStage(d.Stage))
}

// FormatCashflow renders the monthly realized income/expense series.
func FormatCashflow(flows []insights.MonthFlow) string {
	rows := make([][]string, 0, len(flows))
	for _, f := range flows {
		rows = append(rows, []string{
			f.Month.Format("Jan 2006"),
			StyleGreen.Render(FormatMoney(f.Income)),
			StyleRed.Render(FormatMoney(f.Expense)),
			FormatMoney(f.Income - f.Expense),
		})
	}
	return RenderTable([]string{"MONTH", "IN", "OUT", "NET"}, rows)
}

// FormatFinanceSummary renders the ledger aggregates.
func FormatFinanceSummary(sum *service.FinanceSummary) string {
	var b strings.Builder

	b.WriteString(RenderKeyValues([][2]string{
		{"Realized income", StyleGreen.Render(FormatMoney(sum.RealizedIncome))},
		{"Realized expenses", StyleRed.Render(FormatMoney(sum.RealizedExpenses))},
		{"Balance", Bold(FormatMoney(sum.RealizedBalance))},
		{"Pending expenses", StyleYellow.Render(FormatMoney(sum.PendingExpenses))},
	}))

	if len(sum.Cashflow) > 0 {
		b.WriteString("\n")
		b.WriteString(FormatCashflow(sum.Cashflow))
	}

	return RenderBox("Finance", b.String())
}

// FormatLeadList renders the active board as a flat table.
func FormatLeadList(leads []*domain.Lead, now time.Time) string {
	rows := make([][]string, 0, len(leads))
	for _, l := range leads {
		budget := Dim("--")
		if l.Budget > 0 {
			budget = FormatMoney(l.Budget)
		}
		rows = append(rows, []string{
			TruncID(l.ID),
			Bold(l.Name),
			LeadStageLabel(l.Stage),
			TemperatureBadge(l.Temperature),
			budget,
			FollowUpDate(l.NextActionDate, now),
		})
	}
	return RenderTable([]string{"ID", "NAME", "STAGE", "TEMP", "BUDGET", "NEXT ACTION"}, rows)
}

// FormatProjectList renders projects with their compact stepper.
func FormatProjectList(projects []*domain.Project) string {
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, []string{
			TruncID(p.ID),
			Bold(p.Title),
			ShortStepper(p.Stage),
			RenderProgress(p.Progress, 8),
			FormatMoney(p.PaidValue) + Dim(" / ") + FormatMoney(p.TotalValue),
			RRTBadge(p.RRTStatus, p.RRTNumber),
		})
	}
	return RenderTable([]string{"ID", "TITLE", "STAGE", "PROGRESS", "PAID / TOTAL", "RRT"}, rows)
}
