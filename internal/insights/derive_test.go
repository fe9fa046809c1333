package insights

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tr013432-design/spazio/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestLeadStageDistribution_CompleteAndOrdered(t *testing.T) {
	leads := []*domain.Lead{
		{Stage: domain.LeadProspection},
		{Stage: domain.LeadProspection},
		{Stage: domain.LeadBriefing},
		{Stage: domain.LeadLost}, // must not be counted anywhere
	}

	dist := LeadStageDistribution(leads)
	require.Len(t, dist, 5)
	assert.Equal(t, "prospection", dist[0].Stage)
	assert.Equal(t, 2, dist[0].Count)
	assert.Equal(t, "technical_visit", dist[1].Stage)
	assert.Equal(t, 0, dist[1].Count)
	assert.Equal(t, 1, dist[2].Count)

	total := 0
	for _, b := range dist {
		total += b.Count
	}
	assert.Equal(t, 3, total, "lost lead excluded from the board")
}

func TestLeadStageDistribution_EmptyList(t *testing.T) {
	dist := LeadStageDistribution(nil)
	require.Len(t, dist, 5)
	for i, s := range domain.LeadStages() {
		assert.Equal(t, string(s), dist[i].Stage)
		assert.Zero(t, dist[i].Count)
	}
}

func TestIsOverdue(t *testing.T) {
	today := date(2023, time.October, 25)

	yesterday := date(2023, time.October, 24)
	assert.True(t, IsOverdue(&yesterday, today))

	// Same calendar day with a later wall clock is not overdue.
	sameDay := time.Date(2023, time.October, 25, 23, 59, 0, 0, time.UTC)
	assert.False(t, IsOverdue(&sameDay, today))

	tomorrow := date(2023, time.October, 26)
	assert.False(t, IsOverdue(&tomorrow, today))

	assert.False(t, IsOverdue(nil, today))
}

func TestMarginPercent(t *testing.T) {
	pct, ok := MarginPercent(100, 25)
	require.True(t, ok)
	assert.Equal(t, 75, pct)

	pct, ok = MarginPercent(100, 0)
	require.True(t, ok)
	assert.Equal(t, 100, pct)

	_, ok = MarginPercent(0, 0)
	assert.False(t, ok, "zero contract value has no defined margin")
}

func TestPaidPercent_Clamped(t *testing.T) {
	assert.Equal(t, 75, PaidPercent(75, 100))
	assert.Equal(t, 100, PaidPercent(150, 100))
	assert.Equal(t, 0, PaidPercent(10, 0))
}

func TestMonthlyCashflow(t *testing.T) {
	txns := []*domain.Transaction{
		{Type: domain.TxnIncome, Amount: 850_000, Status: domain.TxnPaid, Date: date(2023, time.November, 1)},
		{Type: domain.TxnExpense, Amount: 50_000, Status: domain.TxnPaid, Date: date(2023, time.November, 2)},
		{Type: domain.TxnExpense, Amount: 25_000, Status: domain.TxnPending, Date: date(2023, time.November, 5)},
		{Type: domain.TxnIncome, Amount: 120_000, Status: domain.TxnPaid, Date: date(2023, time.December, 10)},
	}

	flow := MonthlyCashflow(txns)
	require.Len(t, flow, 2)
	assert.Equal(t, date(2023, time.November, 1), flow[0].Month)
	assert.Equal(t, int64(850_000), flow[0].Income)
	assert.Equal(t, int64(50_000), flow[0].Expense, "pending expense excluded")
	assert.Equal(t, int64(120_000), flow[1].Income)
}

func TestCashTotals(t *testing.T) {
	txns := []*domain.Transaction{
		{Type: domain.TxnIncome, Amount: 850_000, Status: domain.TxnPaid},
		{Type: domain.TxnIncome, Amount: 120_000, Status: domain.TxnPending},
		{Type: domain.TxnExpense, Amount: 25_000, Status: domain.TxnPending},
	}
	assert.Equal(t, int64(850_000), RealizedIncome(txns))
	assert.Equal(t, int64(25_000), PendingExpenses(txns))
}

func TestReceivableBalance_SkipsCompleted(t *testing.T) {
	projects := []*domain.Project{
		{Stage: domain.StageConstruction, TotalValue: 1_500_000, PaidValue: 1_125_000},
		{Stage: domain.StageCompleted, TotalValue: 4_500_000, PaidValue: 1_350_000},
	}
	assert.Equal(t, int64(375_000), ReceivableBalance(projects))
}
