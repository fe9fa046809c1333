// Package insights computes derived views over entity snapshots. Everything
// here is pure and recomputed on demand; nothing is cached or persisted.
package insights

import (
	"math"
	"sort"
	"time"

	"github.com/tr013432-design/spazio/internal/domain"
)

// StageCount is one bucket of a stage distribution.
type StageCount struct {
	Stage string
	Count int
}

// LeadStageDistribution returns one bucket per pipeline stage in pipeline
// order. Zero-count stages are included so chart axes stay stable. Lost leads
// are not counted anywhere.
func LeadStageDistribution(leads []*domain.Lead) []StageCount {
	stages := domain.LeadStages()
	out := make([]StageCount, len(stages))
	for i, s := range stages {
		out[i] = StageCount{Stage: string(s)}
	}
	for _, l := range leads {
		if idx := domain.LeadStageIndex(l.Stage); idx >= 0 {
			out[idx].Count++
		}
	}
	return out
}

// ProjectStageDistribution returns one bucket per lifecycle stage in order,
// zero counts included.
func ProjectStageDistribution(projects []*domain.Project) []StageCount {
	stages := domain.ProjectStages()
	out := make([]StageCount, len(stages))
	for i, s := range stages {
		out[i] = StageCount{Stage: string(s)}
	}
	for _, p := range projects {
		if idx := domain.ProjectStageIndex(p.Stage); idx >= 0 {
			out[idx].Count++
		}
	}
	return out
}

// IsOverdue reports whether date's calendar day is strictly before today's
// calendar day. Time of day is ignored; a nil date is never overdue.
func IsOverdue(date *time.Time, today time.Time) bool {
	if date == nil {
		return false
	}
	y1, m1, d1 := date.Date()
	y2, m2, d2 := today.Date()
	a := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	b := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)
	return a.Before(b)
}

// MarginPercent returns round(100 * (total - costs) / total). The margin is
// undefined when total is zero; ok is false and callers must guard.
func MarginPercent(total, costs int64) (pct int, ok bool) {
	if total == 0 {
		return 0, false
	}
	return int(math.Round(100 * float64(total-costs) / float64(total))), true
}

// PaidPercent returns 100 * paid / total clamped to [0,100]. Zero total maps
// to zero.
func PaidPercent(paid, total int64) int {
	if total <= 0 {
		return 0
	}
	pct := int(math.Round(100 * float64(paid) / float64(total)))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// MonthFlow is one month's realized cash movement for the dashboard chart.
type MonthFlow struct {
	Month   time.Time
	Income  int64
	Expense int64
}

// MonthlyCashflow buckets realized (paid) transactions by calendar month,
// sorted ascending. Pending entries are excluded.
func MonthlyCashflow(txns []*domain.Transaction) []MonthFlow {
	buckets := make(map[time.Time]*MonthFlow)
	for _, t := range txns {
		if !t.Realized() {
			continue
		}
		m := t.Month()
		b, ok := buckets[m]
		if !ok {
			b = &MonthFlow{Month: m}
			buckets[m] = b
		}
		if t.Type == domain.TxnIncome {
			b.Income += t.Amount
		} else {
			b.Expense += t.Amount
		}
	}
	out := make([]MonthFlow, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month.Before(out[j].Month) })
	return out
}

// RealizedIncome sums paid income entries.
func RealizedIncome(txns []*domain.Transaction) int64 {
	var sum int64
	for _, t := range txns {
		if t.Type == domain.TxnIncome && t.Realized() {
			sum += t.Amount
		}
	}
	return sum
}

// PendingExpenses sums expense entries not yet settled.
func PendingExpenses(txns []*domain.Transaction) int64 {
	var sum int64
	for _, t := range txns {
		if t.Type == domain.TxnExpense && !t.Realized() {
			sum += t.Amount
		}
	}
	return sum
}

// ReceivableBalance sums the outstanding contract balance of active projects.
// Completed projects are excluded.
func ReceivableBalance(projects []*domain.Project) int64 {
	var sum int64
	for _, p := range projects {
		if p.Stage == domain.StageCompleted {
			continue
		}
		sum += p.Outstanding()
	}
	return sum
}
