package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tr013432-design/spazio/internal/domain"
	"github.com/tr013432-design/spazio/internal/repository"
	"github.com/tr013432-design/spazio/internal/testutil"
)

func TestStatusService_Snapshot(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	leadRepo := repository.NewSQLiteLeadRepo(db)
	projRepo := repository.NewSQLiteProjectRepo(db)
	txnRepo := repository.NewSQLiteTransactionRepo(db)
	svc := NewStatusService(leadRepo, projRepo, txnRepo)

	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	overdueDate := now.AddDate(0, 0, -3)

	require.NoError(t, leadRepo.Create(ctx, testutil.NewTestLead("Fresh")))
	require.NoError(t, leadRepo.Create(ctx, testutil.NewTestLead("Late", testutil.WithNextAction(overdueDate))))
	lost := testutil.NewTestLead("Gone")
	require.NoError(t, leadRepo.Create(ctx, lost))
	require.NoError(t, leadRepo.MarkLost(ctx, lost.ID, domain.LossNoContact, now))

	require.NoError(t, projRepo.Create(ctx, testutil.NewTestProject("Active one")))
	require.NoError(t, projRepo.Create(ctx, testutil.NewTestProject("Done one",
		testutil.WithProjectStage(domain.StageCompleted),
		testutil.WithRRT(domain.RRTPaid, "RRT-2025-0001"),
		testutil.WithFinancials(50_000_00, 50_000_00, 10_000_00))))

	require.NoError(t, txnRepo.Create(ctx, testutil.NewTestTransaction("invoice", 20_000_00)))
	require.NoError(t, txnRepo.Create(ctx, testutil.NewTestTransaction("tax", 5_000_00,
		testutil.WithTxnType(domain.TxnExpense), testutil.WithTxnStatus(domain.TxnPending))))

	snap, err := svc.Snapshot(ctx, now)
	require.NoError(t, err)

	assert.Equal(t, 2, snap.NewLeads, "lost leads stay off the dashboard")
	assert.Equal(t, 1, snap.ActiveProjects)
	assert.Equal(t, 1, snap.RRTPending)
	assert.Equal(t, int64(20_000_00), snap.RealizedIncome)
	assert.Equal(t, int64(5_000_00), snap.PendingExpenses)

	require.Len(t, snap.OverdueLeads, 1)
	assert.Equal(t, "Late", snap.OverdueLeads[0].Name)

	// One bucket per pipeline stage, in order, zero counts included.
	require.Len(t, snap.LeadDistribution, len(domain.LeadStages()))
	total := 0
	for _, b := range snap.LeadDistribution {
		total += b.Count
	}
	assert.Equal(t, 2, total)

	// Receivable counts only projects still in flight.
	assert.Equal(t, int64(80_000_00), snap.Receivable)
}
