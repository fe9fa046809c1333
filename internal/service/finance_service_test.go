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

func newFinanceFixture(t *testing.T) FinanceService {
	t.Helper()
	db := testutil.NewTestDB(t)
	return NewFinanceService(repository.NewSQLiteTransactionRepo(db))
}

func TestFinanceService_Record_FillsDefaults(t *testing.T) {
	svc := newFinanceFixture(t)
	ctx := context.Background()

	txn := &domain.Transaction{
		Type:        domain.TxnExpense,
		Category:    "software",
		Amount:      120_00,
		Description: "CAD license",
	}
	require.NoError(t, svc.Record(ctx, txn))

	assert.NotEmpty(t, txn.ID)
	assert.Equal(t, domain.TxnPending, txn.Status)
	assert.False(t, txn.Date.IsZero())
}

func TestFinanceService_Record_RejectsInvalid(t *testing.T) {
	svc := newFinanceFixture(t)
	ctx := context.Background()

	err := svc.Record(ctx, &domain.Transaction{Type: domain.TxnIncome, Amount: 0, Description: "zero"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	err = svc.Record(ctx, &domain.Transaction{Type: "transfer", Amount: 100, Description: "odd type"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestFinanceService_Summary(t *testing.T) {
	svc := newFinanceFixture(t)
	ctx := context.Background()

	jan := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)

	require.NoError(t, svc.Record(ctx, testutil.NewTestTransaction("invoice", 50_000_00, testutil.WithTxnDate(jan))))
	require.NoError(t, svc.Record(ctx, testutil.NewTestTransaction("materials", 12_000_00,
		testutil.WithTxnType(domain.TxnExpense), testutil.WithTxnDate(feb))))
	require.NoError(t, svc.Record(ctx, testutil.NewTestTransaction("rent", 3_000_00,
		testutil.WithTxnType(domain.TxnExpense), testutil.WithTxnStatus(domain.TxnPending), testutil.WithTxnDate(feb))))

	sum, err := svc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(50_000_00), sum.RealizedIncome)
	assert.Equal(t, int64(12_000_00), sum.RealizedExpenses)
	assert.Equal(t, int64(38_000_00), sum.RealizedBalance)
	assert.Equal(t, int64(3_000_00), sum.PendingExpenses)

	require.Len(t, sum.Cashflow, 2)
	assert.Equal(t, int64(50_000_00), sum.Cashflow[0].Income)
	assert.Equal(t, int64(12_000_00), sum.Cashflow[1].Expense)
}
