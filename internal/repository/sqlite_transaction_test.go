package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tr013432-design/spazio/internal/domain"
	"github.com/tr013432-design/spazio/internal/testutil"
)

func TestTransactionRepo_CreateAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	repo := NewSQLiteTransactionRepo(db)

	txn := testutil.NewTestTransaction("Concept phase invoice", 20_000_00,
		testutil.WithTxnDate(time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC)),
		testutil.WithTxnProject("proj-1"),
	)
	require.NoError(t, repo.Create(ctx, txn))

	got, err := repo.GetByID(ctx, txn.ID)
	require.NoError(t, err)
	assert.Equal(t, "Concept phase invoice", got.Description)
	assert.Equal(t, int64(20_000_00), got.Amount)
	assert.Equal(t, domain.TxnIncome, got.Type)
	assert.Equal(t, domain.TxnPaid, got.Status)
	assert.Equal(t, "proj-1", got.ProjectID)
	assert.Equal(t, "2026-04-02", got.Date.Format("2006-01-02"))
}

func TestTransactionRepo_GetByID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTransactionRepo(db)

	_, err := repo.GetByID(context.Background(), "no-such-txn")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTransactionRepo_ListByProject(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	repo := NewSQLiteTransactionRepo(db)

	require.NoError(t, repo.Create(ctx, testutil.NewTestTransaction("a", 100, testutil.WithTxnProject("p1"))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestTransaction("b", 200, testutil.WithTxnProject("p1"), testutil.WithTxnType(domain.TxnExpense))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestTransaction("c", 300, testutil.WithTxnProject("p2"))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestTransaction("d", 400)))

	forP1, err := repo.ListByProject(ctx, "p1")
	require.NoError(t, err)
	assert.Len(t, forP1, 2)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestTransactionRepo_ListOrderedByDateDesc(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	repo := NewSQLiteTransactionRepo(db)

	old := testutil.NewTestTransaction("old", 100, testutil.WithTxnDate(time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)))
	new_ := testutil.NewTestTransaction("new", 100, testutil.WithTxnDate(time.Date(2026, 6, 5, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, repo.Create(ctx, old))
	require.NoError(t, repo.Create(ctx, new_))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "new", all[0].Description)
	assert.Equal(t, "old", all[1].Description)
}
