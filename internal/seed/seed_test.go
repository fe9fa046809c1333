package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tr013432-design/spazio/internal/repository"
	"github.com/tr013432-design/spazio/internal/testutil"
)

func TestApply_EmptyDatabase(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	seeded, err := Apply(ctx, db)
	require.NoError(t, err)
	assert.True(t, seeded)

	leads, err := repository.NewSQLiteLeadRepo(db).ListActive(ctx)
	require.NoError(t, err)
	assert.Len(t, leads, 2)

	projects, err := repository.NewSQLiteProjectRepo(db).List(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 2)

	txns, err := repository.NewSQLiteTransactionRepo(db).List(ctx)
	require.NoError(t, err)
	assert.Len(t, txns, 4)
}

func TestApply_SkipsNonEmptyDatabase(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	leadRepo := repository.NewSQLiteLeadRepo(db)
	require.NoError(t, leadRepo.Create(ctx, testutil.NewTestLead("Existing")))

	seeded, err := Apply(ctx, db)
	require.NoError(t, err)
	assert.False(t, seeded)

	leads, err := leadRepo.ListActive(ctx)
	require.NoError(t, err)
	assert.Len(t, leads, 1)
}

func TestSeedDataset_Valid(t *testing.T) {
	for _, l := range Leads() {
		assert.NoError(t, l.Validate(), l.Name)
	}
	for _, p := range Projects() {
		assert.NoError(t, p.Validate(), p.Title)
	}
	for _, txn := range Transactions() {
		assert.NoError(t, txn.Validate(), txn.Description)
	}
}
