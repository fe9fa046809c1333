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

func TestLeadRepo_CreateAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	repo := NewSQLiteLeadRepo(db)

	next := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	lead := testutil.NewTestLead("Marta Bianchi",
		testutil.WithLeadStage(domain.LeadBriefing),
		testutil.WithTemperature(domain.TempHot),
		testutil.WithNextAction(next),
		testutil.WithBudget(42_000_00),
		testutil.WithTasks("Send moodboard", "Book site visit"),
	)
	require.NoError(t, repo.Create(ctx, lead))

	got, err := repo.GetByID(ctx, lead.ID)
	require.NoError(t, err)
	assert.Equal(t, "Marta Bianchi", got.Name)
	assert.Equal(t, domain.LeadBriefing, got.Stage)
	assert.Equal(t, domain.TempHot, got.Temperature)
	assert.Equal(t, int64(42_000_00), got.Budget)
	require.NotNil(t, got.NextActionDate)
	assert.Equal(t, "2026-03-15", got.NextActionDate.Format("2006-01-02"))
	require.Len(t, got.Tasks, 2)
	assert.Equal(t, "Send moodboard", got.Tasks[0].Description)
	assert.False(t, got.Tasks[0].Completed)
}

func TestLeadRepo_GetByID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteLeadRepo(db)

	_, err := repo.GetByID(context.Background(), "no-such-lead")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLeadRepo_MarkLost_LeavesActiveBoard(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	repo := NewSQLiteLeadRepo(db)

	keep := testutil.NewTestLead("Keep Me")
	lose := testutil.NewTestLead("Lose Me")
	require.NoError(t, repo.Create(ctx, keep))
	require.NoError(t, repo.Create(ctx, lose))

	lostAt := time.Date(2026, 2, 1, 10, 30, 0, 0, time.UTC)
	require.NoError(t, repo.MarkLost(ctx, lose.ID, domain.LossPriceTooHigh, lostAt))

	active, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, keep.ID, active[0].ID)

	lost, err := repo.ListLost(ctx)
	require.NoError(t, err)
	require.Len(t, lost, 1)
	assert.Equal(t, domain.LeadLost, lost[0].Stage)
	require.NotNil(t, lost[0].LossReason)
	assert.Equal(t, domain.LossPriceTooHigh, *lost[0].LossReason)
	require.NotNil(t, lost[0].LostAt)
	assert.True(t, lost[0].LostAt.Equal(lostAt))
}

func TestLeadRepo_MarkLost_Missing(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteLeadRepo(db)

	err := repo.MarkLost(context.Background(), "ghost", domain.LossCompetitor, time.Now().UTC())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLeadRepo_SetStage(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	repo := NewSQLiteLeadRepo(db)

	lead := testutil.NewTestLead("Mover")
	require.NoError(t, repo.Create(ctx, lead))
	require.NoError(t, repo.SetStage(ctx, lead.ID, domain.LeadConcept))

	got, err := repo.GetByID(ctx, lead.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.LeadConcept, got.Stage)

	assert.ErrorIs(t, repo.SetStage(ctx, "ghost", domain.LeadConcept), domain.ErrNotFound)
}

func TestLeadRepo_Update(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	repo := NewSQLiteLeadRepo(db)

	lead := testutil.NewTestLead("Before")
	require.NoError(t, repo.Create(ctx, lead))

	lead.Name = "After"
	lead.Notes = "Prefers exposed concrete"
	lead.Temperature = domain.TempCold
	lead.NextActionDate = nil
	require.NoError(t, repo.Update(ctx, lead))

	got, err := repo.GetByID(ctx, lead.ID)
	require.NoError(t, err)
	assert.Equal(t, "After", got.Name)
	assert.Equal(t, "Prefers exposed concrete", got.Notes)
	assert.Equal(t, domain.TempCold, got.Temperature)
	assert.Nil(t, got.NextActionDate)
}

func TestLeadRepo_Tasks(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	repo := NewSQLiteLeadRepo(db)

	lead := testutil.NewTestLead("Tasked")
	require.NoError(t, repo.Create(ctx, lead))

	task := &domain.Task{ID: "task-1", LeadID: lead.ID, Description: "Call back"}
	require.NoError(t, repo.AddTask(ctx, task))
	require.NoError(t, repo.SetTaskCompleted(ctx, task.ID, true))

	got, err := repo.GetByID(ctx, lead.ID)
	require.NoError(t, err)
	require.Len(t, got.Tasks, 1)
	assert.True(t, got.Tasks[0].Completed)

	require.NoError(t, repo.DeleteTask(ctx, task.ID))
	got, err = repo.GetByID(ctx, lead.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Tasks)

	assert.ErrorIs(t, repo.SetTaskCompleted(ctx, "ghost", true), domain.ErrNotFound)
}

func TestLeadRepo_Delete_CascadesTasks(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	repo := NewSQLiteLeadRepo(db)

	lead := testutil.NewTestLead("Doomed", testutil.WithTasks("Orphan task"))
	require.NoError(t, repo.Create(ctx, lead))
	require.NoError(t, repo.Delete(ctx, lead.ID))

	_, err := repo.GetByID(ctx, lead.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM lead_tasks").Scan(&n))
	assert.Zero(t, n, "tasks should be cascade-deleted with the lead")
}

func TestLeadRepo_ListActive_LoadsTasksPerLead(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	repo := NewSQLiteLeadRepo(db)

	a := testutil.NewTestLead("A", testutil.WithTasks("a1", "a2"))
	b := testutil.NewTestLead("B", testutil.WithTasks("b1"))
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	leads, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, leads, 2)

	counts := map[string]int{}
	for _, l := range leads {
		counts[l.Name] = len(l.Tasks)
	}
	assert.Equal(t, 2, counts["A"])
	assert.Equal(t, 1, counts["B"])
}
