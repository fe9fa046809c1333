package service

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tr013432-design/spazio/internal/domain"
	"github.com/tr013432-design/spazio/internal/repository"
	"github.com/tr013432-design/spazio/internal/testutil"
)

func newProjectFixture(t *testing.T) (ProjectService, repository.TransactionRepo) {
	t.Helper()
	db := testutil.NewTestDB(t)
	projRepo := repository.NewSQLiteProjectRepo(db)
	txnRepo := repository.NewSQLiteTransactionRepo(db)
	svc := NewProjectService(projRepo, testutil.NewTestUoW(db), nil)
	return svc, txnRepo
}

func TestProjectService_Create_FillsDefaults(t *testing.T) {
	svc, _ := newProjectFixture(t)
	ctx := context.Background()

	p := &domain.Project{ClientName: "Studio Client", Title: "Loft refit"}
	require.NoError(t, svc.Create(ctx, p))

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, domain.StageBriefing, p.Stage)
	assert.Equal(t, domain.RRTPending, p.RRTStatus)
	assert.False(t, p.StartDate.IsZero())
}

func TestProjectService_SetStage_Jump(t *testing.T) {
	svc, _ := newProjectFixture(t)
	ctx := context.Background()

	p := testutil.NewTestProject("Jumper")
	require.NoError(t, svc.Create(ctx, p))

	// Stage moves are free-form; skipping phases is allowed.
	require.NoError(t, svc.SetStage(ctx, p.ID, domain.StageConstruction))

	got, err := svc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StageConstruction, got.Stage)

	steps := domain.ProjectStepper(got.Stage)
	assert.Equal(t, []domain.StepState{
		domain.StepCompleted, domain.StepCompleted, domain.StepCompleted,
		domain.StepCurrent, domain.StepLocked,
	}, steps)

	assert.ErrorIs(t, svc.SetStage(ctx, p.ID, "demolition"), domain.ErrInvalidStage)
	assert.ErrorIs(t, svc.SetStage(ctx, "ghost", domain.StageConcept), domain.ErrNotFound)
}

func TestProjectService_IssueRRT_OneWay(t *testing.T) {
	svc, _ := newProjectFixture(t)
	ctx := context.Background()

	p := testutil.NewTestProject("Permit")
	require.NoError(t, svc.Create(ctx, p))

	number, err := svc.IssueRRT(ctx, p.ID)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^RRT-\d{4}-\d{4}$`), number)

	_, err = svc.IssueRRT(ctx, p.ID)
	assert.ErrorIs(t, err, domain.ErrRRTIssued)

	require.NoError(t, svc.MarkRRTPaid(ctx, p.ID))
	got, err := svc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.RRTPaid, got.RRTStatus)
	assert.Equal(t, number, got.RRTNumber)
}

func TestProjectService_MarkRRTPaid_RequiresIssued(t *testing.T) {
	svc, _ := newProjectFixture(t)
	ctx := context.Background()

	p := testutil.NewTestProject("Unpermitted")
	require.NoError(t, svc.Create(ctx, p))

	assert.ErrorIs(t, svc.MarkRRTPaid(ctx, p.ID), domain.ErrValidation)
}

func TestProjectService_ChargeMilestone(t *testing.T) {
	svc, txnRepo := newProjectFixture(t)
	ctx := context.Background()

	p := testutil.NewTestProject("Milestones", testutil.WithFinancials(100_000_00, 0, 0))
	require.NoError(t, svc.Create(ctx, p))

	charged, err := svc.ChargeMilestone(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(25_000_00), charged)

	got, err := svc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(25_000_00), got.PaidValue)

	txns, err := txnRepo.ListByProject(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, domain.TxnIncome, txns[0].Type)
	assert.Equal(t, int64(25_000_00), txns[0].Amount)
	assert.Equal(t, domain.TxnPaid, txns[0].Status)
}

func TestProjectService_ChargeMilestone_ClampsToTotal(t *testing.T) {
	svc, _ := newProjectFixture(t)
	ctx := context.Background()

	p := testutil.NewTestProject("NearlyPaid", testutil.WithFinancials(100_000_00, 90_000_00, 0))
	require.NoError(t, svc.Create(ctx, p))

	charged, err := svc.ChargeMilestone(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(10_000_00), charged)

	got, err := svc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, got.TotalValue, got.PaidValue)

	_, err = svc.ChargeMilestone(ctx, p.ID)
	assert.ErrorIs(t, err, domain.ErrValidation, "fully paid project cannot be charged again")
}

func TestProjectService_ReviewMaterial_OneWay(t *testing.T) {
	svc, _ := newProjectFixture(t)
	ctx := context.Background()

	p := testutil.NewTestProject("Samples")
	require.NoError(t, svc.Create(ctx, p))

	m, err := svc.AddMaterial(ctx, p.ID, "Oak parquet", "Flooring", "")
	require.NoError(t, err)
	assert.Equal(t, domain.MaterialPending, m.Status)

	require.NoError(t, svc.ReviewMaterial(ctx, m.ID, true))
	assert.ErrorIs(t, svc.ReviewMaterial(ctx, m.ID, false), domain.ErrValidation)

	got, err := svc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, got.MaterialApprovals, 1)
	assert.Equal(t, domain.MaterialApproved, got.MaterialApprovals[0].Status)
}

func TestProjectService_AddDailyLog(t *testing.T) {
	svc, _ := newProjectFixture(t)
	ctx := context.Background()

	p := testutil.NewTestProject("Diary", testutil.WithProjectStage(domain.StageConstruction))
	require.NoError(t, svc.Create(ctx, p))

	_, err := svc.AddDailyLog(ctx, p.ID, "Framing complete on second floor", "")
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, got.DailyLogs, 1)
	assert.Equal(t, "Framing complete on second floor", got.DailyLogs[0].Content)
}
