package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tr013432-design/spazio/internal/domain"
	"github.com/tr013432-design/spazio/internal/teatest"
	"github.com/tr013432-design/spazio/internal/testutil"
)

func newProjectsDriver(t *testing.T, app *App) *teatest.Driver {
	t.Helper()
	d := teatest.New(t, newAppModel(app), teatest.WithSize(160, 40))
	d.DrainInit()
	d.PressKey('p')
	return d
}

func TestProjectListView_Empty(t *testing.T) {
	app := testApp(t)
	d := newProjectsDriver(t, app)

	assert.Contains(t, stripANSI(d.View()), "No projects yet")
}

func TestProjectListView_StageAndProgress(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()
	p := testutil.NewTestProject("Casa Alto", testutil.WithProgress(45))
	require.NoError(t, app.Projects.Create(ctx, p))

	d := newProjectsDriver(t, app)
	view := stripANSI(d.View())
	assert.Contains(t, view, "Casa Alto")
	assert.Contains(t, view, "45%")

	d.PressKey(']')
	got, err := app.Projects.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StageConcept, got.Stage)

	d.PressKey('[')
	got, err = app.Projects.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StageBriefing, got.Stage)
}

func TestProjectListView_ChargeMilestone(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()
	p := testutil.NewTestProject("Loft Norte", testutil.WithFinancials(80_000_00, 0, 0))
	require.NoError(t, app.Projects.Create(ctx, p))

	d := newProjectsDriver(t, app)
	d.PressKey('c')

	got, err := app.Projects.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(20_000_00), got.PaidValue)

	txns, err := app.Finance.ListByProject(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, domain.TxnIncome, txns[0].Type)
}

func TestProjectListView_IssueRRT(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()
	p := testutil.NewTestProject("Sobrado Sul")
	require.NoError(t, app.Projects.Create(ctx, p))

	d := newProjectsDriver(t, app)
	d.PressKey('i')

	got, err := app.Projects.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.RRTIssued, got.RRTStatus)
	assert.NotEmpty(t, got.RRTNumber)
}

func TestProjectListView_EscReturnsToBoard(t *testing.T) {
	app := testApp(t)
	d := newProjectsDriver(t, app)

	d.PressEsc()
	assert.Contains(t, stripANSI(d.View()), "Prospection")
}
