package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tr013432-design/spazio/internal/domain"
	"github.com/tr013432-design/spazio/internal/teatest"
	"github.com/tr013432-design/spazio/internal/testutil"
)

func newBoardDriver(t *testing.T, app *App) *teatest.Driver {
	t.Helper()
	d := teatest.New(t, newAppModel(app), teatest.WithSize(160, 40))
	d.DrainInit()
	return d
}

func TestBoardView_ShowsActiveLeads(t *testing.T) {
	app := testApp(t)
	seedLead(t, app, "Ana Costa")
	lost := seedLead(t, app, "Rui Lima")
	require.NoError(t, app.Leads.MarkLost(context.Background(), lost.ID, domain.LossCompetitor))

	d := newBoardDriver(t, app)
	view := stripANSI(d.View())

	assert.Contains(t, view, "Ana Costa")
	assert.NotContains(t, view, "Rui Lima")
	assert.Contains(t, view, "Prospection")
	assert.Contains(t, view, "Signed")
}

func TestBoardView_MoveStage(t *testing.T) {
	app := testApp(t)
	l := seedLead(t, app, "Bruno Dias")

	d := newBoardDriver(t, app)
	d.PressKey(']')

	got, err := app.Leads.GetByID(context.Background(), l.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.LeadTechnicalVisit, got.Stage)

	// The board reloaded; follow the card to its new column and move it back.
	d.PressRight()
	d.PressKey('[')
	got, err = app.Leads.GetByID(context.Background(), l.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.LeadProspection, got.Stage)
}

func TestBoardView_MoveStage_StopsAtEnds(t *testing.T) {
	app := testApp(t)
	l := seedLead(t, app, "Carla Melo")

	d := newBoardDriver(t, app)
	d.PressKey('[')

	got, err := app.Leads.GetByID(context.Background(), l.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.LeadProspection, got.Stage)
}

func TestBoardView_LossModal(t *testing.T) {
	t.Run("confirm is inert until a reason is chosen", func(t *testing.T) {
		app := testApp(t)
		l := seedLead(t, app, "Diego Ferraz")

		d := newBoardDriver(t, app)
		d.PressKey('x')
		assert.Contains(t, stripANSI(d.View()), "Mark Diego Ferraz as lost?")

		d.PressKey('y')

		got, err := app.Leads.GetByID(context.Background(), l.ID)
		require.NoError(t, err)
		assert.False(t, got.IsLost())
		assert.Contains(t, stripANSI(d.View()), "enter choose reason")
	})

	t.Run("choosing a reason then confirming marks the lead lost", func(t *testing.T) {
		app := testApp(t)
		l := seedLead(t, app, "Elisa Prado")

		d := newBoardDriver(t, app)
		d.PressKey('x')
		d.PressDown()
		d.PressEnter()
		d.PressKey('y')

		got, err := app.Leads.GetByID(context.Background(), l.ID)
		require.NoError(t, err)
		require.True(t, got.IsLost())
		require.NotNil(t, got.LossReason)
		assert.Equal(t, domain.LossCompetitor, *got.LossReason)

		// Off the board after the reload. The toast line still names the
		// lead, so check every line but that one.
		for _, line := range strings.Split(stripANSI(d.View()), "\n") {
			if strings.Contains(line, "marked lost") {
				continue
			}
			assert.NotContains(t, line, "Elisa Prado")
		}
	})

	t.Run("esc abandons the flow without touching the lead", func(t *testing.T) {
		app := testApp(t)
		l := seedLead(t, app, "Fabio Rocha")

		d := newBoardDriver(t, app)
		d.PressKey('x')
		d.PressDown()
		d.PressEnter()
		d.PressEsc()

		got, err := app.Leads.GetByID(context.Background(), l.ID)
		require.NoError(t, err)
		assert.False(t, got.IsLost())
		assert.Contains(t, stripANSI(d.View()), "Fabio Rocha")
	})
}

func TestBoardView_ConvertSignedLead(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()
	l := testutil.NewTestLead("Gina Souza", testutil.WithLeadStage(domain.LeadSigned))
	require.NoError(t, app.Leads.Create(ctx, l))

	d := newBoardDriver(t, app)
	for range domain.LeadStages()[1:] {
		d.PressRight()
	}
	d.PressKey('c')

	projects, err := app.Projects.List(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, l.ID, projects[0].ClientID)
}

func TestBoardView_ConvertRefusedBeforeSigned(t *testing.T) {
	app := testApp(t)
	seedLead(t, app, "Helena Brito")

	d := newBoardDriver(t, app)
	d.PressKey('c')

	projects, err := app.Projects.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, projects)
	assert.Contains(t, stripANSI(d.View()), "only signed leads")
}

func TestBoardView_ProjectsShortcut(t *testing.T) {
	app := testApp(t)
	p := testutil.NewTestProject("Casa Alto", testutil.WithFinancials(60_000_00, 15_000_00, 0))
	require.NoError(t, app.Projects.Create(context.Background(), p))

	d := newBoardDriver(t, app)
	d.PressKey('p')

	view := stripANSI(d.View())
	assert.Contains(t, view, "Casa Alto")
}
