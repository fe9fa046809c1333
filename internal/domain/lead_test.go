package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeadValidate(t *testing.T) {
	lead := &Lead{Name: "Marcos Vinicius", Stage: LeadProspection, Temperature: TempHot}
	require.NoError(t, lead.Validate())

	noName := &Lead{Stage: LeadProspection}
	assert.ErrorIs(t, noName.Validate(), ErrValidation)

	negBudget := &Lead{Name: "X", Stage: LeadProspection, Budget: -1}
	assert.ErrorIs(t, negBudget.Validate(), ErrValidation)

	badStage := &Lead{Name: "X", Stage: "gone"}
	assert.ErrorIs(t, badStage.Validate(), ErrInvalidStage)
}

func TestLeadWhatsAppDigits(t *testing.T) {
	lead := &Lead{Phone: "+55 (11) 98888-7777"}
	assert.Equal(t, "5511988887777", lead.WhatsAppDigits())
}

func TestProjectValidate_PaidExceedsTotal(t *testing.T) {
	p := &Project{Title: "Apartamento Ipanema", Stage: StageConstruction,
		TotalValue: 1_500_000, PaidValue: 1_600_000, Progress: 75}
	assert.ErrorIs(t, p.Validate(), ErrValidation)

	p.PaidValue = 1_125_000
	require.NoError(t, p.Validate())
	assert.Equal(t, int64(375_000), p.Outstanding())
}

func TestTransactionSignedAmount(t *testing.T) {
	in := &Transaction{Type: TxnIncome, Amount: 850_000, Status: TxnPaid, Description: "x"}
	out := &Transaction{Type: TxnExpense, Amount: 50_000, Status: TxnPending, Description: "x"}
	assert.Equal(t, int64(850_000), in.SignedAmount())
	assert.Equal(t, int64(-50_000), out.SignedAmount())
	assert.True(t, in.Realized())
	assert.False(t, out.Realized())
}
