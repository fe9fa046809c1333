package domain

import (
	"fmt"
	"strings"
	"time"
)

// Transaction is one immutable ledger entry. Amount is a positive value in
// cents; the type decides its sign in cash totals.
type Transaction struct {
	ID          string
	Type        TransactionType
	Category    string
	Amount      int64
	Date        time.Time
	Description string
	Status      TransactionStatus
	ProjectID   string
	CreatedAt   time.Time
}

func (t *Transaction) Validate() error {
	if t.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrValidation)
	}
	if t.Type != TxnIncome && t.Type != TxnExpense {
		return fmt.Errorf("%w: unknown transaction type %q", ErrValidation, t.Type)
	}
	if t.Status != TxnPaid && t.Status != TxnPending {
		return fmt.Errorf("%w: unknown transaction status %q", ErrValidation, t.Status)
	}
	if strings.TrimSpace(t.Description) == "" {
		return fmt.Errorf("%w: description is required", ErrValidation)
	}
	return nil
}

// SignedAmount is +amount for income and -amount for expenses.
func (t *Transaction) SignedAmount() int64 {
	if t.Type == TxnExpense {
		return -t.Amount
	}
	return t.Amount
}

// Realized reports whether the entry counts toward settled cash totals.
func (t *Transaction) Realized() bool {
	return t.Status == TxnPaid
}

// Month returns the first day of the transaction's month, for chart buckets.
func (t *Transaction) Month() time.Time {
	return time.Date(t.Date.Year(), t.Date.Month(), 1, 0, 0, 0, 0, time.UTC)
}
