package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/tr013432-design/spazio/internal/db"
	"github.com/tr013432-design/spazio/internal/domain"
)

const transactionColumns = `id, type, category, amount, date, description, status, project_id, created_at`

// SQLiteTransactionRepo implements TransactionRepo using a SQLite database.
// Ledger entries are append-only; there is no update or delete.
type SQLiteTransactionRepo struct {
	db db.DBTX
}

// NewSQLiteTransactionRepo creates a new SQLiteTransactionRepo.
func NewSQLiteTransactionRepo(conn db.DBTX) *SQLiteTransactionRepo {
	return &SQLiteTransactionRepo{db: conn}
}

func (r *SQLiteTransactionRepo) Create(ctx context.Context, t *domain.Transaction) error {
	query := `INSERT INTO transactions (` + transactionColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		string(t.Type),
		t.Category,
		t.Amount,
		t.Date.Format(dateLayout),
		t.Description,
		string(t.Status),
		t.ProjectID,
		t.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting transaction: %w", err)
	}
	return nil
}

func (r *SQLiteTransactionRepo) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE id = ?`, id)
	t, err := scanTransaction(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("transaction: %w", domain.ErrNotFound)
		}
		return nil, err
	}
	return t, nil
}

func (r *SQLiteTransactionRepo) List(ctx context.Context) ([]*domain.Transaction, error) {
	return r.list(ctx, `SELECT `+transactionColumns+` FROM transactions ORDER BY date DESC, created_at DESC`)
}

func (r *SQLiteTransactionRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.Transaction, error) {
	return r.list(ctx,
		`SELECT `+transactionColumns+` FROM transactions WHERE project_id = ? ORDER BY date DESC, created_at DESC`,
		projectID)
}

func (r *SQLiteTransactionRepo) list(ctx context.Context, query string, args ...any) ([]*domain.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var txns []*domain.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		txns = append(txns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transactions: %w", err)
	}
	return txns, nil
}

func scanTransaction(s rowScanner) (*domain.Transaction, error) {
	var t domain.Transaction
	var typeStr, statusStr, dateStr, createdAtStr string

	err := s.Scan(&t.ID, &typeStr, &t.Category, &t.Amount, &dateStr, &t.Description, &statusStr, &t.ProjectID, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning transaction: %w", err)
	}

	t.Type = domain.TransactionType(typeStr)
	t.Status = domain.TransactionStatus(statusStr)

	var parseErr error
	t.Date, parseErr = time.Parse(dateLayout, dateStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing transaction date: %w", parseErr)
	}
	t.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing transaction created_at: %w", parseErr)
	}
	return &t, nil
}
