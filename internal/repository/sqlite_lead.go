package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/tr013432-design/spazio/internal/db"
	"github.com/tr013432-design/spazio/internal/domain"
)

const leadColumns = `id, name, email, phone, source, notes, budget, stage,
		temperature, next_action_date, address, tax_id, loss_reason, lost_at,
		created_at, updated_at`

// SQLiteLeadRepo implements LeadRepo using a SQLite database.
type SQLiteLeadRepo struct {
	db db.DBTX
}

// NewSQLiteLeadRepo creates a new SQLiteLeadRepo.
func NewSQLiteLeadRepo(conn db.DBTX) *SQLiteLeadRepo {
	return &SQLiteLeadRepo{db: conn}
}

func (r *SQLiteLeadRepo) Create(ctx context.Context, l *domain.Lead) error {
	query := `INSERT INTO leads (` + leadColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	var reason interface{}
	if l.LossReason != nil {
		reason = string(*l.LossReason)
	}
	_, err := r.db.ExecContext(ctx, query,
		l.ID,
		l.Name,
		l.Email,
		l.Phone,
		l.Source,
		l.Notes,
		l.Budget,
		string(l.Stage),
		string(l.Temperature),
		nullableTimeToString(l.NextActionDate, dateLayout),
		l.Address,
		l.TaxID,
		reason,
		nullableTimeToString(l.LostAt, time.RFC3339),
		l.CreatedAt.Format(time.RFC3339),
		l.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting lead: %w", err)
	}
	for i := range l.Tasks {
		if err := r.AddTask(ctx, &l.Tasks[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteLeadRepo) GetByID(ctx context.Context, id string) (*domain.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	lead, err := scanLead(row)
	if err != nil {
		return nil, err
	}
	tasks, err := r.listTasks(ctx, id)
	if err != nil {
		return nil, err
	}
	lead.Tasks = tasks
	return lead, nil
}

func (r *SQLiteLeadRepo) ListActive(ctx context.Context) ([]*domain.Lead, error) {
	return r.list(ctx, `SELECT `+leadColumns+` FROM leads WHERE stage != 'lost' ORDER BY created_at DESC`)
}

func (r *SQLiteLeadRepo) ListLost(ctx context.Context) ([]*domain.Lead, error) {
	return r.list(ctx, `SELECT `+leadColumns+` FROM leads WHERE stage = 'lost' ORDER BY lost_at DESC`)
}

func (r *SQLiteLeadRepo) list(ctx context.Context, query string) ([]*domain.Lead, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing leads: %w", err)
	}
	defer rows.Close()

	var leads []*domain.Lead
	byID := make(map[string]*domain.Lead)
	for rows.Next() {
		l, err := scanLeadFromRows(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, l)
		byID[l.ID] = l
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating leads: %w", err)
	}
	if len(leads) == 0 {
		return leads, nil
	}

	// One pass over all tasks instead of a query per lead.
	taskRows, err := r.db.QueryContext(ctx,
		`SELECT id, lead_id, description, completed, due_date, created_at FROM lead_tasks ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("listing lead tasks: %w", err)
	}
	defer taskRows.Close()
	for taskRows.Next() {
		t, err := scanTask(taskRows)
		if err != nil {
			return nil, err
		}
		if l, ok := byID[t.LeadID]; ok {
			l.Tasks = append(l.Tasks, *t)
		}
	}
	if err := taskRows.Err(); err != nil {
		return nil, fmt.Errorf("iterating lead tasks: %w", err)
	}
	return leads, nil
}

func (r *SQLiteLeadRepo) Update(ctx context.Context, l *domain.Lead) error {
	query := `UPDATE leads SET name = ?, email = ?, phone = ?, source = ?, notes = ?,
		budget = ?, temperature = ?, next_action_date = ?, address = ?, tax_id = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		l.Name,
		l.Email,
		l.Phone,
		l.Source,
		l.Notes,
		l.Budget,
		string(l.Temperature),
		nullableTimeToString(l.NextActionDate, dateLayout),
		l.Address,
		l.TaxID,
		l.UpdatedAt.Format(time.RFC3339),
		l.ID,
	)
	if err != nil {
		return fmt.Errorf("updating lead: %w", err)
	}
	return requireRow(res, "lead", l.ID)
}

func (r *SQLiteLeadRepo) SetStage(ctx context.Context, id string, stage domain.LeadStage) error {
	query := `UPDATE leads SET stage = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, string(stage), time.Now().UTC().Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("setting lead stage: %w", err)
	}
	return requireRow(res, "lead", id)
}

func (r *SQLiteLeadRepo) MarkLost(ctx context.Context, id string, reason domain.LossReason, at time.Time) error {
	query := `UPDATE leads SET stage = 'lost', loss_reason = ?, lost_at = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		string(reason),
		at.UTC().Format(time.RFC3339),
		at.UTC().Format(time.RFC3339),
		id,
	)
	if err != nil {
		return fmt.Errorf("marking lead lost: %w", err)
	}
	return requireRow(res, "lead", id)
}

func (r *SQLiteLeadRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM leads WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting lead: %w", err)
	}
	return requireRow(res, "lead", id)
}

func (r *SQLiteLeadRepo) AddTask(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO lead_tasks (id, lead_id, description, completed, due_date, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.LeadID,
		t.Description,
		boolToInt(t.Completed),
		nullableTimeToString(t.DueDate, dateLayout),
		t.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting lead task: %w", err)
	}
	return nil
}

func (r *SQLiteLeadRepo) SetTaskCompleted(ctx context.Context, taskID string, completed bool) error {
	res, err := r.db.ExecContext(ctx, `UPDATE lead_tasks SET completed = ? WHERE id = ?`, boolToInt(completed), taskID)
	if err != nil {
		return fmt.Errorf("updating lead task: %w", err)
	}
	return requireRow(res, "task", taskID)
}

func (r *SQLiteLeadRepo) DeleteTask(ctx context.Context, taskID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM lead_tasks WHERE id = ?`, taskID)
	if err != nil {
		return fmt.Errorf("deleting lead task: %w", err)
	}
	return requireRow(res, "task", taskID)
}

func (r *SQLiteLeadRepo) listTasks(ctx context.Context, leadID string) ([]domain.Task, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, lead_id, description, completed, due_date, created_at FROM lead_tasks WHERE lead_id = ? ORDER BY created_at`, leadID)
	if err != nil {
		return nil, fmt.Errorf("listing lead tasks: %w", err)
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating lead tasks: %w", err)
	}
	return tasks, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLead(row *sql.Row) (*domain.Lead, error) {
	l, err := scanLeadFields(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("lead: %w", domain.ErrNotFound)
	}
	return l, err
}

func scanLeadFromRows(rows *sql.Rows) (*domain.Lead, error) {
	return scanLeadFields(rows)
}

func scanLeadFields(s rowScanner) (*domain.Lead, error) {
	var l domain.Lead
	var stageStr, tempStr, createdAtStr, updatedAtStr string
	var nextActionStr, reasonStr, lostAtStr sql.NullString

	err := s.Scan(
		&l.ID, &l.Name, &l.Email, &l.Phone, &l.Source, &l.Notes, &l.Budget,
		&stageStr, &tempStr, &nextActionStr, &l.Address, &l.TaxID,
		&reasonStr, &lostAtStr, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning lead: %w", err)
	}

	l.Stage = domain.LeadStage(stageStr)
	l.Temperature = domain.LeadTemperature(tempStr)
	l.NextActionDate = parseNullableTime(nextActionStr, dateLayout)
	l.LostAt = parseNullableTime(lostAtStr, time.RFC3339)
	if reasonStr.Valid && reasonStr.String != "" {
		reason := domain.LossReason(reasonStr.String)
		l.LossReason = &reason
	}

	var parseErr error
	l.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	l.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return &l, nil
}

func scanTask(rows *sql.Rows) (*domain.Task, error) {
	var t domain.Task
	var completed int
	var dueStr sql.NullString
	var createdAtStr string

	if err := rows.Scan(&t.ID, &t.LeadID, &t.Description, &completed, &dueStr, &createdAtStr); err != nil {
		return nil, fmt.Errorf("scanning lead task: %w", err)
	}
	t.Completed = intToBool(completed)
	t.DueDate = parseNullableTime(dueStr, dateLayout)

	var parseErr error
	t.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing task created_at: %w", parseErr)
	}
	return &t, nil
}
