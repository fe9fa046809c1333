package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/tr013432-design/spazio/internal/db"
	"github.com/tr013432-design/spazio/internal/domain"
)

const projectColumns = `id, client_id, client_name, title, stage, start_date, deadline,
		total_value, paid_value, costs, progress, rrt_status, rrt_number, created_at, updated_at`

// SQLiteProjectRepo implements ProjectRepo using a SQLite database.
type SQLiteProjectRepo struct {
	db db.DBTX
}

// NewSQLiteProjectRepo creates a new SQLiteProjectRepo.
func NewSQLiteProjectRepo(conn db.DBTX) *SQLiteProjectRepo {
	return &SQLiteProjectRepo{db: conn}
}

func (r *SQLiteProjectRepo) Create(ctx context.Context, p *domain.Project) error {
	query := `INSERT INTO projects (` + projectColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.ClientID,
		p.ClientName,
		p.Title,
		string(p.Stage),
		p.StartDate.Format(dateLayout),
		nullableTimeToString(p.Deadline, dateLayout),
		p.TotalValue,
		p.PaidValue,
		p.Costs,
		p.Progress,
		string(p.RRTStatus),
		p.RRTNumber,
		p.CreatedAt.Format(time.RFC3339),
		p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting project: %w", err)
	}
	for i := range p.DailyLogs {
		if err := r.AddDailyLog(ctx, &p.DailyLogs[i]); err != nil {
			return err
		}
	}
	for i := range p.MaterialApprovals {
		if err := r.AddMaterial(ctx, &p.MaterialApprovals[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteProjectRepo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = ?`
	p, err := scanProjectFields(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("project: %w", domain.ErrNotFound)
		}
		return nil, err
	}

	logs, err := r.listLogs(ctx, id)
	if err != nil {
		return nil, err
	}
	p.DailyLogs = logs

	materials, err := r.listMaterials(ctx, id)
	if err != nil {
		return nil, err
	}
	p.MaterialApprovals = materials
	return p, nil
}

func (r *SQLiteProjectRepo) List(ctx context.Context) ([]*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	var projects []*domain.Project
	for rows.Next() {
		p, err := scanProjectFields(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}
	return projects, nil
}

func (r *SQLiteProjectRepo) Update(ctx context.Context, p *domain.Project) error {
	query := `UPDATE projects SET client_id = ?, client_name = ?, title = ?, start_date = ?,
		deadline = ?, total_value = ?, paid_value = ?, costs = ?, progress = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		p.ClientID,
		p.ClientName,
		p.Title,
		p.StartDate.Format(dateLayout),
		nullableTimeToString(p.Deadline, dateLayout),
		p.TotalValue,
		p.PaidValue,
		p.Costs,
		p.Progress,
		p.UpdatedAt.Format(time.RFC3339),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating project: %w", err)
	}
	return requireRow(res, "project", p.ID)
}

func (r *SQLiteProjectRepo) SetStage(ctx context.Context, id string, stage domain.ProjectStage) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE projects SET stage = ?, updated_at = ? WHERE id = ?`,
		string(stage), time.Now().UTC().Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("setting project stage: %w", err)
	}
	return requireRow(res, "project", id)
}

func (r *SQLiteProjectRepo) SetRRT(ctx context.Context, id string, status domain.RRTStatus, number string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE projects SET rrt_status = ?, rrt_number = ?, updated_at = ? WHERE id = ?`,
		string(status), number, time.Now().UTC().Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("setting project rrt: %w", err)
	}
	return requireRow(res, "project", id)
}

func (r *SQLiteProjectRepo) SetPaidValue(ctx context.Context, id string, paid int64) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE projects SET paid_value = ?, updated_at = ? WHERE id = ?`,
		paid, time.Now().UTC().Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("setting project paid value: %w", err)
	}
	return requireRow(res, "project", id)
}

func (r *SQLiteProjectRepo) SetProgress(ctx context.Context, id string, progress int) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE projects SET progress = ?, updated_at = ? WHERE id = ?`,
		progress, time.Now().UTC().Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("setting project progress: %w", err)
	}
	return requireRow(res, "project", id)
}

func (r *SQLiteProjectRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	return requireRow(res, "project", id)
}

func (r *SQLiteProjectRepo) AddDailyLog(ctx context.Context, l *domain.DailyLog) error {
	query := `INSERT INTO daily_logs (id, project_id, date, content, image_url, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		l.ID,
		l.ProjectID,
		l.Date.Format(dateLayout),
		l.Content,
		l.ImageURL,
		l.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting daily log: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) AddMaterial(ctx context.Context, m *domain.MaterialApproval) error {
	query := `INSERT INTO material_approvals (id, project_id, name, category, status, image_url, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		m.ID,
		m.ProjectID,
		m.Name,
		m.Category,
		string(m.Status),
		m.ImageURL,
		m.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting material approval: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) GetMaterial(ctx context.Context, materialID string) (*domain.MaterialApproval, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, project_id, name, category, status, image_url, created_at
		FROM material_approvals WHERE id = ?`, materialID)
	m, err := scanMaterial(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("material: %w", domain.ErrNotFound)
		}
		return nil, err
	}
	return m, nil
}

func (r *SQLiteProjectRepo) SetMaterialStatus(ctx context.Context, materialID string, status domain.MaterialStatus) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE material_approvals SET status = ? WHERE id = ?`, string(status), materialID)
	if err != nil {
		return fmt.Errorf("updating material approval: %w", err)
	}
	return requireRow(res, "material", materialID)
}

func (r *SQLiteProjectRepo) listLogs(ctx context.Context, projectID string) ([]domain.DailyLog, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, project_id, date, content, image_url, created_at
		FROM daily_logs WHERE project_id = ? ORDER BY date DESC, created_at DESC`, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing daily logs: %w", err)
	}
	defer rows.Close()

	var logs []domain.DailyLog
	for rows.Next() {
		var l domain.DailyLog
		var dateStr, createdAtStr string
		if err := rows.Scan(&l.ID, &l.ProjectID, &dateStr, &l.Content, &l.ImageURL, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning daily log: %w", err)
		}
		if l.Date, err = time.Parse(dateLayout, dateStr); err != nil {
			return nil, fmt.Errorf("parsing log date: %w", err)
		}
		if l.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
			return nil, fmt.Errorf("parsing log created_at: %w", err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating daily logs: %w", err)
	}
	return logs, nil
}

func (r *SQLiteProjectRepo) listMaterials(ctx context.Context, projectID string) ([]domain.MaterialApproval, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, project_id, name, category, status, image_url, created_at
		FROM material_approvals WHERE project_id = ? ORDER BY created_at`, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing material approvals: %w", err)
	}
	defer rows.Close()

	var materials []domain.MaterialApproval
	for rows.Next() {
		m, err := scanMaterial(rows)
		if err != nil {
			return nil, err
		}
		materials = append(materials, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating material approvals: %w", err)
	}
	return materials, nil
}

func scanProjectFields(s rowScanner) (*domain.Project, error) {
	var p domain.Project
	var stageStr, rrtStr, startStr, createdAtStr, updatedAtStr string
	var deadlineStr sql.NullString

	err := s.Scan(
		&p.ID, &p.ClientID, &p.ClientName, &p.Title, &stageStr, &startStr, &deadlineStr,
		&p.TotalValue, &p.PaidValue, &p.Costs, &p.Progress, &rrtStr, &p.RRTNumber,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning project: %w", err)
	}

	p.Stage = domain.ProjectStage(stageStr)
	p.RRTStatus = domain.RRTStatus(rrtStr)
	p.Deadline = parseNullableTime(deadlineStr, dateLayout)

	var parseErr error
	p.StartDate, parseErr = time.Parse(dateLayout, startStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing start_date: %w", parseErr)
	}
	p.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	p.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return &p, nil
}

func scanMaterial(s rowScanner) (*domain.MaterialApproval, error) {
	var m domain.MaterialApproval
	var statusStr, createdAtStr string
	err := s.Scan(&m.ID, &m.ProjectID, &m.Name, &m.Category, &statusStr, &m.ImageURL, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning material approval: %w", err)
	}
	m.Status = domain.MaterialStatus(statusStr)
	var parseErr error
	m.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing material created_at: %w", parseErr)
	}
	return &m, nil
}
