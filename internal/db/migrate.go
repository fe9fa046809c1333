package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS leads (
		id               TEXT PRIMARY KEY,
		name             TEXT NOT NULL,
		email            TEXT NOT NULL DEFAULT '',
		phone            TEXT NOT NULL DEFAULT '',
		source           TEXT NOT NULL DEFAULT '',
		notes            TEXT NOT NULL DEFAULT '',
		budget           INTEGER NOT NULL DEFAULT 0,
		stage            TEXT NOT NULL DEFAULT 'prospection'
		                 CHECK(stage IN ('prospection','technical_visit','briefing','concept','signed','lost')),
		temperature      TEXT NOT NULL DEFAULT 'warm'
		                 CHECK(temperature IN ('hot','warm','cold')),
		next_action_date TEXT,
		address          TEXT NOT NULL DEFAULT '',
		tax_id           TEXT NOT NULL DEFAULT '',
		loss_reason      TEXT
		                 CHECK(loss_reason IS NULL OR loss_reason IN ('price_too_high','competitor','withdrawn','no_contact')),
		lost_at          TEXT,
		created_at       TEXT NOT NULL,
		updated_at       TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_leads_stage ON leads(stage)`,

	`CREATE TABLE IF NOT EXISTS lead_tasks (
		id          TEXT PRIMARY KEY,
		lead_id     TEXT NOT NULL REFERENCES leads(id) ON DELETE CASCADE,
		description TEXT NOT NULL,
		completed   INTEGER NOT NULL DEFAULT 0,
		due_date    TEXT,
		created_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_lead_tasks_lead ON lead_tasks(lead_id)`,

	`CREATE TABLE IF NOT EXISTS projects (
		id          TEXT PRIMARY KEY,
		client_id   TEXT NOT NULL DEFAULT '',
		client_name TEXT NOT NULL DEFAULT '',
		title       TEXT NOT NULL,
		stage       TEXT NOT NULL DEFAULT 'briefing'
		            CHECK(stage IN ('briefing','concept','executive','construction','completed')),
		start_date  TEXT NOT NULL,
		deadline    TEXT,
		total_value INTEGER NOT NULL DEFAULT 0,
		paid_value  INTEGER NOT NULL DEFAULT 0,
		costs       INTEGER NOT NULL DEFAULT 0,
		progress    INTEGER NOT NULL DEFAULT 0 CHECK(progress BETWEEN 0 AND 100),
		rrt_status  TEXT NOT NULL DEFAULT 'pending'
		            CHECK(rrt_status IN ('pending','issued','paid')),
		rrt_number  TEXT NOT NULL DEFAULT '',
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_projects_stage ON projects(stage)`,

	`CREATE TABLE IF NOT EXISTS daily_logs (
		id         TEXT PRIMARY KEY,
		project_id TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		date       TEXT NOT NULL,
		content    TEXT NOT NULL,
		image_url  TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_daily_logs_project ON daily_logs(project_id)`,

	`CREATE TABLE IF NOT EXISTS material_approvals (
		id         TEXT PRIMARY KEY,
		project_id TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		name       TEXT NOT NULL,
		category   TEXT NOT NULL DEFAULT '',
		status     TEXT NOT NULL DEFAULT 'pending'
		           CHECK(status IN ('pending','approved','rejected')),
		image_url  TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_material_approvals_project ON material_approvals(project_id)`,

	`CREATE TABLE IF NOT EXISTS transactions (
		id          TEXT PRIMARY KEY,
		type        TEXT NOT NULL CHECK(type IN ('income','expense')),
		category    TEXT NOT NULL DEFAULT '',
		amount      INTEGER NOT NULL CHECK(amount > 0),
		date        TEXT NOT NULL,
		description TEXT NOT NULL,
		status      TEXT NOT NULL DEFAULT 'paid' CHECK(status IN ('paid','pending')),
		project_id  TEXT NOT NULL DEFAULT '',
		created_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions(date)`,
}
