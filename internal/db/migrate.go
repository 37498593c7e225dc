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
	`CREATE TABLE IF NOT EXISTS projects (
		id             TEXT PRIMARY KEY,
		name           TEXT NOT NULL,
		analysis_start TEXT,
		analysis_end   TEXT,
		status         TEXT NOT NULL DEFAULT 'active'
		               CHECK(status IN ('active','archived')),
		created_at     TEXT NOT NULL,
		updated_at     TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS budget_items (
		id                  TEXT PRIMARY KEY,
		project_id          TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		name                TEXT NOT NULL,
		start_date          TEXT,
		end_date            TEXT,
		baseline_start      TEXT,
		baseline_end        TEXT,
		periods_to_complete INTEGER,
		timing_method       TEXT NOT NULL DEFAULT 'manual'
		                    CHECK(timing_method IN ('manual','milestone')),
		timing_locked       INTEGER NOT NULL DEFAULT 0,
		status              TEXT NOT NULL DEFAULT 'planned'
		                    CHECK(status IN ('planned','in_progress','complete','cancelled')),
		percent_complete    REAL NOT NULL DEFAULT 0,
		early_start         TEXT,
		early_finish        TEXT,
		late_start          TEXT,
		late_finish         TEXT,
		float_days          INTEGER,
		is_critical         INTEGER NOT NULL DEFAULT 0,
		created_at          TEXT NOT NULL,
		updated_at          TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_budget_items_project ON budget_items(project_id)`,

	`CREATE TABLE IF NOT EXISTS milestones (
		id               TEXT PRIMARY KEY,
		project_id       TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		name             TEXT NOT NULL,
		milestone_date   TEXT,
		planned_date     TEXT,
		baseline_date    TEXT,
		status           TEXT NOT NULL DEFAULT 'pending'
		                 CHECK(status IN ('pending','achieved','cancelled')),
		percent_complete REAL NOT NULL DEFAULT 0,
		early_date       TEXT,
		late_date        TEXT,
		float_days       INTEGER,
		is_critical      INTEGER NOT NULL DEFAULT 0,
		created_at       TEXT NOT NULL,
		updated_at       TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_milestones_project ON milestones(project_id)`,

	`CREATE TABLE IF NOT EXISTS dependencies (
		id               TEXT PRIMARY KEY,
		project_id       TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		predecessor_type TEXT NOT NULL CHECK(predecessor_type IN ('budget_item','milestone')),
		predecessor_id   TEXT NOT NULL,
		successor_type   TEXT NOT NULL CHECK(successor_type IN ('budget_item','milestone')),
		successor_id     TEXT NOT NULL,
		dep_type         TEXT NOT NULL DEFAULT 'FS' CHECK(dep_type IN ('FS','SS','FF','SF')),
		lag_days         INTEGER NOT NULL DEFAULT 0,
		hard_constraint  INTEGER NOT NULL DEFAULT 0,
		active           INTEGER NOT NULL DEFAULT 1,
		created_at       TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_dependencies_project ON dependencies(project_id)`,

	`CREATE TABLE IF NOT EXISTS timeline_calc_log (
		id                 TEXT PRIMARY KEY,
		project_id         TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		trigger_label      TEXT NOT NULL,
		user_id            TEXT NOT NULL DEFAULT '',
		items_updated      INTEGER NOT NULL,
		critical_path_days INTEGER NOT NULL,
		duration_ms        INTEGER NOT NULL,
		warnings           TEXT NOT NULL DEFAULT '[]',
		created_at         TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_calc_log_project ON timeline_calc_log(project_id)`,
}
