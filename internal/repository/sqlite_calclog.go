package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmcalloway/proforma/internal/db"
	"github.com/jmcalloway/proforma/internal/domain"
)

// SQLiteCalcLogRepo implements CalcLogRepo using a SQLite database.
type SQLiteCalcLogRepo struct {
	db db.DBTX
}

// NewSQLiteCalcLogRepo creates a new SQLiteCalcLogRepo.
func NewSQLiteCalcLogRepo(conn db.DBTX) *SQLiteCalcLogRepo {
	return &SQLiteCalcLogRepo{db: conn}
}

func (r *SQLiteCalcLogRepo) Create(ctx context.Context, e *domain.CalcLogEntry) error {
	warnings := e.Warnings
	if warnings == nil {
		warnings = []string{}
	}
	warningsJSON, err := json.Marshal(warnings)
	if err != nil {
		return fmt.Errorf("encoding warnings: %w", err)
	}

	query := `INSERT INTO timeline_calc_log (id, project_id, trigger_label, user_id,
		items_updated, critical_path_days, duration_ms, warnings, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		e.ID,
		e.ProjectID,
		string(e.Trigger),
		e.UserID,
		e.ItemsUpdated,
		e.CriticalPathDays,
		e.DurationMS,
		string(warningsJSON),
		e.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting calc log entry: %w", err)
	}
	return nil
}

func (r *SQLiteCalcLogRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.CalcLogEntry, error) {
	query := `SELECT id, project_id, trigger_label, user_id, items_updated,
		critical_path_days, duration_ms, warnings, created_at
		FROM timeline_calc_log WHERE project_id = ? ORDER BY created_at DESC, id`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing calc log: %w", err)
	}
	defer rows.Close()

	var entries []*domain.CalcLogEntry
	for rows.Next() {
		var e domain.CalcLogEntry
		var trigger, warningsJSON, createdAt string
		if err := rows.Scan(&e.ID, &e.ProjectID, &trigger, &e.UserID, &e.ItemsUpdated,
			&e.CriticalPathDays, &e.DurationMS, &warningsJSON, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning calc log entry: %w", err)
		}
		e.Trigger = domain.CalcTrigger(trigger)
		if err := json.Unmarshal([]byte(warningsJSON), &e.Warnings); err != nil {
			return nil, fmt.Errorf("decoding warnings: %w", err)
		}
		e.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating calc log: %w", err)
	}
	return entries, nil
}
