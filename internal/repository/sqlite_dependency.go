package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmcalloway/proforma/internal/db"
	"github.com/jmcalloway/proforma/internal/domain"
)

// SQLiteDependencyRepo implements DependencyRepo using a SQLite database.
type SQLiteDependencyRepo struct {
	db db.DBTX
}

// NewSQLiteDependencyRepo creates a new SQLiteDependencyRepo.
func NewSQLiteDependencyRepo(conn db.DBTX) *SQLiteDependencyRepo {
	return &SQLiteDependencyRepo{db: conn}
}

func (r *SQLiteDependencyRepo) Create(ctx context.Context, d *domain.Dependency) error {
	query := `INSERT INTO dependencies (id, project_id, predecessor_type, predecessor_id,
		successor_type, successor_id, dep_type, lag_days, hard_constraint, active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		d.ID,
		d.ProjectID,
		string(d.PredecessorType),
		d.PredecessorID,
		string(d.SuccessorType),
		d.SuccessorID,
		string(d.Type),
		d.LagDays,
		boolToInt(d.Hard),
		boolToInt(d.Active),
		d.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting dependency: %w", err)
	}
	return nil
}

func (r *SQLiteDependencyRepo) ListActiveByProject(ctx context.Context, projectID string) ([]domain.Dependency, error) {
	query := `SELECT id, project_id, predecessor_type, predecessor_id,
		successor_type, successor_id, dep_type, lag_days, hard_constraint, active, created_at
		FROM dependencies WHERE project_id = ? AND active = 1 ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing dependencies: %w", err)
	}
	defer rows.Close()
	return r.scanDependencies(rows)
}

func (r *SQLiteDependencyRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM dependencies WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting dependency: %w", err)
	}
	return nil
}

// scanDependencies scans multiple dependency rows from *sql.Rows.
func (r *SQLiteDependencyRepo) scanDependencies(rows *sql.Rows) ([]domain.Dependency, error) {
	var deps []domain.Dependency
	for rows.Next() {
		var d domain.Dependency
		var predType, succType, depType, createdAt string
		var hard, active int
		if err := rows.Scan(&d.ID, &d.ProjectID, &predType, &d.PredecessorID,
			&succType, &d.SuccessorID, &depType, &d.LagDays, &hard, &active, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning dependency: %w", err)
		}
		d.PredecessorType = domain.NodeType(predType)
		d.SuccessorType = domain.NodeType(succType)
		d.Type = domain.DependencyType(depType)
		d.Hard = intToBool(hard)
		d.Active = intToBool(active)
		d.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		deps = append(deps, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating dependencies: %w", err)
	}
	return deps, nil
}
