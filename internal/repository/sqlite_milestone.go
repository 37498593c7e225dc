package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmcalloway/proforma/internal/db"
	"github.com/jmcalloway/proforma/internal/domain"
)

const milestoneColumns = `id, project_id, name, milestone_date, planned_date, baseline_date,
		status, percent_complete, early_date, late_date, float_days, is_critical,
		created_at, updated_at`

// SQLiteMilestoneRepo implements MilestoneRepo using a SQLite database.
type SQLiteMilestoneRepo struct {
	db db.DBTX
}

// NewSQLiteMilestoneRepo creates a new SQLiteMilestoneRepo.
func NewSQLiteMilestoneRepo(conn db.DBTX) *SQLiteMilestoneRepo {
	return &SQLiteMilestoneRepo{db: conn}
}

func (r *SQLiteMilestoneRepo) Create(ctx context.Context, m *domain.Milestone) error {
	query := `INSERT INTO milestones (id, project_id, name, milestone_date, planned_date, baseline_date,
		status, percent_complete, early_date, late_date, float_days, is_critical, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		m.ID,
		m.ProjectID,
		m.Name,
		nullableTimeToString(m.MilestoneDate, domain.DateLayout),
		nullableTimeToString(m.PlannedDate, domain.DateLayout),
		nullableTimeToString(m.BaselineDate, domain.DateLayout),
		string(m.Status),
		m.PercentComplete,
		nullableTimeToString(m.EarlyDate, domain.DateLayout),
		nullableTimeToString(m.LateDate, domain.DateLayout),
		nullableIntToValue(m.FloatDays),
		boolToInt(m.Critical),
		m.CreatedAt.Format(time.RFC3339),
		m.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting milestone: %w", err)
	}
	return nil
}

func (r *SQLiteMilestoneRepo) GetByID(ctx context.Context, id string) (*domain.Milestone, error) {
	query := `SELECT ` + milestoneColumns + ` FROM milestones WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	m, err := scanMilestoneFrom(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("milestone not found: %w", err)
	}
	return m, err
}

func (r *SQLiteMilestoneRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.Milestone, error) {
	query := `SELECT ` + milestoneColumns + ` FROM milestones WHERE project_id = ? ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing milestones: %w", err)
	}
	defer rows.Close()

	var milestones []*domain.Milestone
	for rows.Next() {
		m, err := scanMilestoneFrom(rows)
		if err != nil {
			return nil, err
		}
		milestones = append(milestones, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating milestones: %w", err)
	}
	return milestones, nil
}

func (r *SQLiteMilestoneRepo) Update(ctx context.Context, m *domain.Milestone) error {
	query := `UPDATE milestones SET name = ?, milestone_date = ?, planned_date = ?, baseline_date = ?,
		status = ?, percent_complete = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		m.Name,
		nullableTimeToString(m.MilestoneDate, domain.DateLayout),
		nullableTimeToString(m.PlannedDate, domain.DateLayout),
		nullableTimeToString(m.BaselineDate, domain.DateLayout),
		string(m.Status),
		m.PercentComplete,
		m.UpdatedAt.Format(time.RFC3339),
		m.ID,
	)
	if err != nil {
		return fmt.Errorf("updating milestone: %w", err)
	}
	return requireRowAffected(res, "milestone", m.ID)
}

// UpdateSchedule writes the computed schedule fields and promotes the early
// date to the milestone's current date.
func (r *SQLiteMilestoneRepo) UpdateSchedule(ctx context.Context, up MilestoneScheduleUpdate) error {
	query := `UPDATE milestones SET early_date = ?, late_date = ?, float_days = ?,
		is_critical = ?, milestone_date = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		up.EarlyDate.Format(domain.DateLayout),
		up.LateDate.Format(domain.DateLayout),
		nullableIntToValue(up.FloatDays),
		boolToInt(up.Critical),
		up.EarlyDate.Format(domain.DateLayout),
		time.Now().UTC().Format(time.RFC3339),
		up.ID,
	)
	if err != nil {
		return fmt.Errorf("updating milestone schedule: %w", err)
	}
	return requireRowAffected(res, "milestone", up.ID)
}

func (r *SQLiteMilestoneRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM milestones WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting milestone: %w", err)
	}
	return nil
}

func scanMilestoneFrom(s rowScanner) (*domain.Milestone, error) {
	var m domain.Milestone
	var milestoneDate, plannedDate, baselineDate, earlyDate, lateDate sql.NullString
	var floatDays sql.NullInt64
	var status, createdAt, updatedAt string
	var isCritical int

	err := s.Scan(&m.ID, &m.ProjectID, &m.Name, &milestoneDate, &plannedDate, &baselineDate,
		&status, &m.PercentComplete, &earlyDate, &lateDate, &floatDays, &isCritical,
		&createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning milestone: %w", err)
	}

	m.MilestoneDate = parseNullableTime(milestoneDate, domain.DateLayout)
	m.PlannedDate = parseNullableTime(plannedDate, domain.DateLayout)
	m.BaselineDate = parseNullableTime(baselineDate, domain.DateLayout)
	m.Status = domain.MilestoneStatus(status)
	m.EarlyDate = parseNullableTime(earlyDate, domain.DateLayout)
	m.LateDate = parseNullableTime(lateDate, domain.DateLayout)
	m.FloatDays = parseNullableInt(floatDays)
	m.Critical = intToBool(isCritical)
	m.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	m.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return &m, nil
}
