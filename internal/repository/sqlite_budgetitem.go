package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmcalloway/proforma/internal/db"
	"github.com/jmcalloway/proforma/internal/domain"
)

// budgetItemColumns is the canonical SELECT column list for budget_items.
const budgetItemColumns = `id, project_id, name, start_date, end_date,
		baseline_start, baseline_end, periods_to_complete,
		timing_method, timing_locked, status, percent_complete,
		early_start, early_finish, late_start, late_finish, float_days, is_critical,
		created_at, updated_at`

// SQLiteBudgetItemRepo implements BudgetItemRepo using a SQLite database.
type SQLiteBudgetItemRepo struct {
	db db.DBTX
}

// NewSQLiteBudgetItemRepo creates a new SQLiteBudgetItemRepo.
func NewSQLiteBudgetItemRepo(conn db.DBTX) *SQLiteBudgetItemRepo {
	return &SQLiteBudgetItemRepo{db: conn}
}

func (r *SQLiteBudgetItemRepo) Create(ctx context.Context, b *domain.BudgetItem) error {
	query := `INSERT INTO budget_items (id, project_id, name, start_date, end_date,
		baseline_start, baseline_end, periods_to_complete,
		timing_method, timing_locked, status, percent_complete,
		early_start, early_finish, late_start, late_finish, float_days, is_critical,
		created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		b.ID,
		b.ProjectID,
		b.Name,
		nullableTimeToString(b.StartDate, domain.DateLayout),
		nullableTimeToString(b.EndDate, domain.DateLayout),
		nullableTimeToString(b.BaselineStart, domain.DateLayout),
		nullableTimeToString(b.BaselineEnd, domain.DateLayout),
		nullableIntToValue(b.PeriodsToComplete),
		string(b.TimingMethod),
		boolToInt(b.TimingLocked),
		string(b.Status),
		b.PercentComplete,
		nullableTimeToString(b.EarlyStart, domain.DateLayout),
		nullableTimeToString(b.EarlyFinish, domain.DateLayout),
		nullableTimeToString(b.LateStart, domain.DateLayout),
		nullableTimeToString(b.LateFinish, domain.DateLayout),
		nullableIntToValue(b.FloatDays),
		boolToInt(b.Critical),
		b.CreatedAt.Format(time.RFC3339),
		b.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting budget item: %w", err)
	}
	return nil
}

func (r *SQLiteBudgetItemRepo) GetByID(ctx context.Context, id string) (*domain.BudgetItem, error) {
	query := `SELECT ` + budgetItemColumns + ` FROM budget_items WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	b, err := scanBudgetItemFrom(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("budget item not found: %w", err)
	}
	return b, err
}

func (r *SQLiteBudgetItemRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.BudgetItem, error) {
	query := `SELECT ` + budgetItemColumns + ` FROM budget_items WHERE project_id = ? ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing budget items: %w", err)
	}
	defer rows.Close()

	var items []*domain.BudgetItem
	for rows.Next() {
		b, err := scanBudgetItemFrom(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating budget items: %w", err)
	}
	return items, nil
}

func (r *SQLiteBudgetItemRepo) Update(ctx context.Context, b *domain.BudgetItem) error {
	query := `UPDATE budget_items SET name = ?, start_date = ?, end_date = ?,
		baseline_start = ?, baseline_end = ?, periods_to_complete = ?,
		timing_method = ?, timing_locked = ?, status = ?, percent_complete = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		b.Name,
		nullableTimeToString(b.StartDate, domain.DateLayout),
		nullableTimeToString(b.EndDate, domain.DateLayout),
		nullableTimeToString(b.BaselineStart, domain.DateLayout),
		nullableTimeToString(b.BaselineEnd, domain.DateLayout),
		nullableIntToValue(b.PeriodsToComplete),
		string(b.TimingMethod),
		boolToInt(b.TimingLocked),
		string(b.Status),
		b.PercentComplete,
		b.UpdatedAt.Format(time.RFC3339),
		b.ID,
	)
	if err != nil {
		return fmt.Errorf("updating budget item: %w", err)
	}
	return requireRowAffected(res, "budget item", b.ID)
}

// UpdateSchedule writes the computed schedule fields. When OverwriteDates is
// set the item's official start/end dates become the computed early pair;
// this is how milestone-driven items receive their dates.
func (r *SQLiteBudgetItemRepo) UpdateSchedule(ctx context.Context, up ItemScheduleUpdate) error {
	query := `UPDATE budget_items SET early_start = ?, early_finish = ?,
		late_start = ?, late_finish = ?, float_days = ?, is_critical = ?, updated_at = ?`
	args := []any{
		up.EarlyStart.Format(domain.DateLayout),
		up.EarlyFinish.Format(domain.DateLayout),
		up.LateStart.Format(domain.DateLayout),
		up.LateFinish.Format(domain.DateLayout),
		nullableIntToValue(up.FloatDays),
		boolToInt(up.Critical),
		time.Now().UTC().Format(time.RFC3339),
	}
	if up.OverwriteDates {
		query += `, start_date = ?, end_date = ?`
		args = append(args,
			up.EarlyStart.Format(domain.DateLayout),
			up.EarlyFinish.Format(domain.DateLayout),
		)
	}
	query += ` WHERE id = ?`
	args = append(args, up.ID)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating budget item schedule: %w", err)
	}
	return requireRowAffected(res, "budget item", up.ID)
}

func (r *SQLiteBudgetItemRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM budget_items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting budget item: %w", err)
	}
	return nil
}

func scanBudgetItemFrom(s rowScanner) (*domain.BudgetItem, error) {
	var b domain.BudgetItem
	var startDate, endDate, baselineStart, baselineEnd sql.NullString
	var earlyStart, earlyFinish, lateStart, lateFinish sql.NullString
	var periods, floatDays sql.NullInt64
	var timingMethod, status, createdAt, updatedAt string
	var timingLocked, isCritical int

	err := s.Scan(&b.ID, &b.ProjectID, &b.Name, &startDate, &endDate,
		&baselineStart, &baselineEnd, &periods,
		&timingMethod, &timingLocked, &status, &b.PercentComplete,
		&earlyStart, &earlyFinish, &lateStart, &lateFinish, &floatDays, &isCritical,
		&createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning budget item: %w", err)
	}

	b.StartDate = parseNullableTime(startDate, domain.DateLayout)
	b.EndDate = parseNullableTime(endDate, domain.DateLayout)
	b.BaselineStart = parseNullableTime(baselineStart, domain.DateLayout)
	b.BaselineEnd = parseNullableTime(baselineEnd, domain.DateLayout)
	b.PeriodsToComplete = parseNullableInt(periods)
	b.TimingMethod = domain.TimingMethod(timingMethod)
	b.TimingLocked = intToBool(timingLocked)
	b.Status = domain.ItemStatus(status)
	b.EarlyStart = parseNullableTime(earlyStart, domain.DateLayout)
	b.EarlyFinish = parseNullableTime(earlyFinish, domain.DateLayout)
	b.LateStart = parseNullableTime(lateStart, domain.DateLayout)
	b.LateFinish = parseNullableTime(lateFinish, domain.DateLayout)
	b.FloatDays = parseNullableInt(floatDays)
	b.Critical = intToBool(isCritical)
	b.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	b.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return &b, nil
}
