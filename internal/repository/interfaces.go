package repository

import (
	"context"
	"time"

	"github.com/jmcalloway/proforma/internal/domain"
)

// ItemScheduleUpdate carries the computed schedule fields written back to one
// budget item. OverwriteDates is set for milestone-driven items, whose stored
// start/end dates become the computed early pair.
type ItemScheduleUpdate struct {
	ID             string
	EarlyStart     time.Time
	EarlyFinish    time.Time
	LateStart      time.Time
	LateFinish     time.Time
	FloatDays      *int
	Critical       bool
	OverwriteDates bool
}

// MilestoneScheduleUpdate carries the computed schedule fields written back to
// one milestone. The milestone's current date is always overwritten with the
// early date.
type MilestoneScheduleUpdate struct {
	ID        string
	EarlyDate time.Time
	LateDate  time.Time
	FloatDays *int
	Critical  bool
}

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
}

type BudgetItemRepo interface {
	Create(ctx context.Context, b *domain.BudgetItem) error
	GetByID(ctx context.Context, id string) (*domain.BudgetItem, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.BudgetItem, error)
	Update(ctx context.Context, b *domain.BudgetItem) error
	UpdateSchedule(ctx context.Context, up ItemScheduleUpdate) error
	Delete(ctx context.Context, id string) error
}

type MilestoneRepo interface {
	Create(ctx context.Context, m *domain.Milestone) error
	GetByID(ctx context.Context, id string) (*domain.Milestone, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Milestone, error)
	Update(ctx context.Context, m *domain.Milestone) error
	UpdateSchedule(ctx context.Context, up MilestoneScheduleUpdate) error
	Delete(ctx context.Context, id string) error
}

type DependencyRepo interface {
	Create(ctx context.Context, d *domain.Dependency) error
	ListActiveByProject(ctx context.Context, projectID string) ([]domain.Dependency, error)
	Delete(ctx context.Context, id string) error
}

type CalcLogRepo interface {
	Create(ctx context.Context, e *domain.CalcLogEntry) error
	ListByProject(ctx context.Context, projectID string) ([]*domain.CalcLogEntry, error)
}
