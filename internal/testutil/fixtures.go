package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/jmcalloway/proforma/internal/domain"
)

// Date builds a midnight-UTC date, the form all fixture dates take.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DatePtr is Date returning a pointer, for optional fields.
func DatePtr(year int, month time.Month, day int) *time.Time {
	d := Date(year, month, day)
	return &d
}

// Project options
type ProjectOption func(*domain.Project)

func WithAnalysisWindow(start, end time.Time) ProjectOption {
	return func(p *domain.Project) {
		p.AnalysisStart = &start
		p.AnalysisEnd = &end
	}
}

func WithAnalysisStart(start time.Time) ProjectOption {
	return func(p *domain.Project) {
		p.AnalysisStart = &start
	}
}

func WithProjectStatus(s domain.ProjectStatus) ProjectOption {
	return func(p *domain.Project) {
		p.Status = s
	}
}

func NewTestProject(name string, opts ...ProjectOption) *domain.Project {
	now := time.Now().UTC()
	p := &domain.Project{
		ID:        uuid.New().String(),
		Name:      name,
		Status:    domain.ProjectActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// BudgetItem options
type ItemOption func(*domain.BudgetItem)

func WithDates(start, end time.Time) ItemOption {
	return func(b *domain.BudgetItem) {
		b.StartDate = &start
		b.EndDate = &end
	}
}

func WithBaseline(start, end time.Time) ItemOption {
	return func(b *domain.BudgetItem) {
		b.BaselineStart = &start
		b.BaselineEnd = &end
	}
}

func WithPeriods(days int) ItemOption {
	return func(b *domain.BudgetItem) {
		b.PeriodsToComplete = &days
	}
}

func WithTimingMethod(m domain.TimingMethod) ItemOption {
	return func(b *domain.BudgetItem) {
		b.TimingMethod = m
	}
}

func WithTimingLocked() ItemOption {
	return func(b *domain.BudgetItem) {
		b.TimingLocked = true
	}
}

func NewTestBudgetItem(projectID, name string, opts ...ItemOption) *domain.BudgetItem {
	now := time.Now().UTC()
	b := &domain.BudgetItem{
		ID:           uuid.New().String(),
		ProjectID:    projectID,
		Name:         name,
		TimingMethod: domain.TimingManual,
		Status:       domain.ItemPlanned,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Milestone options
type MilestoneOption func(*domain.Milestone)

func WithMilestoneDate(d time.Time) MilestoneOption {
	return func(m *domain.Milestone) {
		m.MilestoneDate = &d
	}
}

func WithPlannedDate(d time.Time) MilestoneOption {
	return func(m *domain.Milestone) {
		m.PlannedDate = &d
	}
}

func WithBaselineDate(d time.Time) MilestoneOption {
	return func(m *domain.Milestone) {
		m.BaselineDate = &d
	}
}

func NewTestMilestone(projectID, name string, opts ...MilestoneOption) *domain.Milestone {
	now := time.Now().UTC()
	m := &domain.Milestone{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Name:      name,
		Status:    domain.MilestonePending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Dependency options
type DepOption func(*domain.Dependency)

func WithDepType(t domain.DependencyType) DepOption {
	return func(d *domain.Dependency) {
		d.Type = t
	}
}

func WithLag(days int) DepOption {
	return func(d *domain.Dependency) {
		d.LagDays = days
	}
}

func WithHardConstraint() DepOption {
	return func(d *domain.Dependency) {
		d.Hard = true
	}
}

// NewTestDependency links two budget items Finish-to-Start with no lag
// unless options say otherwise.
func NewTestDependency(projectID string, predType domain.NodeType, predID string, succType domain.NodeType, succID string, opts ...DepOption) *domain.Dependency {
	d := &domain.Dependency{
		ID:              uuid.New().String(),
		ProjectID:       projectID,
		PredecessorType: predType,
		PredecessorID:   predID,
		SuccessorType:   succType,
		SuccessorID:     succID,
		Type:            domain.FinishToStart,
		Active:          true,
		CreatedAt:       time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}
