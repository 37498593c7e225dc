package cpm

import (
	"time"

	"github.com/jmcalloway/proforma/internal/domain"
)

// Shared graph-building helpers for the cpm tests. IDs are explicit so node
// ordering and cycle descriptions are deterministic.

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dptr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func iptr(v int) *int { return &v }

func project(opts ...func(*domain.Project)) *domain.Project {
	p := &domain.Project{ID: "proj", Name: "Test Project", Status: domain.ProjectActive}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func withWindow(start, end *time.Time) func(*domain.Project) {
	return func(p *domain.Project) {
		p.AnalysisStart = start
		p.AnalysisEnd = end
	}
}

func item(id string, opts ...func(*domain.BudgetItem)) *domain.BudgetItem {
	b := &domain.BudgetItem{
		ID:           id,
		ProjectID:    "proj",
		Name:         id,
		TimingMethod: domain.TimingManual,
		Status:       domain.ItemPlanned,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func withPeriods(days int) func(*domain.BudgetItem) {
	return func(b *domain.BudgetItem) { b.PeriodsToComplete = &days }
}

func withDates(start, end time.Time) func(*domain.BudgetItem) {
	return func(b *domain.BudgetItem) {
		b.StartDate = &start
		b.EndDate = &end
	}
}

func milestone(id string, anchor *time.Time) *domain.Milestone {
	return &domain.Milestone{
		ID:          id,
		ProjectID:   "proj",
		Name:        id,
		PlannedDate: anchor,
		Status:      domain.MilestonePending,
	}
}

func dep(id, predID, succID string, depType domain.DependencyType, lag int) domain.Dependency {
	return domain.Dependency{
		ID:              id,
		ProjectID:       "proj",
		PredecessorType: domain.NodeBudgetItem,
		PredecessorID:   predID,
		SuccessorType:   domain.NodeBudgetItem,
		SuccessorID:     succID,
		Type:            depType,
		LagDays:         lag,
		Active:          true,
	}
}

func itemKey(id string) NodeKey {
	return NodeKey{Type: domain.NodeBudgetItem, ID: id}
}

func milestoneKey(id string) NodeKey {
	return NodeKey{Type: domain.NodeMilestone, ID: id}
}

// runPasses executes the full pipeline after a successful build, failing the
// caller's assertions via returned values rather than t.Fatal so tests can
// mix and match stages.
func runPasses(g *Graph, now time.Time) ([]string, []NodeKey, int, error) {
	sorted, err := Sort(g)
	if err != nil {
		return nil, nil, 0, err
	}
	warnings := ForwardPass(sorted, g.Start, now)
	BackwardPass(sorted, g.End)
	critical, days := ComputeFloat(g)
	return warnings, critical, days, nil
}
