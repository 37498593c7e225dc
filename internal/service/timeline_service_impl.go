package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jmcalloway/proforma/internal/contract"
	"github.com/jmcalloway/proforma/internal/cpm"
	"github.com/jmcalloway/proforma/internal/db"
	"github.com/jmcalloway/proforma/internal/domain"
	"github.com/jmcalloway/proforma/internal/repository"
)

type timelineService struct {
	projects   repository.ProjectRepo
	items      repository.BudgetItemRepo
	milestones repository.MilestoneRepo
	deps       repository.DependencyRepo
	uow        db.UnitOfWork
	locks      projectLocks
	observer   UseCaseObserver
}

// NewTimelineService wires the critical path engine to its storage
// collaborators.
func NewTimelineService(
	projects repository.ProjectRepo,
	items repository.BudgetItemRepo,
	milestones repository.MilestoneRepo,
	deps repository.DependencyRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) TimelineService {
	return &timelineService{
		projects:   projects,
		items:      items,
		milestones: milestones,
		deps:       deps,
		uow:        uow,
		observer:   useCaseObserverOrNoop(observers),
	}
}

// Recalculate runs one full calculation: load, cycle check, topological
// sort, forward pass, backward pass, float, and a transactional write-back.
// DryRun and ValidateOnly requests skip the write-back and the audit row but
// return the same computed results.
func (s *timelineService) Recalculate(ctx context.Context, req contract.RecalcRequest) (*contract.RecalcResponse, error) {
	started := time.Now()
	now := started.UTC()
	if req.Now != nil {
		now = *req.Now
	}

	mu := s.locks.get(req.ProjectID)
	mu.Lock()
	defer mu.Unlock()

	resp, err := s.recalculate(ctx, req, now, started)
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "timeline_recalc",
		Duration:  time.Since(started),
		Success:   err == nil,
		Err:       err,
		StartedAt: started,
		Fields:    recalcFields(req, resp),
	})
	return resp, err
}

func (s *timelineService) recalculate(ctx context.Context, req contract.RecalcRequest, now, started time.Time) (*contract.RecalcResponse, error) {
	project, err := s.projects.GetByID(ctx, req.ProjectID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &contract.RecalcError{
				Code:    contract.RecalcErrProjectNotFound,
				Message: fmt.Sprintf("project %s does not exist", req.ProjectID),
			}
		}
		return nil, fmt.Errorf("loading project: %w", err)
	}

	// The three input queries are independent; load them concurrently.
	var (
		items      []*domain.BudgetItem
		milestones []*domain.Milestone
		deps       []domain.Dependency
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = s.items.ListByProject(gctx, req.ProjectID)
		return err
	})
	g.Go(func() error {
		var err error
		milestones, err = s.milestones.ListByProject(gctx, req.ProjectID)
		return err
	})
	g.Go(func() error {
		var err error
		deps, err = s.deps.ListActiveByProject(gctx, req.ProjectID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("loading schedule inputs: %w", err)
	}

	graph, warnings := cpm.Build(project, items, milestones, deps)

	if cycles := cpm.DetectCycles(graph); len(cycles) > 0 {
		return nil, &contract.RecalcError{
			Code:    contract.RecalcErrCircularDependency,
			Message: fmt.Sprintf("%d circular dependency chain(s) detected", len(cycles)),
			Cycles:  cycles,
		}
	}

	sorted, err := cpm.Sort(graph)
	if err != nil {
		return nil, &contract.RecalcError{
			Code:    contract.RecalcErrIncompleteSort,
			Message: err.Error(),
		}
	}

	warnings = append(warnings, cpm.ForwardPass(sorted, graph.Start, now)...)
	cpm.BackwardPass(sorted, graph.End)
	criticalKeys, pathDays := cpm.ComputeFloat(graph)

	resp := &contract.RecalcResponse{
		ProjectID:        req.ProjectID,
		ItemsUpdated:     len(graph.Nodes),
		CriticalPathDays: pathDays,
		CriticalNodes:    keyStrings(criticalKeys),
		Warnings:         warnings,
		DryRun:           req.DryRun || req.ValidateOnly,
	}

	if !resp.DryRun {
		if err := s.persist(ctx, req, graph, resp, started); err != nil {
			return nil, err
		}
	}

	resp.ElapsedMS = time.Since(started).Milliseconds()
	return resp, nil
}

// persist writes every node's computed fields and one audit row inside a
// single transaction. Any failure rolls the whole run back.
func (s *timelineService) persist(ctx context.Context, req contract.RecalcRequest, graph *cpm.Graph, resp *contract.RecalcResponse, started time.Time) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txItems := repository.NewSQLiteBudgetItemRepo(tx)
		txMilestones := repository.NewSQLiteMilestoneRepo(tx)
		txLog := repository.NewSQLiteCalcLogRepo(tx)

		for _, key := range graph.SortedKeys() {
			n := graph.Nodes[key]
			switch key.Type {
			case domain.NodeMilestone:
				err := txMilestones.UpdateSchedule(ctx, repository.MilestoneScheduleUpdate{
					ID:        key.ID,
					EarlyDate: *n.EarlyStart,
					LateDate:  *n.LateFinish,
					FloatDays: n.FloatDays,
					Critical:  n.Critical,
				})
				if err != nil {
					return fmt.Errorf("writing milestone %s: %w", key.ID, err)
				}
			default:
				err := txItems.UpdateSchedule(ctx, repository.ItemScheduleUpdate{
					ID:             key.ID,
					EarlyStart:     *n.EarlyStart,
					EarlyFinish:    *n.EarlyFinish,
					LateStart:      *n.LateStart,
					LateFinish:     *n.LateFinish,
					FloatDays:      n.FloatDays,
					Critical:       n.Critical,
					OverwriteDates: n.TimingMethod == domain.TimingMilestone,
				})
				if err != nil {
					return fmt.Errorf("writing budget item %s: %w", key.ID, err)
				}
			}
		}

		return txLog.Create(ctx, &domain.CalcLogEntry{
			ID:               uuid.New().String(),
			ProjectID:        req.ProjectID,
			Trigger:          req.Trigger,
			UserID:           req.UserID,
			ItemsUpdated:     resp.ItemsUpdated,
			CriticalPathDays: resp.CriticalPathDays,
			DurationMS:       time.Since(started).Milliseconds(),
			Warnings:         resp.Warnings,
			CreatedAt:        time.Now().UTC(),
		})
	})
}

// Snapshot returns the persisted schedule for display.
func (s *timelineService) Snapshot(ctx context.Context, projectID string) (*contract.ScheduleSnapshot, error) {
	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("loading project: %w", err)
	}
	items, err := s.items.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("loading budget items: %w", err)
	}
	milestones, err := s.milestones.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("loading milestones: %w", err)
	}
	return &contract.ScheduleSnapshot{Project: project, Items: items, Milestones: milestones}, nil
}

func keyStrings(keys []cpm.NodeKey) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = k.String()
	}
	return out
}

func recalcFields(req contract.RecalcRequest, resp *contract.RecalcResponse) map[string]any {
	fields := map[string]any{
		"project_id": req.ProjectID,
		"trigger":    string(req.Trigger),
		"dry_run":    req.DryRun || req.ValidateOnly,
	}
	if resp != nil {
		fields["nodes"] = resp.ItemsUpdated
		fields["critical_path_days"] = resp.CriticalPathDays
	}
	return fields
}
