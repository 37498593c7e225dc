package service

import (
	"context"

	"github.com/jmcalloway/proforma/internal/contract"
	"github.com/jmcalloway/proforma/internal/domain"
)

// TimelineService is the single entry point for the critical path engine.
type TimelineService interface {
	Recalculate(ctx context.Context, req contract.RecalcRequest) (*contract.RecalcResponse, error)
	Snapshot(ctx context.Context, projectID string) (*contract.ScheduleSnapshot, error)
}

type ProjectService interface {
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Project, error)
}
