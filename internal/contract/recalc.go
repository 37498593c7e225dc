// Package contract defines the request/response types and error codes the
// timeline scheduler exposes to its callers (CLI today, API layer tomorrow).
package contract

import (
	"fmt"
	"strings"
	"time"

	"github.com/jmcalloway/proforma/internal/domain"
)

// RecalcRequest triggers one timeline calculation run for a project.
// DryRun and ValidateOnly both suppress persistence; ValidateOnly exists so
// callers can distinguish "preview the schedule" from "just check the graph".
type RecalcRequest struct {
	ProjectID    string
	Trigger      domain.CalcTrigger
	UserID       string
	DryRun       bool
	ValidateOnly bool

	// Now overrides the clock for the forward-pass fallback. Tests set it;
	// production callers leave it nil.
	Now *time.Time
}

// NewRecalcRequest builds a request with the given trigger.
func NewRecalcRequest(projectID string, trigger domain.CalcTrigger) RecalcRequest {
	return RecalcRequest{ProjectID: projectID, Trigger: trigger}
}

// RecalcResponse reports the outcome of one calculation run.
type RecalcResponse struct {
	ProjectID        string
	ItemsUpdated     int
	CriticalPathDays int
	CriticalNodes    []string
	Warnings         []string
	ElapsedMS        int64
	DryRun           bool
}

type RecalcErrorCode string

const (
	RecalcErrProjectNotFound    RecalcErrorCode = "PROJECT_NOT_FOUND"
	RecalcErrCircularDependency RecalcErrorCode = "CIRCULAR_DEPENDENCY"
	RecalcErrIncompleteSort     RecalcErrorCode = "INCOMPLETE_SORT"
)

// RecalcError is a caller-visible fatal error. No schedule fields are written
// when one is returned.
type RecalcError struct {
	Code    RecalcErrorCode
	Message string
	// Cycles enumerates every circular chain when Code is
	// RecalcErrCircularDependency.
	Cycles []string
}

func (e *RecalcError) Error() string {
	if len(e.Cycles) > 0 {
		return fmt.Sprintf("%s: %s: %s", e.Code, e.Message, strings.Join(e.Cycles, "; "))
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ScheduleSnapshot is a read-only view of a project's persisted schedule,
// used for display.
type ScheduleSnapshot struct {
	Project    *domain.Project
	Items      []*domain.BudgetItem
	Milestones []*domain.Milestone
}
