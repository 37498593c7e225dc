package domain

import "time"

// Milestone is a zero-duration point on the project timeline. MilestoneDate
// is the current official date; Planned and Baseline are earlier estimates.
type Milestone struct {
	ID        string
	ProjectID string
	Name      string

	MilestoneDate *time.Time
	PlannedDate   *time.Time
	BaselineDate  *time.Time

	Status          MilestoneStatus
	PercentComplete float64

	// Computed schedule fields.
	EarlyDate *time.Time
	LateDate  *time.Time
	FloatDays *int
	Critical  bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AnchorDate resolves the milestone's anchor via the priority chain:
// current date, else planned date, else baseline date. Nil when the milestone
// has no date at all.
func (m *Milestone) AnchorDate() *time.Time {
	return CoalesceDate(m.MilestoneDate, m.PlannedDate, m.BaselineDate)
}
