package domain

import "time"

// BudgetItem is a budget line item with a position on the project timeline.
// Start/End are the item's official dates; Baseline dates are the original
// underwriting assumptions. The Early/Late/Float/Critical fields are outputs
// of the timeline calculation and are never edited directly.
type BudgetItem struct {
	ID        string
	ProjectID string
	Name      string

	StartDate     *time.Time
	EndDate       *time.Time
	BaselineStart *time.Time
	BaselineEnd   *time.Time

	// PeriodsToComplete is a stored duration in days, used when no date pair
	// is available.
	PeriodsToComplete *int

	TimingMethod TimingMethod
	TimingLocked bool

	Status          ItemStatus
	PercentComplete float64

	// Computed schedule fields.
	EarlyStart  *time.Time
	EarlyFinish *time.Time
	LateStart   *time.Time
	LateFinish  *time.Time
	FloatDays   *int
	Critical    bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ResolvedStart is the item's effective start, preferring the explicit date
// over the baseline.
func (b *BudgetItem) ResolvedStart() *time.Time {
	return CoalesceDate(b.StartDate, b.BaselineStart)
}

// ResolvedFinish is the item's effective finish, preferring the explicit date
// over the baseline.
func (b *BudgetItem) ResolvedFinish() *time.Time {
	return CoalesceDate(b.EndDate, b.BaselineEnd)
}

// DurationDays resolves the item's duration: the day difference of the
// resolved date pair when both exist, else the stored period count, else 1.
// Never less than 1 so date arithmetic stays well-defined.
func (b *BudgetItem) DurationDays() int {
	start, finish := b.ResolvedStart(), b.ResolvedFinish()
	if start != nil && finish != nil {
		if d := DaysBetween(*start, *finish); d >= 1 {
			return d
		}
		return 1
	}
	if b.PeriodsToComplete != nil && *b.PeriodsToComplete >= 1 {
		return *b.PeriodsToComplete
	}
	return 1
}
