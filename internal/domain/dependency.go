package domain

import "time"

// Dependency is a directed, typed, lagged edge between two schedulable
// records. Endpoints are composite keys (type + id) because budget items and
// milestones live in separate tables.
type Dependency struct {
	ID        string
	ProjectID string

	PredecessorType NodeType
	PredecessorID   string
	SuccessorType   NodeType
	SuccessorID     string

	Type    DependencyType
	LagDays int
	Hard    bool
	Active  bool

	CreatedAt time.Time
}

// CalcLogEntry is one audit row per timeline calculation run.
type CalcLogEntry struct {
	ID               string
	ProjectID        string
	Trigger          CalcTrigger
	UserID           string
	ItemsUpdated     int
	CriticalPathDays int
	DurationMS       int64
	Warnings         []string
	CreatedAt        time.Time
}
