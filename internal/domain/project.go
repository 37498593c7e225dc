package domain

import "time"

// Project is a development deal whose budget line items and milestones are
// scheduled against its analysis window.
type Project struct {
	ID            string
	Name          string
	AnalysisStart *time.Time
	AnalysisEnd   *time.Time
	Status        ProjectStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// DisplayID returns a short identifier for CLI output: the first 8 characters
// of the UUID.
func (p *Project) DisplayID() string {
	if len(p.ID) >= 8 {
		return p.ID[:8]
	}
	return p.ID
}
