package cpm

import (
	"fmt"

	"github.com/jmcalloway/proforma/internal/domain"
)

// Build assembles the in-memory graph for one calculation run. Dependencies
// whose endpoints are not present in the graph are dropped, not errors: the
// underlying record may have been deleted independently. Each dropped edge
// produces a warning so stale data stays visible in the audit log.
func Build(project *domain.Project, items []*domain.BudgetItem, milestones []*domain.Milestone, deps []domain.Dependency) (*Graph, []string) {
	g := &Graph{Nodes: make(map[NodeKey]*Node, len(items)+len(milestones))}
	var warnings []string

	for _, b := range items {
		key := NodeKey{Type: domain.NodeBudgetItem, ID: b.ID}
		g.Nodes[key] = &Node{
			Key:          key,
			Name:         b.Name,
			Duration:     b.DurationDays(),
			FixedStart:   b.ResolvedStart(),
			FixedFinish:  b.ResolvedFinish(),
			TimingMethod: b.TimingMethod,
			TimingLocked: b.TimingLocked,
			OrigStart:    domain.CoalesceDate(b.StartDate),
			OrigFinish:   domain.CoalesceDate(b.EndDate),
		}
	}

	for _, m := range milestones {
		key := NodeKey{Type: domain.NodeMilestone, ID: m.ID}
		anchor := m.AnchorDate()
		// The anchor is a fixed-start floor only. A fixed finish would pin the
		// backward pass to the anchor and zero out float for every terminal
		// milestone.
		g.Nodes[key] = &Node{
			Key:        key,
			Name:       m.Name,
			Duration:   0,
			FixedStart: anchor,
			OrigStart:  anchor,
			OrigFinish: anchor,
		}
	}

	for _, d := range deps {
		predKey := NodeKey{Type: d.PredecessorType, ID: d.PredecessorID}
		succKey := NodeKey{Type: d.SuccessorType, ID: d.SuccessorID}
		pred, predOK := g.Nodes[predKey]
		succ, succOK := g.Nodes[succKey]
		if !predOK || !succOK {
			missing := predKey
			if predOK {
				missing = succKey
			}
			warnings = append(warnings, fmt.Sprintf("dropped dependency %s: %s not in graph", d.ID, missing))
			continue
		}
		edge := &Edge{
			ID:          d.ID,
			Type:        d.Type,
			LagDays:     d.LagDays,
			Hard:        d.Hard,
			Predecessor: pred,
			Successor:   succ,
		}
		pred.Successors = append(pred.Successors, edge)
		succ.Predecessors = append(succ.Predecessors, edge)
	}

	g.Start = domain.CoalesceDate(project.AnalysisStart)
	g.End = domain.CoalesceDate(project.AnalysisEnd)
	for _, key := range g.SortedKeys() {
		n := g.Nodes[key]
		g.Start = domain.MinDate(g.Start, n.OrigStart)
		g.End = domain.MaxDate(g.End, n.OrigFinish)
	}

	return g, warnings
}
