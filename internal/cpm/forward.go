package cpm

import (
	"fmt"
	"time"

	"github.com/jmcalloway/proforma/internal/domain"
)

// ForwardPass assigns early start/finish to every node. Nodes must arrive in
// topological order so predecessor values are final before a node is
// computed. The early start is the latest of every applicable candidate: the
// project start bound, the node's own fixed start (when the node is timing
// locked or not milestone-driven), and one constraint per predecessor edge.
// A node with no candidate at all falls back to its fixed start, the project
// start, then now; the last resort emits a warning since it means the record
// has no usable date anywhere.
func ForwardPass(sorted []*Node, projectStart *time.Time, now time.Time) []string {
	var warnings []string

	for _, n := range sorted {
		var candidates []time.Time
		if projectStart != nil {
			candidates = append(candidates, *projectStart)
		}
		if n.FixedStart != nil && (n.TimingLocked || n.TimingMethod != domain.TimingMilestone) {
			candidates = append(candidates, *n.FixedStart)
		}
		for _, e := range n.Predecessors {
			candidates = append(candidates, forwardConstraint(e, n))
		}

		var earlyStart time.Time
		switch {
		case len(candidates) > 0:
			earlyStart = maxTime(candidates)
		case n.FixedStart != nil:
			earlyStart = *n.FixedStart
		default:
			earlyStart = domain.Midnight(now)
			warnings = append(warnings, fmt.Sprintf("%s has no date anchor, defaulting start to today", n.Key))
		}

		es := domain.Midnight(earlyStart)
		ef := domain.AddDays(es, n.Duration)
		n.EarlyStart = &es
		n.EarlyFinish = &ef
	}
	return warnings
}

// forwardConstraint derives the early-start floor one predecessor edge
// imposes on node n. Finish-to-Finish and Start-to-Finish constrain the
// finish, so the result backs off by n's own duration.
func forwardConstraint(e *Edge, n *Node) time.Time {
	p := e.Predecessor
	switch e.Type {
	case domain.StartToStart:
		return domain.AddDays(*p.EarlyStart, e.LagDays)
	case domain.FinishToFinish:
		return domain.AddDays(*p.EarlyFinish, e.LagDays-n.Duration)
	case domain.StartToFinish:
		return domain.AddDays(*p.EarlyStart, e.LagDays-n.Duration)
	default: // Finish-to-Start
		return domain.AddDays(*p.EarlyFinish, e.LagDays)
	}
}

func maxTime(ts []time.Time) time.Time {
	m := ts[0]
	for _, t := range ts[1:] {
		if t.After(m) {
			m = t
		}
	}
	return m
}

func minTime(ts []time.Time) time.Time {
	m := ts[0]
	for _, t := range ts[1:] {
		if t.Before(m) {
			m = t
		}
	}
	return m
}
