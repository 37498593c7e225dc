package cpm

import (
	"time"

	"github.com/jmcalloway/proforma/internal/domain"
)

// BackwardPass assigns late start/finish to every node, processing the
// topological order in reverse so successor values are final first. The late
// finish is the earliest applicable candidate: the project end bound, the
// node's own fixed finish, and one constraint per successor edge. A node
// with no candidate at all is unconstrained; its late finish defaults to its
// early finish, which deliberately gives terminal unconstrained nodes zero
// float rather than infinite slack.
func BackwardPass(sorted []*Node, projectEnd *time.Time) {
	for i := len(sorted) - 1; i >= 0; i-- {
		n := sorted[i]

		var candidates []time.Time
		if projectEnd != nil {
			candidates = append(candidates, *projectEnd)
		}
		if n.FixedFinish != nil {
			candidates = append(candidates, *n.FixedFinish)
		}
		for _, e := range n.Successors {
			candidates = append(candidates, backwardConstraint(e, n))
		}

		var lateFinish time.Time
		if len(candidates) > 0 {
			lateFinish = minTime(candidates)
		} else {
			lateFinish = *n.EarlyFinish
		}

		lf := domain.Midnight(lateFinish)
		ls := domain.AddDays(lf, -n.Duration)
		n.LateFinish = &lf
		n.LateStart = &ls
	}
}

// backwardConstraint derives the late-finish ceiling one successor edge
// imposes on node n, the mirror of forwardConstraint with the lag inverted.
// Start-to-Start and Start-to-Finish pin n's start, so the result adds back
// n's own duration.
func backwardConstraint(e *Edge, n *Node) time.Time {
	s := e.Successor
	switch e.Type {
	case domain.StartToStart:
		return domain.AddDays(*s.LateStart, n.Duration-e.LagDays)
	case domain.FinishToFinish:
		return domain.AddDays(*s.LateFinish, -e.LagDays)
	case domain.StartToFinish:
		return domain.AddDays(*s.LateFinish, n.Duration-e.LagDays)
	default: // Finish-to-Start
		return domain.AddDays(*s.LateStart, -e.LagDays)
	}
}
