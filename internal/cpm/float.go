package cpm

import "github.com/jmcalloway/proforma/internal/domain"

// ComputeFloat derives each node's float in whole days, clamped at zero, and
// marks zero-float nodes critical. It returns the critical node keys in
// stable order and the critical path length: the sum of durations across all
// critical nodes. Nodes missing either finish date keep a nil float and are
// never critical; that state should not occur after a completed backward
// pass.
func ComputeFloat(g *Graph) ([]NodeKey, int) {
	var critical []NodeKey
	var pathDays int

	for _, key := range g.SortedKeys() {
		n := g.Nodes[key]
		if n.EarlyFinish == nil || n.LateFinish == nil {
			continue
		}
		f := domain.DaysBetween(*n.EarlyFinish, *n.LateFinish)
		if f < 0 {
			f = 0
		}
		n.FloatDays = &f
		n.Critical = f == 0
		if n.Critical {
			critical = append(critical, key)
			pathDays += n.Duration
		}
	}
	return critical, pathDays
}
