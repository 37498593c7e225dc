package cpm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmcalloway/proforma/internal/domain"
)

func TestBuild_BudgetItemNode(t *testing.T) {
	g, warnings := Build(project(),
		[]*domain.BudgetItem{item("a", withDates(date(2025, 2, 1), date(2025, 2, 10)))},
		nil, nil)

	require.Empty(t, warnings)
	n := g.Nodes[itemKey("a")]
	require.NotNil(t, n)
	assert.Equal(t, 9, n.Duration)
	assert.Equal(t, date(2025, 2, 1), *n.FixedStart)
	assert.Equal(t, date(2025, 2, 10), *n.FixedFinish)
	assert.Equal(t, date(2025, 2, 1), *n.OrigStart)
	assert.Nil(t, n.EarlyStart, "computed fields start unset")
}

func TestBuild_MilestoneNodeIsZeroDuration(t *testing.T) {
	g, _ := Build(project(), nil,
		[]*domain.Milestone{milestone("m", dptr(2025, 3, 1))}, nil)

	n := g.Nodes[milestoneKey("m")]
	require.NotNil(t, n)
	assert.True(t, n.IsMilestone())
	assert.Equal(t, 0, n.Duration)
	assert.Equal(t, date(2025, 3, 1), *n.FixedStart)
	assert.Nil(t, n.FixedFinish, "anchor is a start floor, never a finish ceiling")
}

func TestBuild_EdgesStoredOnBothEndpoints(t *testing.T) {
	g, _ := Build(project(),
		[]*domain.BudgetItem{item("a"), item("b")},
		nil,
		[]domain.Dependency{dep("d1", "a", "b", domain.FinishToStart, 2)})

	a, b := g.Nodes[itemKey("a")], g.Nodes[itemKey("b")]
	require.Len(t, a.Successors, 1)
	require.Len(t, b.Predecessors, 1)
	assert.Same(t, a.Successors[0], b.Predecessors[0])
	assert.Equal(t, 2, a.Successors[0].LagDays)
}

func TestBuild_DropsEdgeWithMissingEndpoint(t *testing.T) {
	g, warnings := Build(project(),
		[]*domain.BudgetItem{item("a")},
		nil,
		[]domain.Dependency{dep("d1", "a", "ghost", domain.FinishToStart, 0)})

	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "d1")
	assert.Contains(t, warnings[0], "ghost")
	assert.Empty(t, g.Nodes[itemKey("a")].Successors, "stale edge excluded from the graph")
}

func TestBuild_ProjectBounds(t *testing.T) {
	g, _ := Build(
		project(withWindow(dptr(2025, 1, 15), dptr(2025, 6, 1))),
		[]*domain.BudgetItem{item("a", withDates(date(2025, 1, 1), date(2025, 7, 1)))},
		nil, nil)

	assert.Equal(t, date(2025, 1, 1), *g.Start, "item start earlier than analysis start widens the bound")
	assert.Equal(t, date(2025, 7, 1), *g.End, "item finish later than analysis end widens the bound")
}

func TestBuild_BoundsFromMilestoneAnchor(t *testing.T) {
	g, _ := Build(project(), nil,
		[]*domain.Milestone{milestone("m", dptr(2025, 3, 1))}, nil)

	assert.Equal(t, date(2025, 3, 1), *g.Start)
	assert.Equal(t, date(2025, 3, 1), *g.End)
}

func TestBuild_NoDatesAnywhere(t *testing.T) {
	g, _ := Build(project(), []*domain.BudgetItem{item("a")}, nil, nil)
	assert.Nil(t, g.Start)
	assert.Nil(t, g.End)
}

func TestSortedKeys_Deterministic(t *testing.T) {
	g, _ := Build(project(),
		[]*domain.BudgetItem{item("b"), item("a")},
		[]*domain.Milestone{milestone("a", nil)},
		nil)

	keys := g.SortedKeys()
	assert.Equal(t, []NodeKey{itemKey("a"), itemKey("b"), milestoneKey("a")}, keys)
}
