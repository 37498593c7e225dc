package cpm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmcalloway/proforma/internal/domain"
)

func TestDetectCycles_AcyclicGraph(t *testing.T) {
	g, _ := Build(project(),
		[]*domain.BudgetItem{item("a"), item("b"), item("c")},
		nil,
		[]domain.Dependency{
			dep("d1", "a", "b", domain.FinishToStart, 0),
			dep("d2", "b", "c", domain.FinishToStart, 0),
		})

	assert.Empty(t, DetectCycles(g))
}

func TestDetectCycles_ThreeNodeLoop(t *testing.T) {
	g, _ := Build(project(),
		[]*domain.BudgetItem{item("a"), item("b"), item("c")},
		nil,
		[]domain.Dependency{
			dep("d1", "a", "b", domain.FinishToStart, 0),
			dep("d2", "b", "c", domain.FinishToStart, 0),
			dep("d3", "c", "a", domain.FinishToStart, 0),
		})

	cycles := DetectCycles(g)
	require.Len(t, cycles, 1)
	assert.Equal(t, "budget_item:a -> budget_item:b -> budget_item:c -> budget_item:a", cycles[0])
}

func TestDetectCycles_SelfLoop(t *testing.T) {
	g, _ := Build(project(),
		[]*domain.BudgetItem{item("a")},
		nil,
		[]domain.Dependency{dep("d1", "a", "a", domain.FinishToStart, 0)})

	cycles := DetectCycles(g)
	require.Len(t, cycles, 1)
	assert.Equal(t, "budget_item:a -> budget_item:a", cycles[0])
}

func TestDetectCycles_DisconnectedComponents(t *testing.T) {
	// One clean chain plus a separate two-node loop; the loop must be found
	// even though no path connects it to the chain.
	g, _ := Build(project(),
		[]*domain.BudgetItem{item("a"), item("b"), item("x"), item("y")},
		nil,
		[]domain.Dependency{
			dep("d1", "a", "b", domain.FinishToStart, 0),
			dep("d2", "x", "y", domain.FinishToStart, 0),
			dep("d3", "y", "x", domain.FinishToStart, 0),
		})

	cycles := DetectCycles(g)
	require.Len(t, cycles, 1)
	assert.Contains(t, cycles[0], "budget_item:x")
	assert.Contains(t, cycles[0], "budget_item:y")
}

func TestDetectCycles_MixedNodeTypes(t *testing.T) {
	deps := []domain.Dependency{
		{ID: "d1", ProjectID: "proj", PredecessorType: domain.NodeBudgetItem, PredecessorID: "a",
			SuccessorType: domain.NodeMilestone, SuccessorID: "m", Type: domain.FinishToStart, Active: true},
		{ID: "d2", ProjectID: "proj", PredecessorType: domain.NodeMilestone, PredecessorID: "m",
			SuccessorType: domain.NodeBudgetItem, SuccessorID: "a", Type: domain.FinishToStart, Active: true},
	}
	g, _ := Build(project(),
		[]*domain.BudgetItem{item("a")},
		[]*domain.Milestone{milestone("m", nil)},
		deps)

	cycles := DetectCycles(g)
	require.Len(t, cycles, 1)
	assert.Contains(t, cycles[0], "milestone:m")
}
