package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmcalloway/proforma/internal/domain"
	"github.com/jmcalloway/proforma/internal/testutil"
)

func TestDependencyRepo_CreateAndList(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	proj := testutil.NewTestProject("Proj")
	require.NoError(t, NewSQLiteProjectRepo(db).Create(ctx, proj))

	itemRepo := NewSQLiteBudgetItemRepo(db)
	a := testutil.NewTestBudgetItem(proj.ID, "Excavation")
	b := testutil.NewTestBudgetItem(proj.ID, "Foundation")
	require.NoError(t, itemRepo.Create(ctx, a))
	require.NoError(t, itemRepo.Create(ctx, b))

	repo := NewSQLiteDependencyRepo(db)
	dep := testutil.NewTestDependency(proj.ID,
		domain.NodeBudgetItem, a.ID, domain.NodeBudgetItem, b.ID,
		testutil.WithDepType(domain.StartToStart),
		testutil.WithLag(-3),
		testutil.WithHardConstraint())
	require.NoError(t, repo.Create(ctx, dep))

	deps, err := repo.ListActiveByProject(ctx, proj.ID)
	require.NoError(t, err)
	require.Len(t, deps, 1)
	got := deps[0]
	assert.Equal(t, a.ID, got.PredecessorID)
	assert.Equal(t, b.ID, got.SuccessorID)
	assert.Equal(t, domain.StartToStart, got.Type)
	assert.Equal(t, -3, got.LagDays, "negative lag round-trips")
	assert.True(t, got.Hard)
	assert.True(t, got.Active)
}

func TestDependencyRepo_ListSkipsInactive(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	proj := testutil.NewTestProject("Proj")
	require.NoError(t, NewSQLiteProjectRepo(db).Create(ctx, proj))

	itemRepo := NewSQLiteBudgetItemRepo(db)
	a := testutil.NewTestBudgetItem(proj.ID, "A")
	b := testutil.NewTestBudgetItem(proj.ID, "B")
	require.NoError(t, itemRepo.Create(ctx, a))
	require.NoError(t, itemRepo.Create(ctx, b))

	repo := NewSQLiteDependencyRepo(db)
	live := testutil.NewTestDependency(proj.ID, domain.NodeBudgetItem, a.ID, domain.NodeBudgetItem, b.ID)
	dead := testutil.NewTestDependency(proj.ID, domain.NodeBudgetItem, b.ID, domain.NodeBudgetItem, a.ID)
	dead.Active = false
	require.NoError(t, repo.Create(ctx, live))
	require.NoError(t, repo.Create(ctx, dead))

	deps, err := repo.ListActiveByProject(ctx, proj.ID)
	require.NoError(t, err)
	require.Len(t, deps, 1)
	assert.Equal(t, live.ID, deps[0].ID)
}

func TestDependencyRepo_Delete(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	proj := testutil.NewTestProject("Proj")
	require.NoError(t, NewSQLiteProjectRepo(db).Create(ctx, proj))

	itemRepo := NewSQLiteBudgetItemRepo(db)
	a := testutil.NewTestBudgetItem(proj.ID, "A")
	b := testutil.NewTestBudgetItem(proj.ID, "B")
	require.NoError(t, itemRepo.Create(ctx, a))
	require.NoError(t, itemRepo.Create(ctx, b))

	repo := NewSQLiteDependencyRepo(db)
	dep := testutil.NewTestDependency(proj.ID, domain.NodeBudgetItem, a.ID, domain.NodeBudgetItem, b.ID)
	require.NoError(t, repo.Create(ctx, dep))
	require.NoError(t, repo.Delete(ctx, dep.ID))

	deps, err := repo.ListActiveByProject(ctx, proj.ID)
	require.NoError(t, err)
	assert.Empty(t, deps)
}

// Milestone endpoints are stored by type+id, not foreign key, so a dependency
// can point at either table.
func TestDependencyRepo_MilestoneEndpoint(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	proj := testutil.NewTestProject("Proj")
	require.NoError(t, NewSQLiteProjectRepo(db).Create(ctx, proj))

	item := testutil.NewTestBudgetItem(proj.ID, "Vertical Construction")
	require.NoError(t, NewSQLiteBudgetItemRepo(db).Create(ctx, item))
	ms := testutil.NewTestMilestone(proj.ID, "Topping Out")
	require.NoError(t, NewSQLiteMilestoneRepo(db).Create(ctx, ms))

	repo := NewSQLiteDependencyRepo(db)
	dep := testutil.NewTestDependency(proj.ID,
		domain.NodeBudgetItem, item.ID, domain.NodeMilestone, ms.ID)
	require.NoError(t, repo.Create(ctx, dep))

	deps, err := repo.ListActiveByProject(ctx, proj.ID)
	require.NoError(t, err)
	require.Len(t, deps, 1)
	assert.Equal(t, domain.NodeMilestone, deps[0].SuccessorType)
	assert.Equal(t, ms.ID, deps[0].SuccessorID)
}
