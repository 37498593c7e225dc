package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmcalloway/proforma/internal/domain"
	"github.com/jmcalloway/proforma/internal/testutil"
)

func TestProjectRepo_CreateAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	repo := NewSQLiteProjectRepo(db)

	proj := testutil.NewTestProject("Riverside Mixed-Use",
		testutil.WithAnalysisWindow(testutil.Date(2025, 1, 1), testutil.Date(2027, 6, 30)))
	require.NoError(t, repo.Create(ctx, proj))

	got, err := repo.GetByID(ctx, proj.ID)
	require.NoError(t, err)
	assert.Equal(t, proj.ID, got.ID)
	assert.Equal(t, "Riverside Mixed-Use", got.Name)
	require.NotNil(t, got.AnalysisStart)
	assert.Equal(t, testutil.Date(2025, 1, 1), *got.AnalysisStart)
	require.NotNil(t, got.AnalysisEnd)
	assert.Equal(t, testutil.Date(2027, 6, 30), *got.AnalysisEnd)
	assert.Equal(t, domain.ProjectActive, got.Status)
}

func TestProjectRepo_GetByID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)

	_, err := repo.GetByID(context.Background(), "nonexistent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "project not found")
}

func TestProjectRepo_NilWindowRoundTrips(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	repo := NewSQLiteProjectRepo(db)

	proj := testutil.NewTestProject("No Window Yet")
	require.NoError(t, repo.Create(ctx, proj))

	got, err := repo.GetByID(ctx, proj.ID)
	require.NoError(t, err)
	assert.Nil(t, got.AnalysisStart)
	assert.Nil(t, got.AnalysisEnd)
}

func TestProjectRepo_ListFiltersArchived(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	repo := NewSQLiteProjectRepo(db)

	active := testutil.NewTestProject("Active Deal")
	archived := testutil.NewTestProject("Dead Deal",
		testutil.WithProjectStatus(domain.ProjectArchived))
	require.NoError(t, repo.Create(ctx, active))
	require.NoError(t, repo.Create(ctx, archived))

	visible, err := repo.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, active.ID, visible[0].ID)

	all, err := repo.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestProjectRepo_Update(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	repo := NewSQLiteProjectRepo(db)

	proj := testutil.NewTestProject("Before")
	require.NoError(t, repo.Create(ctx, proj))

	proj.Name = "After"
	proj.Status = domain.ProjectArchived
	require.NoError(t, repo.Update(ctx, proj))

	got, err := repo.GetByID(ctx, proj.ID)
	require.NoError(t, err)
	assert.Equal(t, "After", got.Name)
	assert.Equal(t, domain.ProjectArchived, got.Status)
}

// TestProjectRepo_DeleteCascades verifies that removing a project takes its
// items, milestones, dependencies, and calc log with it.
func TestProjectRepo_DeleteCascades(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	projRepo := NewSQLiteProjectRepo(db)
	itemRepo := NewSQLiteBudgetItemRepo(db)
	depRepo := NewSQLiteDependencyRepo(db)

	proj := testutil.NewTestProject("Doomed")
	require.NoError(t, projRepo.Create(ctx, proj))

	a := testutil.NewTestBudgetItem(proj.ID, "Sitework")
	b := testutil.NewTestBudgetItem(proj.ID, "Foundation")
	require.NoError(t, itemRepo.Create(ctx, a))
	require.NoError(t, itemRepo.Create(ctx, b))
	require.NoError(t, depRepo.Create(ctx, testutil.NewTestDependency(
		proj.ID, domain.NodeBudgetItem, a.ID, domain.NodeBudgetItem, b.ID)))

	require.NoError(t, projRepo.Delete(ctx, proj.ID))

	_, err := itemRepo.GetByID(ctx, a.ID)
	assert.Error(t, err, "budget item should be cascade-deleted")

	deps, err := depRepo.ListActiveByProject(ctx, proj.ID)
	require.NoError(t, err)
	assert.Empty(t, deps)
}
