package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmcalloway/proforma/internal/domain"
	"github.com/jmcalloway/proforma/internal/testutil"
)

func newLogEntry(projectID string, opts ...func(*domain.CalcLogEntry)) *domain.CalcLogEntry {
	e := &domain.CalcLogEntry{
		ID:               uuid.New().String(),
		ProjectID:        projectID,
		Trigger:          domain.TriggerManual,
		UserID:           "analyst",
		ItemsUpdated:     7,
		CriticalPathDays: 180,
		DurationMS:       42,
		CreatedAt:        time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func TestCalcLogRepo_RoundTrip(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	proj := testutil.NewTestProject("Proj")
	require.NoError(t, NewSQLiteProjectRepo(db).Create(ctx, proj))

	repo := NewSQLiteCalcLogRepo(db)
	entry := newLogEntry(proj.ID, func(e *domain.CalcLogEntry) {
		e.Warnings = []string{"budget_item:x has no date anchor, defaulting start to today"}
	})
	require.NoError(t, repo.Create(ctx, entry))

	entries, err := repo.ListByProject(ctx, proj.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	got := entries[0]
	assert.Equal(t, domain.TriggerManual, got.Trigger)
	assert.Equal(t, "analyst", got.UserID)
	assert.Equal(t, 7, got.ItemsUpdated)
	assert.Equal(t, 180, got.CriticalPathDays)
	assert.Equal(t, int64(42), got.DurationMS)
	require.Len(t, got.Warnings, 1)
	assert.Contains(t, got.Warnings[0], "no date anchor")
}

func TestCalcLogRepo_NilWarningsBecomeEmptyList(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	proj := testutil.NewTestProject("Proj")
	require.NoError(t, NewSQLiteProjectRepo(db).Create(ctx, proj))

	repo := NewSQLiteCalcLogRepo(db)
	require.NoError(t, repo.Create(ctx, newLogEntry(proj.ID)))

	entries, err := repo.ListByProject(ctx, proj.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.NotNil(t, entries[0].Warnings)
	assert.Empty(t, entries[0].Warnings)
}

func TestCalcLogRepo_NewestFirst(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	proj := testutil.NewTestProject("Proj")
	require.NoError(t, NewSQLiteProjectRepo(db).Create(ctx, proj))

	repo := NewSQLiteCalcLogRepo(db)
	older := newLogEntry(proj.ID, func(e *domain.CalcLogEntry) {
		e.CreatedAt = time.Now().UTC().Add(-time.Hour)
		e.Trigger = domain.TriggerItemChanged
	})
	newer := newLogEntry(proj.ID)
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	entries, err := repo.ListByProject(ctx, proj.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, newer.ID, entries[0].ID)
	assert.Equal(t, domain.TriggerItemChanged, entries[1].Trigger)
}
