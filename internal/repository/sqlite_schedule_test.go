package repository

import (
	"context"
	"testing"
	"time"

	"github.com/jalvord/skyward/internal/domain"
	"github.com/jalvord/skyward/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var windowStart = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

func TestScheduleRepo_ReplaceWindow_SupersedesPending(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteScheduleRepo(database)
	ctx := context.Background()
	windowEnd := windowStart.AddDate(0, 1, 0)

	stale := []domain.ScheduleEntry{
		*testutil.NewTestEntry(windowStart, "Pre-flight Procedures"),
		*testutil.NewTestEntry(windowStart.AddDate(0, 0, 7), "Basic Flight Maneuvers",
			testutil.WithEntryStatus(domain.EntryWeatherHold)),
	}
	require.NoError(t, repo.ReplaceWindow(ctx, windowStart, windowEnd, stale))

	fresh := []domain.ScheduleEntry{
		*testutil.NewTestEntry(windowStart.AddDate(0, 0, 1), "Takeoffs and Landings"),
	}
	require.NoError(t, repo.ReplaceWindow(ctx, windowStart, windowEnd, fresh))

	got, err := repo.ListRange(ctx, windowStart, windowEnd)
	require.NoError(t, err)
	require.Len(t, got, 1, "pending entries in window must be replaced")
	assert.Equal(t, "Takeoffs and Landings", got[0].TaskTitle)
}

func TestScheduleRepo_ReplaceWindow_KeepsHistory(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteScheduleRepo(database)
	ctx := context.Background()
	windowEnd := windowStart.AddDate(0, 1, 0)

	history := []domain.ScheduleEntry{
		*testutil.NewTestEntry(windowStart, "Pre-flight Procedures",
			testutil.WithEntryStatus(domain.EntryCompleted)),
		*testutil.NewTestEntry(windowStart.AddDate(0, 0, 1), "Basic Flight Maneuvers",
			testutil.WithEntryStatus(domain.EntryCancelled)),
	}
	require.NoError(t, repo.ReplaceWindow(ctx, windowStart, windowEnd, history))

	require.NoError(t, repo.ReplaceWindow(ctx, windowStart, windowEnd, []domain.ScheduleEntry{
		*testutil.NewTestEntry(windowStart.AddDate(0, 0, 2), "Takeoffs and Landings"),
	}))

	got, err := repo.ListRange(ctx, windowStart, windowEnd)
	require.NoError(t, err)
	assert.Len(t, got, 3, "completed and cancelled entries survive replacement")
}

func TestScheduleRepo_ReplaceWindow_LeavesOtherWindowsAlone(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteScheduleRepo(database)
	ctx := context.Background()

	earlier := windowStart.AddDate(0, -2, 0)
	require.NoError(t, repo.ReplaceWindow(ctx, earlier, earlier.AddDate(0, 1, 0), []domain.ScheduleEntry{
		*testutil.NewTestEntry(earlier, "Pre-flight Procedures"),
	}))

	require.NoError(t, repo.ReplaceWindow(ctx, windowStart, windowStart.AddDate(0, 1, 0), nil))

	got, err := repo.ListRange(ctx, earlier, earlier.AddDate(0, 1, 0))
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestScheduleRepo_WeatherSnapshotRoundTrip(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteScheduleRepo(database)
	ctx := context.Background()

	snap := &domain.WeatherSnapshot{
		CeilingFt:    4500,
		VisibilitySM: 10,
		WindKt:       8,
		ObservedAt:   windowStart.Add(15 * time.Hour),
	}
	entry := testutil.NewTestEntry(windowStart, "Pre-flight Procedures", testutil.WithWeatherSnapshot(snap))
	require.NoError(t, repo.ReplaceWindow(ctx, windowStart, windowStart.AddDate(0, 1, 0), []domain.ScheduleEntry{*entry}))

	got, err := repo.ListRange(ctx, windowStart, windowStart)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.NotNil(t, got[0].Weather)
	assert.Equal(t, *snap, *got[0].Weather)
}

func TestScheduleRepo_UpdateStatus(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteScheduleRepo(database)
	ctx := context.Background()

	entry := testutil.NewTestEntry(windowStart, "Pre-flight Procedures")
	require.NoError(t, repo.ReplaceWindow(ctx, windowStart, windowStart, []domain.ScheduleEntry{*entry}))

	require.NoError(t, repo.UpdateStatus(ctx, entry.ID, domain.EntryCompleted))

	got, err := repo.ListRange(ctx, windowStart, windowStart)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, domain.EntryCompleted, got[0].Status)

	err = repo.UpdateStatus(ctx, "missing-id", domain.EntryCompleted)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestScheduleRepo_ListCompletedTaskTitles(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteScheduleRepo(database)
	ctx := context.Background()

	entries := []domain.ScheduleEntry{
		*testutil.NewTestEntry(windowStart, "Pre-flight Procedures", testutil.WithEntryStatus(domain.EntryCompleted)),
		*testutil.NewTestEntry(windowStart.AddDate(0, 0, 1), "Pre-flight Procedures", testutil.WithEntryStatus(domain.EntryCompleted)),
		*testutil.NewTestEntry(windowStart.AddDate(0, 0, 2), "Basic Flight Maneuvers"),
	}
	require.NoError(t, repo.ReplaceWindow(ctx, windowStart, windowStart.AddDate(0, 1, 0), entries))

	titles, err := repo.ListCompletedTaskTitles(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"Pre-flight Procedures": true}, titles)
}
