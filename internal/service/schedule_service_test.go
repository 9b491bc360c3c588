package service

import (
	"context"
	"testing"
	"time"

	"github.com/jalvord/skyward/internal/domain"
	"github.com/jalvord/skyward/internal/weather"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_RequiresAvailability(t *testing.T) {
	app := newTestApp(t, nil)

	_, err := app.schedule.Generate(context.Background(), GenerateRequest{Start: genStart, Now: genStart})

	assert.ErrorIs(t, err, ErrNoAvailability)
}

func TestGenerate_FreshStudentStartsDual(t *testing.T) {
	app := newTestApp(t, nil)
	app.addMondaySlot(t)

	res := app.generate(t)

	require.NotZero(t, res.Count)
	first := res.Entries[0]
	assert.Equal(t, genStart, first.Date, "starts on the requested Monday")
	assert.Equal(t, "Pre-flight Procedures", first.TaskTitle, "catalog order, nothing to reinforce")
	assert.Equal(t, domain.ActivityFlight, first.Activity)
	assert.Contains(t, first.Note, "dual", "a fresh student holds no solo endorsement")

	// Prerequisite-gated tasks must not be scheduled yet.
	for _, e := range res.Entries {
		assert.NotEqual(t, "Takeoffs and Landings", e.TaskTitle)
		assert.NotEqual(t, "Knowledge Test Review", e.TaskTitle)
	}
}

func TestGenerate_PersistsWindow(t *testing.T) {
	app := newTestApp(t, nil)
	app.addMondaySlot(t)

	res := app.generate(t)

	stored, err := app.schedule.ListWindow(context.Background(), res.WindowStart, res.WindowEnd)
	require.NoError(t, err)
	assert.Len(t, stored, res.Count)
}

func TestGenerate_RegenerationReplacesPending(t *testing.T) {
	app := newTestApp(t, nil)
	app.addMondaySlot(t)

	first := app.generate(t)
	second := app.generate(t)

	stored, err := app.schedule.ListWindow(context.Background(), second.WindowStart, second.WindowEnd)
	require.NoError(t, err)
	assert.Len(t, stored, second.Count, "regeneration must not duplicate entries")
	assert.Equal(t, first.Count, second.Count)
}

func TestGenerate_CompletedTasksExcludedAndUnlockSuccessors(t *testing.T) {
	app := newTestApp(t, nil)
	app.addMondaySlot(t)
	ctx := context.Background()

	res := app.generate(t)
	// Complete everything assigned in the first window.
	for _, e := range res.Entries {
		require.NoError(t, app.schedule.MarkCompleted(ctx, e.ID))
	}

	res = app.generate(t)

	titles := make(map[string]bool)
	for _, e := range res.Entries {
		titles[e.TaskTitle] = true
	}
	assert.False(t, titles["Pre-flight Procedures"], "completed tasks are not rescheduled")
	assert.True(t, titles["Takeoffs and Landings"], "completing prerequisites unlocks the successor")
}

func TestGenerate_ReinforcementComesFirst(t *testing.T) {
	app := newTestApp(t, nil)
	app.addMondaySlot(t)
	ctx := context.Background()

	_, err := app.grades.Log(ctx, "slow_flight", domain.GradeNeedsWork, "altitude control")
	require.NoError(t, err)

	res := app.generate(t)

	require.NotZero(t, res.Count)
	first := res.Entries[0]
	assert.Equal(t, "Basic Flight Maneuvers", first.TaskTitle,
		"the task exercising the needs_work maneuver jumps the queue")
	assert.Contains(t, first.Note, "re-practice: slow flight")
}

func TestGenerate_BadCurrentWeatherHoldsEarlyFlights(t *testing.T) {
	app := newTestApp(t, stubWeather{obs: &weather.Observation{
		Station: "KPAO", CeilingFt: 800, VisibilitySM: 1.5, WindKt: 25,
		ObservedAt: genStart,
	}})
	app.addMondaySlot(t)

	res := app.generate(t)

	assert.False(t, res.CurrentWxGood)
	require.NotZero(t, res.Count)
	first := res.Entries[0]
	// genStart is a Monday within the observation window: ground work is
	// preferred over flying in bad conditions.
	assert.Equal(t, domain.ActivityGround, first.Activity)
}

func TestGenerate_GoodObservationCarriesSnapshot(t *testing.T) {
	obs := &weather.Observation{
		Station: "KPAO", CeilingFt: 4500, VisibilitySM: 10, WindKt: 8,
		ObservedAt: genStart.Add(15 * time.Hour),
	}
	app := newTestApp(t, stubWeather{obs: obs})
	app.addMondaySlot(t)

	res := app.generate(t)

	assert.True(t, res.CurrentWxGood)
	require.NotZero(t, res.Count)
	first := res.Entries[0]
	require.NotNil(t, first.Weather, "observation-window flight carries the snapshot")
	assert.Equal(t, 4500, first.Weather.CeilingFt)
}

func TestGenerate_MissingObservationDefaultsSuitable(t *testing.T) {
	app := newTestApp(t, stubWeather{obs: nil})
	app.addMondaySlot(t)

	res := app.generate(t)

	assert.True(t, res.CurrentWxGood)
}

func TestGenerate_DefaultStartIsNextMonday(t *testing.T) {
	app := newTestApp(t, nil)
	app.addMondaySlot(t)

	wednesday := time.Date(2025, 6, 4, 10, 0, 0, 0, time.UTC)
	res, err := app.schedule.Generate(context.Background(), GenerateRequest{Now: wednesday})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC), res.WindowStart)
}

func TestGenerate_ProfileCapsRespected(t *testing.T) {
	app := newTestApp(t, nil)
	app.addMondaySlot(t)
	ctx := context.Background()

	require.NoError(t, app.profile.Set(ctx, &domain.SchedulingProfile{
		WeeklyHourCap:     2,
		MaxSessionsPerDay: 1,
		HoursPerSession:   2,
		HomeAirport:       "KPAO",
	}))

	res := app.generate(t)

	perWeek := make(map[int]int)
	for _, e := range res.Entries {
		_, week := e.Date.ISOWeek()
		perWeek[week]++
	}
	for week, n := range perWeek {
		assert.LessOrEqual(t, n, 1, "week %d exceeds the 2h cap at 2h per session", week)
	}
}

func TestMarkCompletedAndCancel(t *testing.T) {
	app := newTestApp(t, nil)
	app.addMondaySlot(t)
	ctx := context.Background()

	res := app.generate(t)
	require.True(t, res.Count >= 2)

	require.NoError(t, app.schedule.MarkCompleted(ctx, res.Entries[0].ID))
	require.NoError(t, app.schedule.Cancel(ctx, res.Entries[1].ID))

	stored, err := app.schedule.ListWindow(ctx, res.WindowStart, res.WindowEnd)
	require.NoError(t, err)

	statuses := make(map[string]domain.EntryStatus)
	for _, e := range stored {
		statuses[e.ID] = e.Status
	}
	assert.Equal(t, domain.EntryCompleted, statuses[res.Entries[0].ID])
	assert.Equal(t, domain.EntryCancelled, statuses[res.Entries[1].ID])
}
