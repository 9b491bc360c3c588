package service

import (
	"context"
	"testing"
	"time"

	"github.com/jalvord/skyward/internal/catalog"
	"github.com/jalvord/skyward/internal/domain"
	"github.com/jalvord/skyward/internal/repository"
	"github.com/jalvord/skyward/internal/testutil"
	"github.com/jalvord/skyward/internal/weather"
	"github.com/stretchr/testify/require"
)

// stubWeather returns a fixed observation, or nothing when obs is nil.
type stubWeather struct {
	obs *weather.Observation
}

func (s stubWeather) Current(ctx context.Context, station string) (*weather.Observation, error) {
	return s.obs, nil
}

type testApp struct {
	schedule     ScheduleService
	grades       GradeService
	endorsements EndorsementService
	availability AvailabilityService
	profile      ProfileService

	scheduleRepo repository.ScheduleRepo
}

func newTestApp(t *testing.T, wx weather.Provider) *testApp {
	t.Helper()
	database := testutil.NewTestDB(t)
	cat := catalog.Default()
	require.NoError(t, cat.Validate())

	gradeRepo := repository.NewSQLiteGradeRepo(database)
	endorsementRepo := repository.NewSQLiteEndorsementRepo(database)
	availabilityRepo := repository.NewSQLiteAvailabilityRepo(database)
	scheduleRepo := repository.NewSQLiteScheduleRepo(database)
	profileRepo := repository.NewSQLiteProfileRepo(database)

	return &testApp{
		schedule:     NewScheduleService(cat, gradeRepo, endorsementRepo, availabilityRepo, scheduleRepo, profileRepo, wx),
		grades:       NewGradeService(cat, gradeRepo),
		endorsements: NewEndorsementService(endorsementRepo),
		availability: NewAvailabilityService(availabilityRepo),
		profile:      NewProfileService(profileRepo),
		scheduleRepo: scheduleRepo,
	}
}

// genStart is a Monday inside a month with no DST complications (UTC).
var genStart = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

func (a *testApp) addMondaySlot(t *testing.T) {
	t.Helper()
	_, err := a.availability.Add(context.Background(), domain.OwnerStudent, time.Monday, "09:00", "12:00")
	require.NoError(t, err)
}

func (a *testApp) generate(t *testing.T) *GenerateResult {
	t.Helper()
	res, err := a.schedule.Generate(context.Background(), GenerateRequest{Start: genStart, Now: genStart})
	require.NoError(t, err)
	return res
}
