package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jalvord/skyward/internal/catalog"
	"github.com/jalvord/skyward/internal/domain"
	"github.com/jalvord/skyward/internal/repository"
	"github.com/jalvord/skyward/internal/scheduler"
	"github.com/jalvord/skyward/internal/weather"
)

type scheduleService struct {
	cat          *catalog.Catalog
	grades       repository.GradeRepo
	endorsements repository.EndorsementRepo
	availability repository.AvailabilityRepo
	schedule     repository.ScheduleRepo
	profiles     repository.ProfileRepo
	wx           weather.Provider
}

func NewScheduleService(
	cat *catalog.Catalog,
	grades repository.GradeRepo,
	endorsements repository.EndorsementRepo,
	availability repository.AvailabilityRepo,
	schedule repository.ScheduleRepo,
	profiles repository.ProfileRepo,
	wx weather.Provider,
) ScheduleService {
	return &scheduleService{
		cat:          cat,
		grades:       grades,
		endorsements: endorsements,
		availability: availability,
		schedule:     schedule,
		profiles:     profiles,
		wx:           wx,
	}
}

// Generate runs the full pipeline: load state, build the proficiency map,
// filter and prioritize eligible tasks, allocate the window, and persist the
// batch by replacing any pending entries inside it.
func (s *scheduleService) Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error) {
	now := req.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}
	start := req.Start
	if start.IsZero() {
		start = scheduler.NextMonday(now)
	}

	profile, err := s.loadProfile(ctx)
	if err != nil {
		return nil, err
	}

	slots, err := s.availability.ListByOwner(ctx, domain.OwnerStudent)
	if err != nil {
		return nil, fmt.Errorf("loading availability: %w", err)
	}
	if len(slots) == 0 {
		return nil, ErrNoAvailability
	}

	grades, err := s.grades.ListNewestFirst(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading grades: %w", err)
	}
	// The fold requires newest-first input; sort right before building so
	// the precondition holds regardless of storage ordering.
	scheduler.SortGradesNewestFirst(grades)
	prof := scheduler.BuildProficiencyMap(grades)

	endorsements, err := s.endorsements.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading endorsements: %w", err)
	}

	completed, err := s.schedule.ListCompletedTaskTitles(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading completed tasks: %w", err)
	}

	flightTasks, groundTasks := s.eligibleTasks(completed, prof)

	reinforcement := scheduler.ReinforcementManeuvers(prof)
	reinforcedTitles := scheduler.TasksForReinforcement(s.cat, reinforcement)
	flightTasks = scheduler.Prioritize(flightTasks, reinforcedTitles)

	wxGood, snapshot := s.currentWeather(ctx, profile.HomeAirport)

	entries := scheduler.GenerateSchedule(scheduler.GenerateInput{
		Catalog:       s.cat,
		FlightTasks:   flightTasks,
		GroundTasks:   groundTasks,
		Slots:         slots,
		IsGoodWeather: scheduler.Outlook(start, wxGood),
		Profile:       *profile,
		Proficiency:   prof,
		Endorsements:  endorsements,
		Reinforcement: reinforcement,
		Start:         start,
		Snapshot:      snapshot,
	})

	for i := range entries {
		entries[i].ID = uuid.New().String()
		entries[i].CreatedAt = now
	}

	end := start.AddDate(0, 1, 0)
	if err := s.schedule.ReplaceWindow(ctx, start, end, entries); err != nil {
		return nil, fmt.Errorf("persisting schedule: %w", err)
	}

	return &GenerateResult{
		Entries:        entries,
		Count:          len(entries),
		WindowStart:    start,
		WindowEnd:      end,
		CurrentWxGood:  wxGood,
		FlightEligible: len(flightTasks),
		GroundEligible: len(groundTasks),
	}, nil
}

func (s *scheduleService) ListWindow(ctx context.Context, from, to time.Time) ([]domain.ScheduleEntry, error) {
	return s.schedule.ListRange(ctx, from, to)
}

func (s *scheduleService) MarkCompleted(ctx context.Context, id string) error {
	return s.schedule.UpdateStatus(ctx, id, domain.EntryCompleted)
}

func (s *scheduleService) Cancel(ctx context.Context, id string) error {
	return s.schedule.UpdateStatus(ctx, id, domain.EntryCancelled)
}

func (s *scheduleService) loadProfile(ctx context.Context) (*domain.SchedulingProfile, error) {
	profile, err := s.profiles.Get(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		p := domain.DefaultProfile()
		return &p, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading profile: %w", err)
	}
	return profile, nil
}

// eligibleTasks walks the catalog in order and keeps tasks that are not yet
// completed and whose prerequisites are met, split by scheduling track.
func (s *scheduleService) eligibleTasks(completed map[string]bool, prof scheduler.ProficiencyMap) (flight, ground []domain.TrainingTask) {
	for _, task := range s.cat.Tasks {
		if completed[task.Title] {
			continue
		}
		if !scheduler.PrerequisitesMet(s.cat, task.Title, completed, prof) {
			continue
		}
		if task.Category.IsFlightCategory() {
			flight = append(flight, task)
		} else {
			ground = append(ground, task)
		}
	}
	return flight, ground
}

// currentWeather reduces the live observation to the suitability flag the
// allocator consumes. Any failure, and the absent-observation case, default
// to suitable.
func (s *scheduleService) currentWeather(ctx context.Context, station string) (bool, *domain.WeatherSnapshot) {
	if s.wx == nil {
		return true, nil
	}
	obs, err := s.wx.Current(ctx, station)
	if err != nil || obs == nil {
		return true, nil
	}
	snap := &domain.WeatherSnapshot{
		CeilingFt:    obs.CeilingFt,
		VisibilitySM: obs.VisibilitySM,
		WindKt:       obs.WindKt,
		ObservedAt:   obs.ObservedAt,
	}
	return weather.Suitable(*obs), snap
}
