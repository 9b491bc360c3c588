package service

import (
	"context"
	"errors"
	"time"

	"github.com/jalvord/skyward/internal/domain"
	"github.com/jalvord/skyward/internal/scheduler"
)

// ErrNoAvailability is returned by Generate when the learner has declared no
// availability slots. The caller surfaces it as a "set availability first"
// condition instead of producing an empty schedule.
var ErrNoAvailability = errors.New("no availability slots declared")

// GenerateRequest parameterizes one schedule generation run.
type GenerateRequest struct {
	Start time.Time // zero value means the next Monday
	Now   time.Time // zero value means time.Now
}

// GenerateResult is the outcome of a generation run.
type GenerateResult struct {
	Entries        []domain.ScheduleEntry
	Count          int
	WindowStart    time.Time
	WindowEnd      time.Time
	CurrentWxGood  bool
	FlightEligible int
	GroundEligible int
}

type ScheduleService interface {
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error)
	ListWindow(ctx context.Context, from, to time.Time) ([]domain.ScheduleEntry, error)
	MarkCompleted(ctx context.Context, id string) error
	Cancel(ctx context.Context, id string) error
}

type GradeService interface {
	Log(ctx context.Context, maneuverCode string, level domain.GradeLevel, note string) (*domain.ManeuverGrade, error)
	History(ctx context.Context, maneuverCode string) ([]domain.ManeuverGrade, error)
	Proficiency(ctx context.Context) (scheduler.ProficiencyMap, error)
}

type EndorsementService interface {
	Add(ctx context.Context, typ domain.EndorsementType, expiresAt *time.Time) (*domain.Endorsement, error)
	List(ctx context.Context) ([]domain.Endorsement, error)
}

type AvailabilityService interface {
	Add(ctx context.Context, owner domain.SlotOwner, weekday time.Weekday, start, end string) (*domain.AvailabilitySlot, error)
	List(ctx context.Context, owner domain.SlotOwner) ([]domain.AvailabilitySlot, error)
	Clear(ctx context.Context, owner domain.SlotOwner) (int, error)
}

type ProfileService interface {
	// Get returns the stored profile, or the defaults when none is set.
	Get(ctx context.Context) (*domain.SchedulingProfile, error)
	Set(ctx context.Context, p *domain.SchedulingProfile) error
}
