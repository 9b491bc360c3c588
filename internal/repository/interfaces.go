package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jalvord/skyward/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

type GradeRepo interface {
	Create(ctx context.Context, g *domain.ManeuverGrade) error
	// ListNewestFirst returns all grades ordered by evaluation time
	// descending, the ordering the proficiency fold requires.
	ListNewestFirst(ctx context.Context) ([]domain.ManeuverGrade, error)
	ListByManeuver(ctx context.Context, code string) ([]domain.ManeuverGrade, error)
}

type EndorsementRepo interface {
	Create(ctx context.Context, e *domain.Endorsement) error
	List(ctx context.Context) ([]domain.Endorsement, error)
	DeleteExpired(ctx context.Context, now time.Time) (int, error)
}

type AvailabilityRepo interface {
	Create(ctx context.Context, s *domain.AvailabilitySlot) error
	ListByOwner(ctx context.Context, owner domain.SlotOwner) ([]domain.AvailabilitySlot, error)
	DeleteByOwner(ctx context.Context, owner domain.SlotOwner) (int, error)
}

type ScheduleRepo interface {
	// ReplaceWindow deletes entries still in {scheduled, weather_hold}
	// status dated inside [from, to] and inserts the new batch, in one
	// transaction. Completed and cancelled history is left intact.
	ReplaceWindow(ctx context.Context, from, to time.Time, entries []domain.ScheduleEntry) error
	ListRange(ctx context.Context, from, to time.Time) ([]domain.ScheduleEntry, error)
	UpdateStatus(ctx context.Context, id string, status domain.EntryStatus) error
	// ListCompletedTaskTitles returns the distinct task titles with at
	// least one completed entry.
	ListCompletedTaskTitles(ctx context.Context) (map[string]bool, error)
}

type ProfileRepo interface {
	Get(ctx context.Context) (*domain.SchedulingProfile, error)
	Upsert(ctx context.Context, p *domain.SchedulingProfile) error
}
