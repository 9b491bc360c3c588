package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/jalvord/skyward/internal/domain"
)

// Grade options
type GradeOption func(*domain.ManeuverGrade)

func WithGradedAt(t time.Time) GradeOption {
	return func(g *domain.ManeuverGrade) {
		g.GradedAt = t
	}
}

func WithGradeNote(note string) GradeOption {
	return func(g *domain.ManeuverGrade) {
		g.Note = note
	}
}

func NewTestGrade(code string, level domain.GradeLevel, opts ...GradeOption) *domain.ManeuverGrade {
	now := time.Now().UTC()
	g := &domain.ManeuverGrade{
		ID:           uuid.New().String(),
		ManeuverCode: code,
		Grade:        level,
		GradedAt:     now,
		CreatedAt:    now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Endorsement options
type EndorsementOption func(*domain.Endorsement)

func WithExpiry(t time.Time) EndorsementOption {
	return func(e *domain.Endorsement) {
		e.ExpiresAt = &t
	}
}

func NewTestEndorsement(typ domain.EndorsementType, opts ...EndorsementOption) *domain.Endorsement {
	now := time.Now().UTC()
	e := &domain.Endorsement{
		ID:        uuid.New().String(),
		Type:      typ,
		IssuedAt:  now.AddDate(0, -1, 0),
		CreatedAt: now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func NewTestSlot(owner domain.SlotOwner, day time.Weekday, start, end string) *domain.AvailabilitySlot {
	return &domain.AvailabilitySlot{
		ID:        uuid.New().String(),
		Owner:     owner,
		Weekday:   day,
		StartTime: start,
		EndTime:   end,
		CreatedAt: time.Now().UTC(),
	}
}

// Entry options
type EntryOption func(*domain.ScheduleEntry)

func WithEntryStatus(s domain.EntryStatus) EntryOption {
	return func(e *domain.ScheduleEntry) {
		e.Status = s
	}
}

func WithWeatherSnapshot(snap *domain.WeatherSnapshot) EntryOption {
	return func(e *domain.ScheduleEntry) {
		e.Weather = snap
	}
}

func NewTestEntry(date time.Time, taskTitle string, opts ...EntryOption) *domain.ScheduleEntry {
	e := &domain.ScheduleEntry{
		ID:              uuid.New().String(),
		Date:            date,
		StartTime:       "09:00",
		EndTime:         "11:00",
		Activity:        domain.ActivityFlight,
		TaskTitle:       taskTitle,
		Status:          domain.EntryScheduled,
		WeatherSuitable: true,
		Note:            "dual instruction",
		CreatedAt:       time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}
