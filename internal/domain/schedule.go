package domain

import "time"

// WeatherSnapshot is an optional copy of the observation that informed a
// flight entry's suitability flag.
type WeatherSnapshot struct {
	CeilingFt    int
	VisibilitySM float64
	WindKt       int
	ObservedAt   time.Time
}

// ScheduleEntry is one dated, timed assignment of a task to a session slot.
// Entries are created by the allocator and never mutated by it afterwards;
// status transitions (completed, cancelled) belong to the caller.
type ScheduleEntry struct {
	ID              string
	Date            time.Time
	StartTime       string
	EndTime         string
	Activity        ActivityType
	TaskTitle       string
	Status          EntryStatus
	WeatherSuitable bool
	Weather         *WeatherSnapshot
	Note            string
	CreatedAt       time.Time
}
