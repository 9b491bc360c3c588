package domain

// SchedulingProfile holds the learner's pacing limits and home location.
type SchedulingProfile struct {
	ID                string
	WeeklyHourCap     float64
	MaxSessionsPerDay int
	HoursPerSession   float64
	HomeAirport       string
}

// DefaultProfile returns the pacing limits used when the learner has not set
// any.
func DefaultProfile() SchedulingProfile {
	return SchedulingProfile{
		WeeklyHourCap:     10,
		MaxSessionsPerDay: 1,
		HoursPerSession:   2,
		HomeAirport:       "KPAO",
	}
}
