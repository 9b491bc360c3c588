package scheduler

import "time"

// SimulatedSuitability is the deterministic stand-in for a multi-day
// forecast: a pure function of the date, seeded from its ordinal day of
// year and year. Roughly 70% of days come out suitable. The formula is
// arbitrary but fixed so generated schedules stay bit-for-bit
// reproducible; no statistical quality is claimed for it.
func SimulatedSuitability(date time.Time) bool {
	return (date.YearDay()*13+date.Year())%10 < 7
}

// Outlook builds the weather-suitability predicate for a generation window.
// The first two days of the window use the real current-observation flag;
// every later day falls back to the simulation.
func Outlook(windowStart time.Time, currentSuitable bool) func(time.Time) bool {
	cutoff := windowStart.AddDate(0, 0, 2)
	return func(date time.Time) bool {
		if date.Before(cutoff) {
			return currentSuitable
		}
		return SimulatedSuitability(date)
	}
}
