package domain

import "time"

// AvailabilitySlot is one declared weekly window: a day of week plus a
// start/end wall-clock time in "15:04" form. Slots are independent; no
// overlap validation is performed.
type AvailabilitySlot struct {
	ID        string
	Owner     SlotOwner
	Weekday   time.Weekday
	StartTime string
	EndTime   string
	CreatedAt time.Time
}

// ParseClock parses a "15:04" wall-clock string.
func ParseClock(s string) (time.Time, error) {
	return time.Parse("15:04", s)
}
