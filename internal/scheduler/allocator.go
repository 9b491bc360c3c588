package scheduler

import (
	"time"

	"github.com/jalvord/skyward/internal/catalog"
	"github.com/jalvord/skyward/internal/domain"
)

// GenerateInput carries everything one generation run needs, already
// materialized in memory. FlightTasks and GroundTasks must be eligible and,
// for flight tasks, reinforcement-prioritized; the allocator consumes them
// in order through two independent cursors.
type GenerateInput struct {
	Catalog       *catalog.Catalog
	FlightTasks   []domain.TrainingTask
	GroundTasks   []domain.TrainingTask
	Slots         []domain.AvailabilitySlot
	IsGoodWeather func(time.Time) bool
	Profile       domain.SchedulingProfile
	Proficiency   ProficiencyMap
	Endorsements  []domain.Endorsement
	Reinforcement []string
	Start         time.Time
	Snapshot      *domain.WeatherSnapshot
	WindowDays    int // 0 means one calendar month
}

// GenerateSchedule walks the window day by day and greedily assigns tasks to
// availability slots. First-fit, not optimal: each slot takes the first
// branch of the priority cascade that matches.
//
// Weekly hours reset whenever the iterated day is a Sunday; the per-day
// session count resets every day. The loop ends when the date passes the
// window end or both task cursors are exhausted.
func GenerateSchedule(in GenerateInput) []domain.ScheduleEntry {
	slotsByDay := groupSlotsByWeekday(in.Slots)

	end := in.Start.AddDate(0, 1, 0)
	if in.WindowDays > 0 {
		end = in.Start.AddDate(0, 0, in.WindowDays)
	}
	snapshotCutoff := in.Start.AddDate(0, 0, 2)

	var entries []domain.ScheduleEntry
	flightIdx, groundIdx := 0, 0
	weeklyHours := 0.0

	for date := in.Start; !date.After(end); date = date.AddDate(0, 0, 1) {
		if flightIdx >= len(in.FlightTasks) && groundIdx >= len(in.GroundTasks) {
			break
		}
		if date.Weekday() == time.Sunday {
			weeklyHours = 0
		}
		daySessions := 0

		for _, slot := range slotsByDay[date.Weekday()] {
			if weeklyHours >= in.Profile.WeeklyHourCap || daySessions >= in.Profile.MaxSessionsPerDay {
				break
			}

			goodWeather := in.IsGoodWeather(date)
			flightLeft := flightIdx < len(in.FlightTasks)
			groundLeft := groundIdx < len(in.GroundTasks)

			var entry domain.ScheduleEntry
			switch {
			case goodWeather && flightLeft:
				entry = in.flightEntry(in.FlightTasks[flightIdx], date, slot, true, "")
				flightIdx++
			case !goodWeather && groundLeft:
				entry = in.groundEntry(in.GroundTasks[groundIdx], date, slot, flightIdx)
				groundIdx++
			case groundLeft:
				entry = in.curriculumEntry(in.GroundTasks[groundIdx], date, slot)
				groundIdx++
			case flightLeft:
				entry = in.flightEntry(in.FlightTasks[flightIdx], date, slot, false, "weather caution")
				flightIdx++
			default:
				continue
			}

			if entry.Activity == domain.ActivityFlight || entry.Activity == domain.ActivitySim {
				if date.Before(snapshotCutoff) {
					entry.Weather = in.Snapshot
				}
			}

			entries = append(entries, entry)
			weeklyHours += in.Profile.HoursPerSession
			daySessions++
		}
	}

	return entries
}

// flightEntry builds a flight or sim entry. Unsuitable weather puts the
// entry on weather hold and swaps the normal note for a caution-prefixed
// one.
func (in GenerateInput) flightEntry(task domain.TrainingTask, date time.Time, slot domain.AvailabilitySlot, goodWeather bool, cautionPrefix string) domain.ScheduleEntry {
	lesson := Classify(in.Catalog, task.Title, in.Proficiency, in.Endorsements, in.Start)
	names := in.reinforcementNames(task.Title)

	note := BuildNote(lesson, names)
	status := domain.EntryScheduled
	if !goodWeather {
		note = cautionPrefix + " | " + note
		status = domain.EntryWeatherHold
	}

	return domain.ScheduleEntry{
		Date:            date,
		StartTime:       slot.StartTime,
		EndTime:         slot.EndTime,
		Activity:        domain.ActivityFor(task.Category),
		TaskTitle:       task.Title,
		Status:          status,
		WeatherSuitable: goodWeather,
		Note:            note,
	}
}

// groundEntry builds a ground or exam-prep entry scheduled because weather
// ruled flying out. The note says whether the topic preps the next pending
// flight task.
func (in GenerateInput) groundEntry(task domain.TrainingTask, date time.Time, slot domain.AvailabilitySlot, flightIdx int) domain.ScheduleEntry {
	note := "ground session"
	if flightIdx < len(in.FlightTasks) {
		next := in.FlightTasks[flightIdx]
		if in.Catalog.IsPrepFor(task.Title, next.Title) {
			note = "prep for " + next.Title
		}
	}
	return in.nonFlightEntry(task, date, slot, note)
}

// curriculumEntry builds the weather-independent fallback ground entry.
func (in GenerateInput) curriculumEntry(task domain.TrainingTask, date time.Time, slot domain.AvailabilitySlot) domain.ScheduleEntry {
	return in.nonFlightEntry(task, date, slot, "curriculum completion")
}

func (in GenerateInput) nonFlightEntry(task domain.TrainingTask, date time.Time, slot domain.AvailabilitySlot, note string) domain.ScheduleEntry {
	return domain.ScheduleEntry{
		Date:            date,
		StartTime:       slot.StartTime,
		EndTime:         slot.EndTime,
		Activity:        domain.ActivityFor(task.Category),
		TaskTitle:       task.Title,
		Status:          domain.EntryScheduled,
		WeatherSuitable: true,
		Note:            note,
	}
}

func (in GenerateInput) reinforcementNames(taskTitle string) []string {
	codes := ReinforcementForTask(in.Catalog, taskTitle, in.Reinforcement)
	if len(codes) == 0 {
		return nil
	}
	names := make([]string, len(codes))
	for i, code := range codes {
		names[i] = in.Catalog.ManeuverName(code)
	}
	return names
}

// groupSlotsByWeekday indexes slots by day of week, preserving input order
// within each day.
func groupSlotsByWeekday(slots []domain.AvailabilitySlot) map[time.Weekday][]domain.AvailabilitySlot {
	byDay := make(map[time.Weekday][]domain.AvailabilitySlot, 7)
	for _, s := range slots {
		byDay[s.Weekday] = append(byDay[s.Weekday], s)
	}
	return byDay
}

// NextMonday returns the first Monday on or after now's date, at midnight
// in now's location. Used as the default generation start.
func NextMonday(now time.Time) time.Time {
	date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	for date.Weekday() != time.Monday {
		date = date.AddDate(0, 0, 1)
	}
	return date
}
