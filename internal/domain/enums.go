package domain

// GradeLevel is an ordinal proficiency rating on a maneuver.
type GradeLevel string

const (
	GradeIntroduced   GradeLevel = "introduced"
	GradeNeedsWork    GradeLevel = "needs_work"
	GradeSatisfactory GradeLevel = "satisfactory"
	GradeProficient   GradeLevel = "proficient"
)

// gradeRanks defines the total order on grade levels. Comparisons always use
// ordinal rank, never recency.
var gradeRanks = map[GradeLevel]int{
	GradeIntroduced:   0,
	GradeNeedsWork:    1,
	GradeSatisfactory: 2,
	GradeProficient:   3,
}

// Rank returns the ordinal position of the grade level. Unknown values rank
// below introduced.
func (g GradeLevel) Rank() int {
	r, ok := gradeRanks[g]
	if !ok {
		return -1
	}
	return r
}

// AtLeast reports whether g ranks at or above other.
func (g GradeLevel) AtLeast(other GradeLevel) bool {
	return g.Rank() >= other.Rank()
}

type TaskCategory string

const (
	TaskGroundSchool TaskCategory = "ground_school"
	TaskFlight       TaskCategory = "flight"
	TaskSimulator    TaskCategory = "simulator"
	TaskExam         TaskCategory = "exam"
)

// IsFlightCategory reports whether the category is scheduled as an airborne
// (or simulated-airborne) session.
func (c TaskCategory) IsFlightCategory() bool {
	return c == TaskFlight || c == TaskSimulator
}

type ActivityType string

const (
	ActivityFlight   ActivityType = "flight"
	ActivitySim      ActivityType = "sim"
	ActivityGround   ActivityType = "ground"
	ActivityExamPrep ActivityType = "exam_prep"
)

// ActivityFor maps a task category to the activity type written on a
// schedule entry.
func ActivityFor(c TaskCategory) ActivityType {
	switch c {
	case TaskSimulator:
		return ActivitySim
	case TaskExam:
		return ActivityExamPrep
	case TaskGroundSchool:
		return ActivityGround
	default:
		return ActivityFlight
	}
}

type EntryStatus string

const (
	EntryScheduled   EntryStatus = "scheduled"
	EntryWeatherHold EntryStatus = "weather_hold"
	EntryCompleted   EntryStatus = "completed"
	EntryCancelled   EntryStatus = "cancelled"
)

type LessonType string

const (
	LessonSolo LessonType = "solo"
	LessonDual LessonType = "dual"
)

type EndorsementType string

const (
	EndorsementSoloFlight       EndorsementType = "solo_flight"
	EndorsementSoloCrossCountry EndorsementType = "solo_cross_country"
	EndorsementKnowledgeTest    EndorsementType = "knowledge_test"
	EndorsementPracticalTest    EndorsementType = "practical_test"
)

// SoloEndorsementTypes is the canonical set of endorsement types that
// authorize unsupervised student flight.
var SoloEndorsementTypes = map[EndorsementType]bool{
	EndorsementSoloFlight:       true,
	EndorsementSoloCrossCountry: true,
}

type SlotOwner string

const (
	OwnerStudent    SlotOwner = "student"
	OwnerInstructor SlotOwner = "instructor"
)
