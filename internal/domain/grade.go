package domain

import "time"

// ManeuverGrade is one instructor evaluation of a maneuver. Many grades may
// exist per maneuver over time; only the most recent one is authoritative
// for scheduling decisions.
type ManeuverGrade struct {
	ID           string
	ManeuverCode string
	Grade        GradeLevel
	GradedAt     time.Time
	Note         string
	CreatedAt    time.Time
}
