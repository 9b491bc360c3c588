package scheduler

import (
	"strings"

	"github.com/jalvord/skyward/internal/domain"
)

const maxNotedManeuvers = 3

// BuildNote formats the short pipe-delimited note attached to a session:
// a solo/dual marker, then (only when the task exercises reinforcement
// maneuvers) a re-practice segment naming up to three of them.
func BuildNote(lesson domain.LessonType, reinforcementNames []string) string {
	var segments []string
	if lesson == domain.LessonSolo {
		segments = append(segments, "solo flight")
	} else {
		segments = append(segments, "dual instruction")
	}
	if len(reinforcementNames) > 0 {
		names := reinforcementNames
		if len(names) > maxNotedManeuvers {
			names = names[:maxNotedManeuvers]
		}
		segments = append(segments, "re-practice: "+strings.Join(names, ", "))
	}
	return strings.Join(segments, " | ")
}
