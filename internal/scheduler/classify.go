package scheduler

import (
	"time"

	"github.com/jalvord/skyward/internal/catalog"
	"github.com/jalvord/skyward/internal/domain"
)

// Classify decides whether the learner may fly the given task solo or needs
// an instructor. A valid solo endorsement is a hard gate independent of
// skill: without one the answer is always dual. With one, the task is solo
// only when it exercises at least one maneuver and every one of them is
// graded at least satisfactory.
func Classify(cat *catalog.Catalog, taskTitle string, prof ProficiencyMap, endorsements []domain.Endorsement, now time.Time) domain.LessonType {
	if !hasSoloEndorsement(endorsements, now) {
		return domain.LessonDual
	}
	codes := cat.ManeuversForTask(taskTitle)
	if len(codes) == 0 {
		return domain.LessonDual
	}
	if allAtLeast(prof, codes, domain.GradeSatisfactory) {
		return domain.LessonSolo
	}
	return domain.LessonDual
}

func hasSoloEndorsement(endorsements []domain.Endorsement, now time.Time) bool {
	for _, e := range endorsements {
		if e.AuthorizesSoloAt(now) {
			return true
		}
	}
	return false
}
