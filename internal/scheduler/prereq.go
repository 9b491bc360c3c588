package scheduler

import (
	"github.com/jalvord/skyward/internal/catalog"
	"github.com/jalvord/skyward/internal/domain"
)

// PrerequisitesMet reports whether every prerequisite of the given task is
// satisfied. A task with no prerequisite entry is vacuously satisfied.
//
// A prerequisite is satisfied when it is in the completed set, or when it
// maps to a non-empty maneuver list and every one of those maneuvers is
// graded at least satisfactory. A prerequisite with an empty maneuver list
// falls back to completed-set membership only.
//
// The prerequisite map is static and assumed acyclic; catalog.Validate
// checks that at load time.
func PrerequisitesMet(cat *catalog.Catalog, taskTitle string, completed map[string]bool, prof ProficiencyMap) bool {
	prereqs := cat.PrereqsForTask(taskTitle)
	if len(prereqs) == 0 {
		return true
	}
	for _, pre := range prereqs {
		if completed[pre] {
			continue
		}
		codes := cat.ManeuversForTask(pre)
		if len(codes) == 0 {
			return false
		}
		if !allAtLeast(prof, codes, domain.GradeSatisfactory) {
			return false
		}
	}
	return true
}

// allAtLeast reports whether every code has a proficiency entry at or above
// the given level. Missing entries fail the check.
func allAtLeast(prof ProficiencyMap, codes []string, level domain.GradeLevel) bool {
	for _, code := range codes {
		grade, ok := prof[code]
		if !ok || !grade.AtLeast(level) {
			return false
		}
	}
	return true
}
