// Package scheduler implements the adaptive training scheduler: a pure,
// synchronous computation that turns graded proficiency, endorsements,
// availability, and a weather signal into a month of session assignments.
// Nothing in this package performs I/O or holds state across calls.
package scheduler

import (
	"sort"

	"github.com/jalvord/skyward/internal/domain"
)

// ProficiencyMap maps a maneuver code to its most recent grade. At most one
// entry exists per code.
type ProficiencyMap map[string]domain.GradeLevel

// SortGradesNewestFirst orders grades by evaluation time descending, stably.
// BuildProficiencyMap requires this ordering; callers loading grades from
// storage should sort immediately before building the map.
func SortGradesNewestFirst(grades []domain.ManeuverGrade) {
	sort.SliceStable(grades, func(i, j int) bool {
		return grades[i].GradedAt.After(grades[j].GradedAt)
	})
}

// BuildProficiencyMap folds an ordered grade list into a proficiency map.
// The list must be sorted most-recent-first; the fold is first-write-wins,
// so the newest grade per maneuver is retained and older duplicates are
// ignored. Grades without a maneuver code are skipped. No sorting and no
// timestamp comparison happens here.
func BuildProficiencyMap(grades []domain.ManeuverGrade) ProficiencyMap {
	prof := make(ProficiencyMap, len(grades))
	for _, g := range grades {
		if g.ManeuverCode == "" {
			continue
		}
		if _, seen := prof[g.ManeuverCode]; !seen {
			prof[g.ManeuverCode] = g.Grade
		}
	}
	return prof
}
