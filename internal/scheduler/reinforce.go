package scheduler

import (
	"sort"

	"github.com/jalvord/skyward/internal/catalog"
	"github.com/jalvord/skyward/internal/domain"
)

// ReinforcementManeuvers returns the maneuver codes whose current grade is
// exactly needs_work. Codes graded introduced (or anything else) never
// appear. The result is sorted so identical maps yield identical output.
func ReinforcementManeuvers(prof ProficiencyMap) []string {
	var codes []string
	for code, grade := range prof {
		if grade == domain.GradeNeedsWork {
			codes = append(codes, code)
		}
	}
	sort.Strings(codes)
	return codes
}

// TasksForReinforcement returns the set of task titles whose maneuver list
// intersects the reinforcement codes.
func TasksForReinforcement(cat *catalog.Catalog, reinforcement []string) map[string]bool {
	needs := make(map[string]bool, len(reinforcement))
	for _, code := range reinforcement {
		needs[code] = true
	}

	titles := make(map[string]bool)
	for _, task := range cat.Tasks {
		for _, code := range cat.ManeuversForTask(task.Title) {
			if needs[code] {
				titles[task.Title] = true
				break
			}
		}
	}
	return titles
}

// Prioritize stably partitions tasks so that reinforcement members come
// first. Each group keeps its original relative order; the sort key is
// membership alone, which makes the output reproducible for identical
// inputs.
func Prioritize(tasks []domain.TrainingTask, reinforcementTitles map[string]bool) []domain.TrainingTask {
	ordered := make([]domain.TrainingTask, len(tasks))
	copy(ordered, tasks)
	sort.SliceStable(ordered, func(i, j int) bool {
		return rankFor(ordered[i], reinforcementTitles) < rankFor(ordered[j], reinforcementTitles)
	})
	return ordered
}

func rankFor(task domain.TrainingTask, reinforcementTitles map[string]bool) int {
	if reinforcementTitles[task.Title] {
		return 0
	}
	return 1
}

// ReinforcementForTask returns, in catalog order, the reinforcement codes a
// task actually exercises. Used by the annotation builder.
func ReinforcementForTask(cat *catalog.Catalog, taskTitle string, reinforcement []string) []string {
	needs := make(map[string]bool, len(reinforcement))
	for _, code := range reinforcement {
		needs[code] = true
	}
	var matched []string
	for _, code := range cat.ManeuversForTask(taskTitle) {
		if needs[code] {
			matched = append(matched, code)
		}
	}
	return matched
}
