// Package catalog holds the hand-authored training reference data: the
// maneuver index, the task list, and the static maps joining tasks to
// maneuvers, prerequisites, and prep topics. A Catalog is loaded once and
// treated as immutable configuration; tests substitute their own.
package catalog

import "github.com/jalvord/skyward/internal/domain"

// Catalog is the immutable training reference data threaded through every
// scheduling call. All task/maneuver joins go through its accessors so that
// title-keyed lookups live behind one seam.
type Catalog struct {
	Maneuvers     map[string]domain.Maneuver
	Tasks         []domain.TrainingTask
	TaskManeuvers map[string][]string
	TaskPrereqs   map[string][]string
	TopicPrep     map[string][]string
}

// ManeuversForTask returns the maneuver codes a task exercises. A task with
// no mapping (or an empty one) returns nil.
func (c *Catalog) ManeuversForTask(title string) []string {
	return c.TaskManeuvers[title]
}

// PrereqsForTask returns the prerequisite task titles for a task, or nil
// when the task has none.
func (c *Catalog) PrereqsForTask(title string) []string {
	return c.TaskPrereqs[title]
}

// PrepTopicsFor returns the ground-school titles considered preparatory for
// the given flight task.
func (c *Catalog) PrepTopicsFor(title string) []string {
	return c.TopicPrep[title]
}

// TaskByTitle looks up a task by its canonical title.
func (c *Catalog) TaskByTitle(title string) (domain.TrainingTask, bool) {
	for _, t := range c.Tasks {
		if t.Title == title {
			return t, true
		}
	}
	return domain.TrainingTask{}, false
}

// ManeuverName returns the display name for a maneuver code, falling back to
// the code with separators replaced when the maneuver is not cataloged.
func (c *Catalog) ManeuverName(code string) string {
	if m, ok := c.Maneuvers[code]; ok {
		return m.Name
	}
	return domain.DisplayName(code)
}

// IsPrepFor reports whether groundTitle appears in flightTitle's prep list.
func (c *Catalog) IsPrepFor(groundTitle, flightTitle string) bool {
	for _, t := range c.TopicPrep[flightTitle] {
		if t == groundTitle {
			return true
		}
	}
	return false
}
