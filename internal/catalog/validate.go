package catalog

import (
	"fmt"
	"sort"
)

// Validate checks the catalog's internal references. It reports tasks whose
// maneuver lists point at uncataloged maneuvers, prerequisite or prep
// entries naming unknown tasks, and cycles in the prerequisite graph.
// Run once at startup; the scheduler itself assumes a valid catalog.
func (c *Catalog) Validate() error {
	titles := make(map[string]bool, len(c.Tasks))
	for _, t := range c.Tasks {
		titles[t.Title] = true
	}

	for _, title := range sortedKeys(c.TaskManeuvers) {
		if !titles[title] {
			return fmt.Errorf("task_maneuvers: unknown task %q", title)
		}
		for _, code := range c.TaskManeuvers[title] {
			if _, ok := c.Maneuvers[code]; !ok {
				return fmt.Errorf("task_maneuvers: task %q references unknown maneuver %q", title, code)
			}
		}
	}

	for _, title := range sortedKeys(c.TaskPrereqs) {
		if !titles[title] {
			return fmt.Errorf("task_prereqs: unknown task %q", title)
		}
		for _, pre := range c.TaskPrereqs[title] {
			if !titles[pre] {
				return fmt.Errorf("task_prereqs: task %q references unknown prerequisite %q", title, pre)
			}
		}
	}

	for _, title := range sortedKeys(c.TopicPrep) {
		if !titles[title] {
			return fmt.Errorf("topic_prep: unknown task %q", title)
		}
		for _, topic := range c.TopicPrep[title] {
			if !titles[topic] {
				return fmt.Errorf("topic_prep: task %q references unknown topic %q", title, topic)
			}
		}
	}

	return c.checkPrereqCycles()
}

// checkPrereqCycles runs a DFS over the prerequisite graph looking for a
// back edge.
func (c *Catalog) checkPrereqCycles() error {
	const (
		unvisited = 0
		visiting  = 1
		done      = 2
	)
	state := make(map[string]int, len(c.TaskPrereqs))

	var visit func(title string) error
	visit = func(title string) error {
		switch state[title] {
		case visiting:
			return fmt.Errorf("task_prereqs: cycle through %q", title)
		case done:
			return nil
		}
		state[title] = visiting
		for _, pre := range c.TaskPrereqs[title] {
			if err := visit(pre); err != nil {
				return err
			}
		}
		state[title] = done
		return nil
	}

	for _, title := range sortedKeys(c.TaskPrereqs) {
		if err := visit(title); err != nil {
			return err
		}
	}
	return nil
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
