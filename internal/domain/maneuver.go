package domain

import "strings"

// Maneuver is an immutable catalog entry for a discrete, gradable flying
// skill. Code is the stable identifier used in joins across the system.
type Maneuver struct {
	Code     string
	Name     string
	Category string
}

// DisplayName turns a maneuver code into a human-readable name by replacing
// separators with spaces. Used when no catalog entry is at hand.
func DisplayName(code string) string {
	return strings.ReplaceAll(code, "_", " ")
}
