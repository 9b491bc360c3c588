package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jalvord/skyward/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// GradeColor returns the style for a grade level, green-to-red by rank.
func GradeColor(level domain.GradeLevel) lipgloss.Style {
	switch level {
	case domain.GradeProficient:
		return StyleGreen
	case domain.GradeSatisfactory:
		return StyleBlue
	case domain.GradeNeedsWork:
		return StyleYellow
	case domain.GradeIntroduced:
		return StyleDim
	default:
		return StyleDim
	}
}

// GradePill returns a colored grade indicator such as "● proficient".
func GradePill(level domain.GradeLevel) string {
	switch level {
	case domain.GradeProficient:
		return StyleGreen.Render("● proficient")
	case domain.GradeSatisfactory:
		return StyleBlue.Render("● satisfactory")
	case domain.GradeNeedsWork:
		return StyleYellow.Render("◐ needs work")
	case domain.GradeIntroduced:
		return StyleDim.Render("○ introduced")
	default:
		return StyleDim.Render("○ ungraded")
	}
}

// StatusPill returns a colored status indicator for a schedule entry.
func StatusPill(status domain.EntryStatus) string {
	switch status {
	case domain.EntryScheduled:
		return StyleBlue.Render("○ Scheduled")
	case domain.EntryWeatherHold:
		return StyleYellow.Render("◌ Wx Hold")
	case domain.EntryCompleted:
		return StyleGreen.Render("✔ Completed")
	case domain.EntryCancelled:
		return StyleDim.Render("✖ Cancelled")
	default:
		return StyleDim.Render(string(status))
	}
}

// ActivityBadge returns a styled activity label.
func ActivityBadge(a domain.ActivityType) string {
	switch a {
	case domain.ActivityFlight:
		return StylePurple.Render("FLIGHT")
	case domain.ActivitySim:
		return StyleBlue.Render("SIM")
	case domain.ActivityGround:
		return StyleFg.Render("GROUND")
	case domain.ActivityExamPrep:
		return StyleYellow.Render("EXAM")
	default:
		return StyleDim.Render(strings.ToUpper(string(a)))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
