package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/jalvord/skyward/internal/domain"
)

// FormatScheduleList renders schedule entries grouped by week, oldest first.
func FormatScheduleList(entries []domain.ScheduleEntry) string {
	if len(entries) == 0 {
		return Dim("No sessions scheduled.")
	}

	var b strings.Builder
	lastWeek := -1

	for _, e := range entries {
		year, week := e.Date.ISOWeek()
		if week != lastWeek {
			if lastWeek != -1 {
				b.WriteString("\n")
			}
			b.WriteString(Header(fmt.Sprintf("Week %d, %d", week, year)))
			b.WriteString("\n")
			lastWeek = week
		}
		b.WriteString(formatEntryLine(e))
		b.WriteString("\n")
	}

	return b.String()
}

func formatEntryLine(e domain.ScheduleEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s  %s %s",
		e.Date.Format("Mon Jan 02"),
		Dim(e.StartTime+"-"+e.EndTime),
		ActivityBadge(e.Activity),
		Bold(e.TaskTitle))
	b.WriteString("  " + StatusPill(e.Status))
	if e.Note != "" {
		b.WriteString("\n    " + Dim(e.Note))
	}
	if e.Weather != nil {
		b.WriteString("\n    " + Dim(fmt.Sprintf("wx: ceiling %dft, vis %.0fsm, wind %dkt",
			e.Weather.CeilingFt, e.Weather.VisibilitySM, e.Weather.WindKt)))
	}
	return b.String()
}

// GenerateSummaryData carries the outcome of a generation run to the renderer.
type GenerateSummaryData struct {
	Entries        []domain.ScheduleEntry
	WindowStart    time.Time
	WindowEnd      time.Time
	CurrentWxGood  bool
	FlightEligible int
	GroundEligible int
}

// FormatGenerateSummary renders the post-generation report: the window, the
// eligibility counts, the weather gate, and the resulting sessions.
func FormatGenerateSummary(d GenerateSummaryData) string {
	var b strings.Builder

	b.WriteString(Header("Schedule Generated"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Window:    %s to %s\n",
		d.WindowStart.Format("Jan 2"), d.WindowEnd.Format("Jan 2, 2006"))
	fmt.Fprintf(&b, "Eligible:  %d flight, %d ground\n", d.FlightEligible, d.GroundEligible)

	wx := StyleGreen.Render("suitable")
	if !d.CurrentWxGood {
		wx = StyleYellow.Render("below minimums")
	}
	fmt.Fprintf(&b, "Weather:   currently %s\n", wx)
	fmt.Fprintf(&b, "Sessions:  %d\n\n", len(d.Entries))

	b.WriteString(FormatScheduleList(d.Entries))
	return b.String()
}
