package formatter

import (
	"sort"
	"strings"

	"github.com/jalvord/skyward/internal/catalog"
	"github.com/jalvord/skyward/internal/domain"
	"github.com/jalvord/skyward/internal/scheduler"
)

// FormatGradeHistory renders the grade log for one maneuver, newest first.
func FormatGradeHistory(maneuverName string, grades []domain.ManeuverGrade) string {
	if len(grades) == 0 {
		return Dim("No grades logged for " + maneuverName + ".")
	}

	rows := make([][]string, 0, len(grades))
	for _, g := range grades {
		rows = append(rows, []string{
			g.GradedAt.Format("2006-01-02"),
			GradePill(g.Grade),
			g.Note,
		})
	}

	var b strings.Builder
	b.WriteString(Header(maneuverName))
	b.WriteString("\n")
	b.WriteString(RenderTable([]string{"Date", "Grade", "Note"}, rows))
	return b.String()
}

// FormatProficiency renders the effective proficiency per maneuver, grouped by
// the maneuver's catalog category. Ungraded maneuvers are listed too so the
// learner can see what remains untouched.
func FormatProficiency(cat *catalog.Catalog, prof scheduler.ProficiencyMap) string {
	byCategory := make(map[string][]domain.Maneuver)
	for _, m := range cat.Maneuvers {
		byCategory[m.Category] = append(byCategory[m.Category], m)
	}

	categories := make([]string, 0, len(byCategory))
	for c := range byCategory {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	var b strings.Builder
	for i, c := range categories {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(Header(strings.ReplaceAll(c, "_", " ")))
		b.WriteString("\n")

		maneuvers := byCategory[c]
		sort.Slice(maneuvers, func(i, j int) bool { return maneuvers[i].Code < maneuvers[j].Code })

		rows := make([][]string, 0, len(maneuvers))
		for _, m := range maneuvers {
			level, graded := prof[m.Code]
			pill := Dim("○ ungraded")
			if graded {
				pill = GradePill(level)
			}
			rows = append(rows, []string{m.Name, pill})
		}
		b.WriteString(RenderTable([]string{"Maneuver", "Grade"}, rows))
	}
	return b.String()
}
