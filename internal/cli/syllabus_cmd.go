package cli

import (
	"fmt"
	"strings"

	"github.com/jalvord/skyward/internal/cli/formatter"
	"github.com/spf13/cobra"
)

// newSyllabusCmd renders the built-in training catalog: tasks, the maneuvers
// each covers, and prerequisite chains.
func newSyllabusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "syllabus",
		Short: "Show the training task catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][]string, 0, len(app.Catalog.Tasks))
			for _, task := range app.Catalog.Tasks {
				codes := app.Catalog.ManeuversForTask(task.Title)
				names := make([]string, 0, len(codes))
				for _, code := range codes {
					names = append(names, app.Catalog.ManeuverName(code))
				}

				prereqs := strings.Join(app.Catalog.PrereqsForTask(task.Title), ", ")
				if prereqs == "" {
					prereqs = formatter.Dim("none")
				}

				rows = append(rows, []string{
					task.Title,
					string(task.Category),
					formatter.FormatMinutes(task.EstimatedMin),
					strings.Join(names, ", "),
					prereqs,
				})
			}

			fmt.Printf("%s\n", formatter.RenderTable(
				[]string{"Task", "Category", "Est", "Maneuvers", "Requires"}, rows))
			return nil
		},
	}
}
