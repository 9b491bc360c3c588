package cli

import (
	"context"
	"fmt"

	"github.com/jalvord/skyward/internal/cli/formatter"
	"github.com/jalvord/skyward/internal/domain"
	"github.com/spf13/cobra"
)

func newGradeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grade",
		Short: "Log and review maneuver grades",
	}

	cmd.AddCommand(
		newGradeLogCmd(app),
		newGradeHistoryCmd(app),
		newGradeProgressCmd(app),
	)

	return cmd
}

func newGradeLogCmd(app *App) *cobra.Command {
	var note string

	cmd := &cobra.Command{
		Use:   "log MANEUVER LEVEL",
		Short: "Record a grade for a maneuver",
		Long: "Record a grade for a maneuver. LEVEL is one of: introduced, " +
			"needs_work, satisfactory, proficient.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := app.Grades.Log(context.Background(), args[0], domain.GradeLevel(args[1]), note)
			if err != nil {
				return err
			}

			name := app.Catalog.ManeuverName(g.ManeuverCode)
			fmt.Printf("Logged %s for %s\n", formatter.GradePill(g.Grade), name)
			return nil
		},
	}

	cmd.Flags().StringVar(&note, "note", "", "Instructor note for this grade")

	return cmd
}

func newGradeHistoryCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "history MANEUVER",
		Short: "Show the grade log for a maneuver",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			grades, err := app.Grades.History(context.Background(), args[0])
			if err != nil {
				return err
			}

			name := app.Catalog.ManeuverName(args[0])
			fmt.Printf("%s\n", formatter.FormatGradeHistory(name, grades))
			return nil
		},
	}
}

func newGradeProgressCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "progress",
		Short: "Show effective proficiency across all maneuvers",
		RunE: func(cmd *cobra.Command, args []string) error {
			prof, err := app.Grades.Proficiency(context.Background())
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatProficiency(app.Catalog, prof))
			return nil
		},
	}
}
