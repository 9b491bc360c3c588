package cli

import (
	"context"
	"fmt"

	"github.com/jalvord/skyward/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "View and adjust pacing limits",
	}

	cmd.AddCommand(
		newProfileShowCmd(app),
		newProfileSetCmd(app),
	)

	return cmd
}

func newProfileShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current scheduling profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Profile.Get(context.Background())
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.Header("Scheduling Profile"))
			fmt.Printf("Weekly hour cap:      %.1f\n", p.WeeklyHourCap)
			fmt.Printf("Max sessions per day: %d\n", p.MaxSessionsPerDay)
			fmt.Printf("Hours per session:    %.1f\n", p.HoursPerSession)
			fmt.Printf("Home airport:         %s\n", p.HomeAirport)
			return nil
		},
	}
}

func newProfileSetCmd(app *App) *cobra.Command {
	var weeklyHours, sessionHours float64
	var maxDaily int
	var airport string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update the scheduling profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			// Unset flags keep their current values.
			p, err := app.Profile.Get(ctx)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("weekly-hours") {
				p.WeeklyHourCap = weeklyHours
			}
			if cmd.Flags().Changed("max-daily") {
				p.MaxSessionsPerDay = maxDaily
			}
			if cmd.Flags().Changed("session-hours") {
				p.HoursPerSession = sessionHours
			}
			if cmd.Flags().Changed("airport") {
				p.HomeAirport = airport
			}

			if err := app.Profile.Set(ctx, p); err != nil {
				return err
			}

			fmt.Println("Profile updated.")
			return nil
		},
	}

	cmd.Flags().Float64Var(&weeklyHours, "weekly-hours", 0, "Weekly flight hour cap")
	cmd.Flags().IntVar(&maxDaily, "max-daily", 0, "Maximum sessions per day")
	cmd.Flags().Float64Var(&sessionHours, "session-hours", 0, "Hours per session")
	cmd.Flags().StringVar(&airport, "airport", "", "Home airport ICAO code")

	return cmd
}
