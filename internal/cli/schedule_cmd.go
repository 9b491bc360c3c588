package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jalvord/skyward/internal/cli/formatter"
	"github.com/jalvord/skyward/internal/service"
	"github.com/spf13/cobra"
)

const dateLayout = "2006-01-02"

// resolveEntryID matches a schedule entry by exact ID or unique ID prefix
// within the upcoming window.
func resolveEntryID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("entry ID is required")
	}

	now := time.Now().UTC()
	entries, err := app.Schedule.ListWindow(ctx, now.AddDate(0, -1, 0), now.AddDate(0, 2, 0))
	if err != nil {
		return "", err
	}

	for _, e := range entries {
		if e.ID == input {
			return e.ID, nil
		}
	}

	var matches []string
	for _, e := range entries {
		if strings.HasPrefix(e.ID, input) {
			matches = append(matches, e.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("schedule entry not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("entry ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func newScheduleCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Generate and manage the training schedule",
	}

	cmd.AddCommand(
		newScheduleGenerateCmd(app),
		newScheduleShowCmd(app),
		newScheduleCompleteCmd(app),
		newScheduleCancelCmd(app),
	)

	return cmd
}

func newScheduleGenerateCmd(app *App) *cobra.Command {
	var start string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Plan the next month of training sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := service.GenerateRequest{}
			if start != "" {
				startDate, err := time.Parse(dateLayout, start)
				if err != nil {
					return fmt.Errorf("invalid start date %q: %w", start, err)
				}
				req.Start = startDate
			}

			res, err := app.Schedule.Generate(context.Background(), req)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatGenerateSummary(formatter.GenerateSummaryData{
				Entries:        res.Entries,
				WindowStart:    res.WindowStart,
				WindowEnd:      res.WindowEnd,
				CurrentWxGood:  res.CurrentWxGood,
				FlightEligible: res.FlightEligible,
				GroundEligible: res.GroundEligible,
			}))
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "Window start date (YYYY-MM-DD, default next Monday)")

	return cmd
}

func newScheduleShowCmd(app *App) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show scheduled sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			fromDate := time.Now().UTC().Truncate(24 * time.Hour)
			toDate := fromDate.AddDate(0, 1, 0)

			var err error
			if from != "" {
				if fromDate, err = time.Parse(dateLayout, from); err != nil {
					return fmt.Errorf("invalid from date %q: %w", from, err)
				}
			}
			if to != "" {
				if toDate, err = time.Parse(dateLayout, to); err != nil {
					return fmt.Errorf("invalid to date %q: %w", to, err)
				}
			}

			entries, err := app.Schedule.ListWindow(context.Background(), fromDate, toDate)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatScheduleList(entries))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Range start (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&to, "to", "", "Range end (YYYY-MM-DD, default one month out)")

	return cmd
}

func newScheduleCompleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "complete ID",
		Short: "Mark a session as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveEntryID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Schedule.MarkCompleted(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Completed session %s\n", id[:8])
			return nil
		},
	}
}

func newScheduleCancelCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel ID",
		Short: "Cancel a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveEntryID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Schedule.Cancel(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Cancelled session %s\n", id[:8])
			return nil
		},
	}
}
