package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jalvord/skyward/internal/cli/formatter"
	"github.com/jalvord/skyward/internal/domain"
	"github.com/spf13/cobra"
)

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

func parseWeekday(s string) (time.Weekday, error) {
	d, ok := weekdayNames[strings.ToLower(s)]
	if !ok {
		return 0, fmt.Errorf("invalid weekday %q", s)
	}
	return d, nil
}

func parseOwner(s string) (domain.SlotOwner, error) {
	switch domain.SlotOwner(s) {
	case domain.OwnerStudent:
		return domain.OwnerStudent, nil
	case domain.OwnerInstructor:
		return domain.OwnerInstructor, nil
	default:
		return "", fmt.Errorf("invalid owner %q (expected student or instructor)", s)
	}
}

func newAvailabilityCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "availability",
		Short: "Manage weekly availability slots",
	}

	cmd.AddCommand(
		newAvailabilityAddCmd(app),
		newAvailabilityListCmd(app),
		newAvailabilityClearCmd(app),
	)

	return cmd
}

func newAvailabilityAddCmd(app *App) *cobra.Command {
	var day, start, end, owner string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a recurring weekly slot",
		RunE: func(cmd *cobra.Command, args []string) error {
			weekday, err := parseWeekday(day)
			if err != nil {
				return err
			}
			slotOwner, err := parseOwner(owner)
			if err != nil {
				return err
			}

			slot, err := app.Availability.Add(context.Background(), slotOwner, weekday, start, end)
			if err != nil {
				return err
			}

			fmt.Printf("Added %s slot: %s %s-%s\n", slot.Owner, slot.Weekday, slot.StartTime, slot.EndTime)
			return nil
		},
	}

	cmd.Flags().StringVar(&day, "day", "", "Weekday (e.g. monday)")
	cmd.Flags().StringVar(&start, "start", "", "Start time (HH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "End time (HH:MM)")
	cmd.Flags().StringVar(&owner, "owner", string(domain.OwnerStudent), "Slot owner (student or instructor)")
	_ = cmd.MarkFlagRequired("day")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func newAvailabilityListCmd(app *App) *cobra.Command {
	var owner string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List weekly slots",
		RunE: func(cmd *cobra.Command, args []string) error {
			slotOwner, err := parseOwner(owner)
			if err != nil {
				return err
			}

			slots, err := app.Availability.List(context.Background(), slotOwner)
			if err != nil {
				return err
			}

			if len(slots) == 0 {
				fmt.Printf("No %s slots declared.\n", slotOwner)
				return nil
			}

			rows := make([][]string, 0, len(slots))
			for _, s := range slots {
				rows = append(rows, []string{
					formatter.TruncID(s.ID),
					s.Weekday.String(),
					s.StartTime + "-" + s.EndTime,
				})
			}

			fmt.Printf("%s\n", formatter.RenderTable([]string{"ID", "Day", "Time"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&owner, "owner", string(domain.OwnerStudent), "Slot owner (student or instructor)")

	return cmd
}

func newAvailabilityClearCmd(app *App) *cobra.Command {
	var owner string

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove all slots for an owner",
		RunE: func(cmd *cobra.Command, args []string) error {
			slotOwner, err := parseOwner(owner)
			if err != nil {
				return err
			}

			n, err := app.Availability.Clear(context.Background(), slotOwner)
			if err != nil {
				return err
			}

			fmt.Printf("Removed %d %s slot(s)\n", n, slotOwner)
			return nil
		},
	}

	cmd.Flags().StringVar(&owner, "owner", string(domain.OwnerStudent), "Slot owner (student or instructor)")

	return cmd
}
