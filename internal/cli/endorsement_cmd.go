package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/jalvord/skyward/internal/cli/formatter"
	"github.com/jalvord/skyward/internal/domain"
	"github.com/spf13/cobra"
)

func newEndorsementCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "endorsement",
		Short: "Manage instructor endorsements",
	}

	cmd.AddCommand(
		newEndorsementAddCmd(app),
		newEndorsementListCmd(app),
	)

	return cmd
}

func newEndorsementAddCmd(app *App) *cobra.Command {
	var expires string

	cmd := &cobra.Command{
		Use:   "add TYPE",
		Short: "Record an endorsement",
		Long: "Record an endorsement. TYPE is one of: solo_flight, " +
			"solo_cross_country, knowledge_test, practical_test.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var expiresAt *time.Time
			if expires != "" {
				t, err := time.Parse(dateLayout, expires)
				if err != nil {
					return fmt.Errorf("invalid expiry date %q: %w", expires, err)
				}
				// Endorsements stay valid through the named day.
				t = t.Add(24*time.Hour - time.Second)
				expiresAt = &t
			}

			e, err := app.Endorsements.Add(context.Background(), domain.EndorsementType(args[0]), expiresAt)
			if err != nil {
				return err
			}

			if e.ExpiresAt != nil {
				fmt.Printf("Added %s endorsement, expires %s\n", e.Type, e.ExpiresAt.Format(dateLayout))
			} else {
				fmt.Printf("Added %s endorsement\n", e.Type)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&expires, "expires", "", "Expiry date (YYYY-MM-DD, omit for no expiry)")

	return cmd
}

func newEndorsementListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List endorsements",
		RunE: func(cmd *cobra.Command, args []string) error {
			endorsements, err := app.Endorsements.List(context.Background())
			if err != nil {
				return err
			}

			if len(endorsements) == 0 {
				fmt.Println("No endorsements recorded.")
				return nil
			}

			now := time.Now().UTC()
			rows := make([][]string, 0, len(endorsements))
			for _, e := range endorsements {
				expiry := formatter.Dim("none")
				if e.ExpiresAt != nil {
					expiry = e.ExpiresAt.Format(dateLayout)
					if !e.ExpiresAt.After(now) {
						expiry = formatter.StyleRed.Render(expiry + " (expired)")
					}
				}
				rows = append(rows, []string{
					string(e.Type),
					e.IssuedAt.Format(dateLayout),
					expiry,
				})
			}

			fmt.Printf("%s\n", formatter.RenderTable([]string{"Type", "Issued", "Expires"}, rows))
			return nil
		},
	}
}
