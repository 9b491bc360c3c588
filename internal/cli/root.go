package cli

import (
	"github.com/jalvord/skyward/internal/catalog"
	"github.com/jalvord/skyward/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Schedule     service.ScheduleService
	Grades       service.GradeService
	Endorsements service.EndorsementService
	Availability service.AvailabilityService
	Profile      service.ProfileService

	Catalog *catalog.Catalog
}

// NewRootCmd creates the top-level "skyward" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "skyward",
		Short: "Adaptive flight training scheduler",
	}

	root.AddCommand(
		newScheduleCmd(app),
		newGradeCmd(app),
		newEndorsementCmd(app),
		newAvailabilityCmd(app),
		newProfileCmd(app),
		newSyllabusCmd(app),
	)

	return root
}
