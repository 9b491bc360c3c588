package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/jalvord/skyward/internal/catalog"
	"github.com/jalvord/skyward/internal/cli"
	"github.com/jalvord/skyward/internal/db"
	"github.com/jalvord/skyward/internal/repository"
	"github.com/jalvord/skyward/internal/service"
	"github.com/jalvord/skyward/internal/weather"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.skyward/skyward.db
	dbPath := os.Getenv("SKYWARD_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".skyward", "skyward.db")
	}

	// The catalog is static; a broken build should fail before touching
	// the database.
	cat := catalog.Default()
	if err := cat.Validate(); err != nil {
		return fmt.Errorf("catalog: %w", err)
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	gradeRepo := repository.NewSQLiteGradeRepo(database)
	endorsementRepo := repository.NewSQLiteEndorsementRepo(database)
	availabilityRepo := repository.NewSQLiteAvailabilityRepo(database)
	scheduleRepo := repository.NewSQLiteScheduleRepo(database)
	profileRepo := repository.NewSQLiteProfileRepo(database)

	// Live weather is optional; when disabled the provider reports no
	// observation and generation assumes suitable conditions.
	wx := weather.NewHTTPProvider(weather.LoadConfig())

	app := &cli.App{
		Schedule:     service.NewScheduleService(cat, gradeRepo, endorsementRepo, availabilityRepo, scheduleRepo, profileRepo, wx),
		Grades:       service.NewGradeService(cat, gradeRepo),
		Endorsements: service.NewEndorsementService(endorsementRepo),
		Availability: service.NewAvailabilityService(availabilityRepo),
		Profile:      service.NewProfileService(profileRepo),
		Catalog:      cat,
	}

	// Plain output when piped or redirected.
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
