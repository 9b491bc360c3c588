package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS maneuver_grades (
		id            TEXT PRIMARY KEY,
		maneuver_code TEXT NOT NULL,
		grade         TEXT NOT NULL
		              CHECK(grade IN ('introduced','needs_work','satisfactory','proficient')),
		graded_at     TEXT NOT NULL,
		note          TEXT NOT NULL DEFAULT '',
		created_at    TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_grades_maneuver ON maneuver_grades(maneuver_code, graded_at)`,

	`CREATE TABLE IF NOT EXISTS endorsements (
		id         TEXT PRIMARY KEY,
		type       TEXT NOT NULL,
		issued_at  TEXT NOT NULL,
		expires_at TEXT,
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS availability_slots (
		id         TEXT PRIMARY KEY,
		owner      TEXT NOT NULL CHECK(owner IN ('student','instructor')),
		weekday    INTEGER NOT NULL CHECK(weekday BETWEEN 0 AND 6),
		start_time TEXT NOT NULL,
		end_time   TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS schedule_entries (
		id               TEXT PRIMARY KEY,
		date             TEXT NOT NULL,
		start_time       TEXT NOT NULL,
		end_time         TEXT NOT NULL,
		activity         TEXT NOT NULL
		                 CHECK(activity IN ('flight','sim','ground','exam_prep')),
		task_title       TEXT NOT NULL,
		status           TEXT NOT NULL
		                 CHECK(status IN ('scheduled','weather_hold','completed','cancelled')),
		weather_suitable INTEGER NOT NULL DEFAULT 1,
		wx_ceiling_ft    INTEGER,
		wx_visibility_sm REAL,
		wx_wind_kt       INTEGER,
		wx_observed_at   TEXT,
		note             TEXT NOT NULL DEFAULT '',
		created_at       TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_entries_date ON schedule_entries(date, status)`,

	`CREATE TABLE IF NOT EXISTS scheduling_profile (
		id                   TEXT PRIMARY KEY DEFAULT 'default',
		weekly_hour_cap      REAL NOT NULL,
		max_sessions_per_day INTEGER NOT NULL,
		hours_per_session    REAL NOT NULL,
		home_airport         TEXT NOT NULL
	)`,
}
