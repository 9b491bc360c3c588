package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jalvord/skyward/internal/domain"
)

// SQLiteProfileRepo implements ProfileRepo using a SQLite database. The
// profile is a single row keyed 'default'.
type SQLiteProfileRepo struct {
	db *sql.DB
}

// NewSQLiteProfileRepo creates a new SQLiteProfileRepo.
func NewSQLiteProfileRepo(db *sql.DB) *SQLiteProfileRepo {
	return &SQLiteProfileRepo{db: db}
}

func (r *SQLiteProfileRepo) Get(ctx context.Context) (*domain.SchedulingProfile, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, weekly_hour_cap, max_sessions_per_day, hours_per_session, home_airport
		 FROM scheduling_profile WHERE id = 'default'`)

	var p domain.SchedulingProfile
	err := row.Scan(&p.ID, &p.WeeklyHourCap, &p.MaxSessionsPerDay, &p.HoursPerSession, &p.HomeAirport)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("scheduling profile: %w", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("scanning scheduling profile: %w", err)
	}
	return &p, nil
}

func (r *SQLiteProfileRepo) Upsert(ctx context.Context, p *domain.SchedulingProfile) error {
	query := `INSERT INTO scheduling_profile (id, weekly_hour_cap, max_sessions_per_day, hours_per_session, home_airport)
		VALUES ('default', ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			weekly_hour_cap = excluded.weekly_hour_cap,
			max_sessions_per_day = excluded.max_sessions_per_day,
			hours_per_session = excluded.hours_per_session,
			home_airport = excluded.home_airport`
	_, err := r.db.ExecContext(ctx, query,
		p.WeeklyHourCap, p.MaxSessionsPerDay, p.HoursPerSession, p.HomeAirport)
	if err != nil {
		return fmt.Errorf("upserting scheduling profile: %w", err)
	}
	return nil
}
