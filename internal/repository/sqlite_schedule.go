package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jalvord/skyward/internal/domain"
)

const dateLayout = "2006-01-02"

// SQLiteScheduleRepo implements ScheduleRepo using a SQLite database.
type SQLiteScheduleRepo struct {
	db *sql.DB
}

// NewSQLiteScheduleRepo creates a new SQLiteScheduleRepo.
func NewSQLiteScheduleRepo(db *sql.DB) *SQLiteScheduleRepo {
	return &SQLiteScheduleRepo{db: db}
}

func (r *SQLiteScheduleRepo) ReplaceWindow(ctx context.Context, from, to time.Time, entries []domain.ScheduleEntry) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	// Pending entries in the window are superseded by the new batch;
	// completed and cancelled history stays.
	_, err = tx.ExecContext(ctx,
		`DELETE FROM schedule_entries
		 WHERE status IN ('scheduled', 'weather_hold') AND date >= ? AND date <= ?`,
		from.Format(dateLayout), to.Format(dateLayout))
	if err != nil {
		return fmt.Errorf("clearing pending entries: %w", err)
	}

	insert := `INSERT INTO schedule_entries (
		id, date, start_time, end_time, activity, task_title, status,
		weather_suitable, wx_ceiling_ft, wx_visibility_sm, wx_wind_kt, wx_observed_at,
		note, created_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for _, e := range entries {
		var ceilingFt, windKt *int
		var visibilitySM *float64
		var observedAt *string
		if e.Weather != nil {
			ceilingFt = &e.Weather.CeilingFt
			visibilitySM = &e.Weather.VisibilitySM
			windKt = &e.Weather.WindKt
			s := e.Weather.ObservedAt.Format(time.RFC3339)
			observedAt = &s
		}
		_, err = tx.ExecContext(ctx, insert,
			e.ID,
			e.Date.Format(dateLayout),
			e.StartTime,
			e.EndTime,
			string(e.Activity),
			e.TaskTitle,
			string(e.Status),
			boolToInt(e.WeatherSuitable),
			ceilingFt,
			visibilitySM,
			windKt,
			observedAt,
			e.Note,
			e.CreatedAt.Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("inserting schedule entry %s: %w", e.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing window replacement: %w", err)
	}
	committed = true
	return nil
}

func (r *SQLiteScheduleRepo) ListRange(ctx context.Context, from, to time.Time) ([]domain.ScheduleEntry, error) {
	query := `SELECT id, date, start_time, end_time, activity, task_title, status,
		weather_suitable, wx_ceiling_ft, wx_visibility_sm, wx_wind_kt, wx_observed_at,
		note, created_at
		FROM schedule_entries
		WHERE date >= ? AND date <= ?
		ORDER BY date, start_time`
	rows, err := r.db.QueryContext(ctx, query, from.Format(dateLayout), to.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("listing schedule entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.ScheduleEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *SQLiteScheduleRepo) UpdateStatus(ctx context.Context, id string, status domain.EntryStatus) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE schedule_entries SET status = ? WHERE id = ?`, string(status), id)
	if err != nil {
		return fmt.Errorf("updating entry status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking status update: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("schedule entry %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteScheduleRepo) ListCompletedTaskTitles(ctx context.Context) (map[string]bool, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT DISTINCT task_title FROM schedule_entries WHERE status = 'completed'`)
	if err != nil {
		return nil, fmt.Errorf("listing completed tasks: %w", err)
	}
	defer rows.Close()

	titles := make(map[string]bool)
	for rows.Next() {
		var title string
		if err := rows.Scan(&title); err != nil {
			return nil, fmt.Errorf("scanning completed task title: %w", err)
		}
		titles[title] = true
	}
	return titles, rows.Err()
}

func scanEntry(rows *sql.Rows) (domain.ScheduleEntry, error) {
	var e domain.ScheduleEntry
	var dateStr, activity, status, createdAtStr string
	var suitable int
	var ceilingFt, windKt sql.NullInt64
	var visibilitySM sql.NullFloat64
	var observedAt sql.NullString

	err := rows.Scan(
		&e.ID, &dateStr, &e.StartTime, &e.EndTime, &activity, &e.TaskTitle, &status,
		&suitable, &ceilingFt, &visibilitySM, &windKt, &observedAt,
		&e.Note, &createdAtStr,
	)
	if err != nil {
		return e, fmt.Errorf("scanning schedule entry: %w", err)
	}

	e.Activity = domain.ActivityType(activity)
	e.Status = domain.EntryStatus(status)
	e.WeatherSuitable = suitable != 0
	if e.Date, err = time.Parse(dateLayout, dateStr); err != nil {
		return e, fmt.Errorf("parsing entry date: %w", err)
	}
	if e.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return e, fmt.Errorf("parsing created_at: %w", err)
	}
	if ceilingFt.Valid {
		snap := &domain.WeatherSnapshot{
			CeilingFt:    int(ceilingFt.Int64),
			VisibilitySM: visibilitySM.Float64,
			WindKt:       int(windKt.Int64),
		}
		if observedAt.Valid {
			if t, err := time.Parse(time.RFC3339, observedAt.String); err == nil {
				snap.ObservedAt = t
			}
		}
		e.Weather = snap
	}
	return e, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
