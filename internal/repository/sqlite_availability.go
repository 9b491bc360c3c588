package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jalvord/skyward/internal/domain"
)

// SQLiteAvailabilityRepo implements AvailabilityRepo using a SQLite database.
type SQLiteAvailabilityRepo struct {
	db *sql.DB
}

// NewSQLiteAvailabilityRepo creates a new SQLiteAvailabilityRepo.
func NewSQLiteAvailabilityRepo(db *sql.DB) *SQLiteAvailabilityRepo {
	return &SQLiteAvailabilityRepo{db: db}
}

func (r *SQLiteAvailabilityRepo) Create(ctx context.Context, s *domain.AvailabilitySlot) error {
	query := `INSERT INTO availability_slots (id, owner, weekday, start_time, end_time, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		string(s.Owner),
		int(s.Weekday),
		s.StartTime,
		s.EndTime,
		s.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting availability slot: %w", err)
	}
	return nil
}

func (r *SQLiteAvailabilityRepo) ListByOwner(ctx context.Context, owner domain.SlotOwner) ([]domain.AvailabilitySlot, error) {
	query := `SELECT id, owner, weekday, start_time, end_time, created_at
		FROM availability_slots WHERE owner = ? ORDER BY weekday, start_time`
	rows, err := r.db.QueryContext(ctx, query, string(owner))
	if err != nil {
		return nil, fmt.Errorf("listing availability slots: %w", err)
	}
	defer rows.Close()

	var slots []domain.AvailabilitySlot
	for rows.Next() {
		var s domain.AvailabilitySlot
		var ownerStr, createdAtStr string
		var weekday int
		if err := rows.Scan(&s.ID, &ownerStr, &weekday, &s.StartTime, &s.EndTime, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning availability slot: %w", err)
		}
		s.Owner = domain.SlotOwner(ownerStr)
		s.Weekday = time.Weekday(weekday)
		if s.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		slots = append(slots, s)
	}
	return slots, rows.Err()
}

func (r *SQLiteAvailabilityRepo) DeleteByOwner(ctx context.Context, owner domain.SlotOwner) (int, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM availability_slots WHERE owner = ?`, string(owner))
	if err != nil {
		return 0, fmt.Errorf("deleting availability slots: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting deleted slots: %w", err)
	}
	return int(n), nil
}

var _ AvailabilityRepo = (*SQLiteAvailabilityRepo)(nil)
