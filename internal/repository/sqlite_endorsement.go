package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jalvord/skyward/internal/domain"
)

// SQLiteEndorsementRepo implements EndorsementRepo using a SQLite database.
type SQLiteEndorsementRepo struct {
	db *sql.DB
}

// NewSQLiteEndorsementRepo creates a new SQLiteEndorsementRepo.
func NewSQLiteEndorsementRepo(db *sql.DB) *SQLiteEndorsementRepo {
	return &SQLiteEndorsementRepo{db: db}
}

func (r *SQLiteEndorsementRepo) Create(ctx context.Context, e *domain.Endorsement) error {
	var expiresAt *string
	if e.ExpiresAt != nil {
		s := e.ExpiresAt.Format(time.RFC3339)
		expiresAt = &s
	}
	query := `INSERT INTO endorsements (id, type, issued_at, expires_at, created_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		string(e.Type),
		e.IssuedAt.Format(time.RFC3339),
		expiresAt,
		e.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting endorsement: %w", err)
	}
	return nil
}

func (r *SQLiteEndorsementRepo) List(ctx context.Context) ([]domain.Endorsement, error) {
	query := `SELECT id, type, issued_at, expires_at, created_at
		FROM endorsements ORDER BY issued_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing endorsements: %w", err)
	}
	defer rows.Close()

	var endorsements []domain.Endorsement
	for rows.Next() {
		var e domain.Endorsement
		var typ, issuedAtStr, createdAtStr string
		var expiresAtStr sql.NullString
		if err := rows.Scan(&e.ID, &typ, &issuedAtStr, &expiresAtStr, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning endorsement: %w", err)
		}
		e.Type = domain.EndorsementType(typ)
		if e.IssuedAt, err = time.Parse(time.RFC3339, issuedAtStr); err != nil {
			return nil, fmt.Errorf("parsing issued_at: %w", err)
		}
		if e.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		if expiresAtStr.Valid {
			t, err := time.Parse(time.RFC3339, expiresAtStr.String)
			if err != nil {
				return nil, fmt.Errorf("parsing expires_at: %w", err)
			}
			e.ExpiresAt = &t
		}
		endorsements = append(endorsements, e)
	}
	return endorsements, rows.Err()
}

func (r *SQLiteEndorsementRepo) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	query := `DELETE FROM endorsements WHERE expires_at IS NOT NULL AND expires_at <= ?`
	res, err := r.db.ExecContext(ctx, query, now.Format(time.RFC3339))
	if err != nil {
		return 0, fmt.Errorf("deleting expired endorsements: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting deleted endorsements: %w", err)
	}
	return int(n), nil
}
