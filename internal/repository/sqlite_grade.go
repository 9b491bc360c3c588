package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jalvord/skyward/internal/domain"
)

// SQLiteGradeRepo implements GradeRepo using a SQLite database.
type SQLiteGradeRepo struct {
	db *sql.DB
}

// NewSQLiteGradeRepo creates a new SQLiteGradeRepo.
func NewSQLiteGradeRepo(db *sql.DB) *SQLiteGradeRepo {
	return &SQLiteGradeRepo{db: db}
}

func (r *SQLiteGradeRepo) Create(ctx context.Context, g *domain.ManeuverGrade) error {
	query := `INSERT INTO maneuver_grades (id, maneuver_code, grade, graded_at, note, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		g.ID,
		g.ManeuverCode,
		string(g.Grade),
		g.GradedAt.Format(time.RFC3339),
		g.Note,
		g.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting maneuver grade: %w", err)
	}
	return nil
}

func (r *SQLiteGradeRepo) ListNewestFirst(ctx context.Context) ([]domain.ManeuverGrade, error) {
	query := `SELECT id, maneuver_code, grade, graded_at, note, created_at
		FROM maneuver_grades ORDER BY graded_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing grades: %w", err)
	}
	defer rows.Close()
	return scanGrades(rows)
}

func (r *SQLiteGradeRepo) ListByManeuver(ctx context.Context, code string) ([]domain.ManeuverGrade, error) {
	query := `SELECT id, maneuver_code, grade, graded_at, note, created_at
		FROM maneuver_grades WHERE maneuver_code = ? ORDER BY graded_at DESC`
	rows, err := r.db.QueryContext(ctx, query, code)
	if err != nil {
		return nil, fmt.Errorf("listing grades by maneuver: %w", err)
	}
	defer rows.Close()
	return scanGrades(rows)
}

func scanGrades(rows *sql.Rows) ([]domain.ManeuverGrade, error) {
	var grades []domain.ManeuverGrade
	for rows.Next() {
		var g domain.ManeuverGrade
		var grade, gradedAtStr, createdAtStr string
		if err := rows.Scan(&g.ID, &g.ManeuverCode, &grade, &gradedAtStr, &g.Note, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning maneuver grade: %w", err)
		}
		g.Grade = domain.GradeLevel(grade)
		var err error
		if g.GradedAt, err = time.Parse(time.RFC3339, gradedAtStr); err != nil {
			return nil, fmt.Errorf("parsing graded_at: %w", err)
		}
		if g.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		grades = append(grades, g)
	}
	return grades, rows.Err()
}
