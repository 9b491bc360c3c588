package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jalvord/skyward/internal/catalog"
	"github.com/jalvord/skyward/internal/domain"
	"github.com/jalvord/skyward/internal/repository"
	"github.com/jalvord/skyward/internal/scheduler"
)

type gradeService struct {
	cat    *catalog.Catalog
	grades repository.GradeRepo
}

func NewGradeService(cat *catalog.Catalog, grades repository.GradeRepo) GradeService {
	return &gradeService{cat: cat, grades: grades}
}

func (s *gradeService) Log(ctx context.Context, maneuverCode string, level domain.GradeLevel, note string) (*domain.ManeuverGrade, error) {
	if _, ok := s.cat.Maneuvers[maneuverCode]; !ok {
		return nil, fmt.Errorf("unknown maneuver %q", maneuverCode)
	}
	if level.Rank() < 0 {
		return nil, fmt.Errorf("unknown grade level %q", level)
	}

	now := time.Now().UTC()
	g := &domain.ManeuverGrade{
		ID:           uuid.New().String(),
		ManeuverCode: maneuverCode,
		Grade:        level,
		GradedAt:     now,
		Note:         note,
		CreatedAt:    now,
	}
	if err := s.grades.Create(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *gradeService) History(ctx context.Context, maneuverCode string) ([]domain.ManeuverGrade, error) {
	return s.grades.ListByManeuver(ctx, maneuverCode)
}

func (s *gradeService) Proficiency(ctx context.Context) (scheduler.ProficiencyMap, error) {
	grades, err := s.grades.ListNewestFirst(ctx)
	if err != nil {
		return nil, err
	}
	scheduler.SortGradesNewestFirst(grades)
	return scheduler.BuildProficiencyMap(grades), nil
}
