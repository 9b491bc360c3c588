package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jalvord/skyward/internal/domain"
	"github.com/jalvord/skyward/internal/repository"
)

type profileService struct {
	profiles repository.ProfileRepo
}

func NewProfileService(profiles repository.ProfileRepo) ProfileService {
	return &profileService{profiles: profiles}
}

func (s *profileService) Get(ctx context.Context) (*domain.SchedulingProfile, error) {
	profile, err := s.profiles.Get(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		p := domain.DefaultProfile()
		return &p, nil
	}
	return profile, err
}

func (s *profileService) Set(ctx context.Context, p *domain.SchedulingProfile) error {
	if p.WeeklyHourCap <= 0 {
		return fmt.Errorf("weekly hour cap must be positive")
	}
	if p.MaxSessionsPerDay <= 0 {
		return fmt.Errorf("max sessions per day must be positive")
	}
	if p.HoursPerSession <= 0 {
		return fmt.Errorf("hours per session must be positive")
	}
	if p.HoursPerSession > p.WeeklyHourCap {
		return fmt.Errorf("hours per session (%.1f) exceeds the weekly cap (%.1f)", p.HoursPerSession, p.WeeklyHourCap)
	}
	return s.profiles.Upsert(ctx, p)
}
