package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jalvord/skyward/internal/domain"
	"github.com/jalvord/skyward/internal/repository"
)

type availabilityService struct {
	slots repository.AvailabilityRepo
}

func NewAvailabilityService(slots repository.AvailabilityRepo) AvailabilityService {
	return &availabilityService{slots: slots}
}

func (s *availabilityService) Add(ctx context.Context, owner domain.SlotOwner, weekday time.Weekday, start, end string) (*domain.AvailabilitySlot, error) {
	if weekday < time.Sunday || weekday > time.Saturday {
		return nil, fmt.Errorf("invalid weekday %d", weekday)
	}
	startT, err := domain.ParseClock(start)
	if err != nil {
		return nil, fmt.Errorf("invalid start time %q (expected HH:MM): %w", start, err)
	}
	endT, err := domain.ParseClock(end)
	if err != nil {
		return nil, fmt.Errorf("invalid end time %q (expected HH:MM): %w", end, err)
	}
	if !endT.After(startT) {
		return nil, fmt.Errorf("end time %q must be after start time %q", end, start)
	}

	slot := &domain.AvailabilitySlot{
		ID:        uuid.New().String(),
		Owner:     owner,
		Weekday:   weekday,
		StartTime: start,
		EndTime:   end,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.slots.Create(ctx, slot); err != nil {
		return nil, err
	}
	return slot, nil
}

func (s *availabilityService) List(ctx context.Context, owner domain.SlotOwner) ([]domain.AvailabilitySlot, error) {
	return s.slots.ListByOwner(ctx, owner)
}

func (s *availabilityService) Clear(ctx context.Context, owner domain.SlotOwner) (int, error) {
	return s.slots.DeleteByOwner(ctx, owner)
}
