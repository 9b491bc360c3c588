package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jalvord/skyward/internal/domain"
	"github.com/jalvord/skyward/internal/repository"
)

type endorsementService struct {
	endorsements repository.EndorsementRepo
}

func NewEndorsementService(endorsements repository.EndorsementRepo) EndorsementService {
	return &endorsementService{endorsements: endorsements}
}

var validEndorsementTypes = map[domain.EndorsementType]bool{
	domain.EndorsementSoloFlight:       true,
	domain.EndorsementSoloCrossCountry: true,
	domain.EndorsementKnowledgeTest:    true,
	domain.EndorsementPracticalTest:    true,
}

func (s *endorsementService) Add(ctx context.Context, typ domain.EndorsementType, expiresAt *time.Time) (*domain.Endorsement, error) {
	if !validEndorsementTypes[typ] {
		return nil, fmt.Errorf("unknown endorsement type %q", typ)
	}
	now := time.Now().UTC()
	if expiresAt != nil && !expiresAt.After(now) {
		return nil, fmt.Errorf("expiry %s is already past", expiresAt.Format("2006-01-02"))
	}

	e := &domain.Endorsement{
		ID:        uuid.New().String(),
		Type:      typ,
		IssuedAt:  now,
		ExpiresAt: expiresAt,
		CreatedAt: now,
	}
	if err := s.endorsements.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *endorsementService) List(ctx context.Context) ([]domain.Endorsement, error) {
	return s.endorsements.List(ctx)
}
