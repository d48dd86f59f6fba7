package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/freelancedesk/freelancedesk/internal/core/domain"
	"github.com/freelancedesk/freelancedesk/internal/core/ports"
)

// AbTestService implements experiment management. The server only stores
// tests and raw results; no significance computation happens here.
type AbTestService struct {
	repo ports.AbTestRepository
	log  zerolog.Logger
}

func NewAbTestService(repo ports.AbTestRepository, log zerolog.Logger) *AbTestService {
	return &AbTestService{repo: repo, log: log}
}

func (s *AbTestService) List(ctx context.Context) ([]*domain.AbTest, error) {
	return s.repo.List(ctx)
}

func (s *AbTestService) Create(ctx context.Context, in ports.CreateAbTestInput) (*domain.AbTest, error) {
	status := in.Status
	if status == "" {
		status = domain.TestDraft
	}

	now := time.Now().UTC()
	t := &domain.AbTest{
		ID:            uuid.NewString(),
		Name:          in.Name,
		Description:   in.Description,
		Type:          in.Type,
		VariantA:      in.VariantA,
		VariantB:      in.VariantB,
		Status:        status,
		StartDate:     in.StartDate,
		EndDate:       in.EndDate,
		SuccessMetric: in.SuccessMetric,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		s.log.Error().Err(err).Str("name", in.Name).Msg("failed to create ab test")
		return nil, err
	}
	s.log.Info().Str("test_id", t.ID).Str("name", t.Name).Msg("ab test created")
	return t, nil
}

func (s *AbTestService) RecordResult(ctx context.Context, in ports.RecordResultInput) (*domain.AbTestResult, error) {
	// The test must exist; results against unknown tests are rejected.
	if _, err := s.repo.Get(ctx, in.TestID); err != nil {
		return nil, err
	}

	r := &domain.AbTestResult{
		ID:         uuid.NewString(),
		TestID:     in.TestID,
		EntityID:   in.EntityID,
		EntityType: in.EntityType,
		Variant:    in.Variant,
		Success:    in.Success,
		RecordedAt: time.Now().UTC(),
	}
	if err := s.repo.RecordResult(ctx, r); err != nil {
		s.log.Error().Err(err).Str("test_id", in.TestID).Msg("failed to record ab test result")
		return nil, err
	}
	return r, nil
}

func (s *AbTestService) ListResults(ctx context.Context, testID string) ([]*domain.AbTestResult, error) {
	return s.repo.ListResults(ctx, testID)
}
