package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/freelancedesk/freelancedesk/internal/core/domain"
	"github.com/freelancedesk/freelancedesk/internal/core/ports"
)

// ClientService implements client CRUD scoped to the owning user.
type ClientService struct {
	repo ports.ClientRepository
	log  zerolog.Logger
}

func NewClientService(repo ports.ClientRepository, log zerolog.Logger) *ClientService {
	return &ClientService{repo: repo, log: log}
}

func (s *ClientService) List(ctx context.Context, userID string) ([]*domain.Client, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *ClientService) Create(ctx context.Context, in ports.CreateClientInput) (*domain.Client, error) {
	now := time.Now().UTC()
	c := &domain.Client{
		ID:        uuid.NewString(),
		UserID:    in.UserID,
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Company:   in.Company,
		Address:   in.Address,
		Notes:     in.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		s.log.Error().Err(err).Str("user_id", in.UserID).Msg("failed to create client")
		return nil, err
	}
	s.log.Info().Str("client_id", c.ID).Str("user_id", c.UserID).Msg("client created")
	return c, nil
}

func (s *ClientService) Update(ctx context.Context, id, userID string, in ports.UpdateClientInput) (*domain.Client, error) {
	return s.repo.Update(ctx, id, userID, in)
}

func (s *ClientService) Delete(ctx context.Context, id, userID string) error {
	return s.repo.Delete(ctx, id, userID)
}
