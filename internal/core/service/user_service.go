package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/freelancedesk/freelancedesk/internal/core/domain"
	"github.com/freelancedesk/freelancedesk/internal/core/ports"
)

// UserService implements provisioning and the admin console user operations.
type UserService struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

func NewUserService(repo ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

// Provision upserts the user row from identity-provider claims. Role and
// active flag are preserved on existing rows; new rows default to the
// freelancer role.
func (s *UserService) Provision(ctx context.Context, in ports.UpsertUserInput) (*domain.User, error) {
	u, err := s.repo.Upsert(ctx, in)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", in.ID).Msg("failed to upsert user")
		return nil, err
	}
	return u, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.Get(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) UpdateRole(ctx context.Context, id, role string) (*domain.User, error) {
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}
	u, err := s.repo.UpdateRole(ctx, id, role)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("user_id", id).Str("role", role).Msg("user role updated")
	return u, nil
}

// Deactivate flips is_active off. Owned records are untouched and stay
// queryable; the auth middleware rejects the user on the next request.
func (s *UserService) Deactivate(ctx context.Context, id string) (*domain.User, error) {
	u, err := s.repo.SetActive(ctx, id, false)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("user_id", id).Msg("user deactivated")
	return u, nil
}

func (s *UserService) Activate(ctx context.Context, id string) (*domain.User, error) {
	u, err := s.repo.SetActive(ctx, id, true)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("user_id", id).Msg("user activated")
	return u, nil
}
