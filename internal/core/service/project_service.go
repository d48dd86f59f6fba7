package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/freelancedesk/freelancedesk/internal/core/domain"
	"github.com/freelancedesk/freelancedesk/internal/core/ports"
)

// ProjectService implements project CRUD. Status values are free to move
// between any pair of states; only unknown labels are rejected.
type ProjectService struct {
	repo ports.ProjectRepository
	log  zerolog.Logger
}

func NewProjectService(repo ports.ProjectRepository, log zerolog.Logger) *ProjectService {
	return &ProjectService{repo: repo, log: log}
}

func (s *ProjectService) List(ctx context.Context, userID string) ([]*domain.Project, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *ProjectService) Create(ctx context.Context, in ports.CreateProjectInput) (*domain.Project, error) {
	status := in.Status
	if status == "" {
		status = domain.ProjectActive
	}

	now := time.Now().UTC()
	p := &domain.Project{
		ID:              uuid.NewString(),
		UserID:          in.UserID,
		ClientID:        in.ClientID,
		Name:            in.Name,
		Description:     in.Description,
		HourlyRateCents: in.HourlyRateCents,
		Status:          status,
		Deadline:        in.Deadline,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		s.log.Error().Err(err).Str("user_id", in.UserID).Msg("failed to create project")
		return nil, err
	}
	s.log.Info().Str("project_id", p.ID).Str("user_id", p.UserID).Msg("project created")
	return p, nil
}

func (s *ProjectService) Update(ctx context.Context, id, userID string, in ports.UpdateProjectInput) (*domain.Project, error) {
	return s.repo.Update(ctx, id, userID, in)
}

func (s *ProjectService) Delete(ctx context.Context, id, userID string) error {
	return s.repo.Delete(ctx, id, userID)
}
