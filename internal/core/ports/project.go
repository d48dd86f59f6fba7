package ports

import (
	"context"
	"time"

	"github.com/freelancedesk/freelancedesk/internal/core/domain"
)

// CreateProjectInput carries the fields accepted when creating a project.
type CreateProjectInput struct {
	UserID          string
	ClientID        *string
	Name            string
	Description     string
	HourlyRateCents *int64
	Status          domain.ProjectStatus
	Deadline        *time.Time
}

// UpdateProjectInput is a partial patch; nil fields are left untouched.
type UpdateProjectInput struct {
	ClientID        *string
	Name            *string
	Description     *string
	HourlyRateCents *int64
	Status          *domain.ProjectStatus
	Deadline        *time.Time
}

// ProjectRepository defines persistence operations for projects.
type ProjectRepository interface {
	ListByUser(ctx context.Context, userID string) ([]*domain.Project, error)
	Get(ctx context.Context, id, userID string) (*domain.Project, error)
	Create(ctx context.Context, p *domain.Project) error
	Update(ctx context.Context, id, userID string, in UpdateProjectInput) (*domain.Project, error)
	Delete(ctx context.Context, id, userID string) error
}

// ProjectService defines project use cases.
type ProjectService interface {
	List(ctx context.Context, userID string) ([]*domain.Project, error)
	Create(ctx context.Context, in CreateProjectInput) (*domain.Project, error)
	Update(ctx context.Context, id, userID string, in UpdateProjectInput) (*domain.Project, error)
	Delete(ctx context.Context, id, userID string) error
}
