package ports

import (
	"context"

	"github.com/freelancedesk/freelancedesk/internal/core/domain"
)

// UpsertUserInput carries the identity-provider claims used to provision a
// user row on first login.
type UpsertUserInput struct {
	ID              string
	Email           string
	FirstName       string
	LastName        string
	ProfileImageURL string
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Get(ctx context.Context, id string) (*domain.User, error)
	// Upsert inserts the user or refreshes the identity fields if the row
	// already exists. Role and active flag are never touched by an upsert.
	Upsert(ctx context.Context, in UpsertUserInput) (*domain.User, error)
	UpdateRole(ctx context.Context, id, role string) (*domain.User, error)
	SetActive(ctx context.Context, id string, active bool) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

// UserService defines user and admin-console use cases.
type UserService interface {
	// Provision upserts the authenticated user from token claims and
	// returns the stored row.
	Provision(ctx context.Context, in UpsertUserInput) (*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	UpdateRole(ctx context.Context, id, role string) (*domain.User, error)
	Deactivate(ctx context.Context, id string) (*domain.User, error)
	Activate(ctx context.Context, id string) (*domain.User, error)
}
