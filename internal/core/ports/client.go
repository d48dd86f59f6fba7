package ports

import (
	"context"

	"github.com/freelancedesk/freelancedesk/internal/core/domain"
)

// CreateClientInput carries the fields accepted when creating a client.
type CreateClientInput struct {
	UserID  string
	Name    string
	Email   string
	Phone   string
	Company string
	Address string
	Notes   string
}

// UpdateClientInput is a partial patch; nil fields are left untouched.
type UpdateClientInput struct {
	Name    *string
	Email   *string
	Phone   *string
	Company *string
	Address *string
	Notes   *string
}

// ClientRepository defines persistence operations for clients.
// Every query is scoped by the owning user's id.
type ClientRepository interface {
	ListByUser(ctx context.Context, userID string) ([]*domain.Client, error)
	Get(ctx context.Context, id, userID string) (*domain.Client, error)
	Create(ctx context.Context, c *domain.Client) error
	Update(ctx context.Context, id, userID string, in UpdateClientInput) (*domain.Client, error)
	Delete(ctx context.Context, id, userID string) error
}

// ClientService defines client use cases.
type ClientService interface {
	List(ctx context.Context, userID string) ([]*domain.Client, error)
	Create(ctx context.Context, in CreateClientInput) (*domain.Client, error)
	Update(ctx context.Context, id, userID string, in UpdateClientInput) (*domain.Client, error)
	Delete(ctx context.Context, id, userID string) error
}
