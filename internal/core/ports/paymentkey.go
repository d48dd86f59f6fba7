package ports

import (
	"context"

	"github.com/freelancedesk/freelancedesk/internal/core/domain"
)

// CreatePaymentKeyInput carries a plaintext gateway credential. The service
// encrypts it before anything touches the repository.
type CreatePaymentKeyInput struct {
	Provider string
	KeyName  string
	KeyValue string
}

// PaymentKeyRepository defines persistence operations for gateway keys.
type PaymentKeyRepository interface {
	List(ctx context.Context) ([]*domain.PaymentAPIKey, error)
	Create(ctx context.Context, k *domain.PaymentAPIKey) error
	Delete(ctx context.Context, id string) error
}

// PaymentKeyService stores and lists encrypted gateway credentials.
// Read paths always return redacted values.
type PaymentKeyService interface {
	List(ctx context.Context) ([]*domain.PaymentAPIKey, error)
	Create(ctx context.Context, in CreatePaymentKeyInput) (*domain.PaymentAPIKey, error)
	Delete(ctx context.Context, id string) error
}
