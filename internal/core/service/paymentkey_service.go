package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/freelancedesk/freelancedesk/internal/core/domain"
	"github.com/freelancedesk/freelancedesk/internal/core/ports"
)

// Encrypter seals a plaintext credential for storage.
type Encrypter interface {
	Encrypt(plaintext string) (string, error)
}

// PaymentKeyService stores gateway credentials encrypted at rest. No read
// path ever returns the stored value in the clear.
type PaymentKeyService struct {
	repo   ports.PaymentKeyRepository
	cipher Encrypter
	log    zerolog.Logger
}

func NewPaymentKeyService(repo ports.PaymentKeyRepository, cipher Encrypter, log zerolog.Logger) *PaymentKeyService {
	return &PaymentKeyService{repo: repo, cipher: cipher, log: log}
}

// List returns all keys with the encrypted value redacted.
func (s *PaymentKeyService) List(ctx context.Context) ([]*domain.PaymentAPIKey, error) {
	keys, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.PaymentAPIKey, len(keys))
	for i, k := range keys {
		safe := k.Redacted()
		out[i] = &safe
	}
	return out, nil
}

func (s *PaymentKeyService) Create(ctx context.Context, in ports.CreatePaymentKeyInput) (*domain.PaymentAPIKey, error) {
	sealed, err := s.cipher.Encrypt(in.KeyValue)
	if err != nil {
		s.log.Error().Err(err).Str("provider", in.Provider).Msg("failed to encrypt payment key")
		return nil, err
	}

	now := time.Now().UTC()
	k := &domain.PaymentAPIKey{
		ID:           uuid.NewString(),
		Provider:     in.Provider,
		KeyName:      in.KeyName,
		EncryptedKey: sealed,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Create(ctx, k); err != nil {
		s.log.Error().Err(err).Str("provider", in.Provider).Msg("failed to store payment key")
		return nil, err
	}

	s.log.Info().Str("key_id", k.ID).Str("provider", k.Provider).Str("key_name", k.KeyName).Msg("payment key stored")
	safe := k.Redacted()
	return &safe, nil
}

func (s *PaymentKeyService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
