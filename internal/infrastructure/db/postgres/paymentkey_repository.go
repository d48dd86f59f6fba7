package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/freelancedesk/freelancedesk/internal/core/domain"
)

const paymentKeyColumns = `id, provider, key_name, encrypted_key, is_active, created_at, updated_at`

// PaymentKeyRepository persists encrypted gateway credentials in Postgres.
type PaymentKeyRepository struct {
	pool *pgxpool.Pool
}

func NewPaymentKeyRepository(pool *pgxpool.Pool) *PaymentKeyRepository {
	return &PaymentKeyRepository{pool: pool}
}

func (r *PaymentKeyRepository) List(ctx context.Context) ([]*domain.PaymentAPIKey, error) {
	q := `SELECT ` + paymentKeyColumns + ` FROM payment_api_keys ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list payment keys: %w", err)
	}
	defer rows.Close()

	var keys []*domain.PaymentAPIKey
	for rows.Next() {
		var k domain.PaymentAPIKey
		if err := rows.Scan(
			&k.ID, &k.Provider, &k.KeyName, &k.EncryptedKey, &k.IsActive,
			&k.CreatedAt, &k.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan payment key: %w", err)
		}
		keys = append(keys, &k)
	}
	return keys, rows.Err()
}

func (r *PaymentKeyRepository) Create(ctx context.Context, k *domain.PaymentAPIKey) error {
	q := `
		INSERT INTO payment_api_keys (id, provider, key_name, encrypted_key, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(ctx, q,
		k.ID, k.Provider, k.KeyName, k.EncryptedKey, k.IsActive, k.CreatedAt, k.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create payment key: %w", err)
	}
	return nil
}

func (r *PaymentKeyRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM payment_api_keys WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete payment key: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPaymentKeyNotFound
	}
	return nil
}
