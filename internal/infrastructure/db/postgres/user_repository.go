package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/freelancedesk/freelancedesk/internal/core/domain"
	"github.com/freelancedesk/freelancedesk/internal/core/ports"
)

const userColumns = `id, email, first_name, last_name, profile_image_url, role,
	hourly_rate_cents, is_active, created_at, updated_at`

// UserRepository persists users in Postgres.
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func scanUser(r row) (*domain.User, error) {
	var u domain.User
	err := r.Scan(
		&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.ProfileImageURL,
		&u.Role, &u.HourlyRateCents, &u.IsActive, &u.CreatedAt, &u.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &u, nil
}

func (r *UserRepository) Get(ctx context.Context, id string) (*domain.User, error) {
	q := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.pool.QueryRow(ctx, q, id))
}

// Upsert inserts the user or refreshes identity fields on conflict. Role
// and active flag are left alone so admin decisions survive logins.
func (r *UserRepository) Upsert(ctx context.Context, in ports.UpsertUserInput) (*domain.User, error) {
	q := `
		INSERT INTO users (id, email, first_name, last_name, profile_image_url)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			email = EXCLUDED.email,
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			profile_image_url = EXCLUDED.profile_image_url,
			updated_at = now()
		RETURNING ` + userColumns
	return scanUser(r.pool.QueryRow(ctx, q, in.ID, in.Email, in.FirstName, in.LastName, in.ProfileImageURL))
}

func (r *UserRepository) UpdateRole(ctx context.Context, id, role string) (*domain.User, error) {
	q := `UPDATE users SET role = $2, updated_at = now() WHERE id = $1 RETURNING ` + userColumns
	return scanUser(r.pool.QueryRow(ctx, q, id, role))
}

func (r *UserRepository) SetActive(ctx context.Context, id string, active bool) (*domain.User, error) {
	q := `UPDATE users SET is_active = $2, updated_at = now() WHERE id = $1 RETURNING ` + userColumns
	return scanUser(r.pool.QueryRow(ctx, q, id, active))
}

func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	q := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
