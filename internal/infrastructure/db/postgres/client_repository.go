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

const clientColumns = `id, user_id, name, email, phone, company, address, notes,
	created_at, updated_at`

// ClientRepository persists clients in Postgres. Every query is scoped by
// the owning user's id.
type ClientRepository struct {
	pool *pgxpool.Pool
}

func NewClientRepository(pool *pgxpool.Pool) *ClientRepository {
	return &ClientRepository{pool: pool}
}

func scanClient(r row) (*domain.Client, error) {
	var c domain.Client
	err := r.Scan(
		&c.ID, &c.UserID, &c.Name, &c.Email, &c.Phone, &c.Company,
		&c.Address, &c.Notes, &c.CreatedAt, &c.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrClientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan client: %w", err)
	}
	return &c, nil
}

func (r *ClientRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Client, error) {
	q := `SELECT ` + clientColumns + ` FROM clients WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	var clients []*domain.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

func (r *ClientRepository) Get(ctx context.Context, id, userID string) (*domain.Client, error) {
	q := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1 AND user_id = $2`
	return scanClient(r.pool.QueryRow(ctx, q, id, userID))
}

func (r *ClientRepository) Create(ctx context.Context, c *domain.Client) error {
	q := `
		INSERT INTO clients (id, user_id, name, email, phone, company, address, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.pool.Exec(ctx, q,
		c.ID, c.UserID, c.Name, c.Email, c.Phone, c.Company, c.Address, c.Notes,
		c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}
	return nil
}

func (r *ClientRepository) Update(ctx context.Context, id, userID string, in ports.UpdateClientInput) (*domain.Client, error) {
	p := newPatch()
	if in.Name != nil {
		p.add("name", *in.Name)
	}
	if in.Email != nil {
		p.add("email", *in.Email)
	}
	if in.Phone != nil {
		p.add("phone", *in.Phone)
	}
	if in.Company != nil {
		p.add("company", *in.Company)
	}
	if in.Address != nil {
		p.add("address", *in.Address)
	}
	if in.Notes != nil {
		p.add("notes", *in.Notes)
	}

	q := fmt.Sprintf(
		`UPDATE clients SET %s WHERE id = %s AND user_id = %s RETURNING `+clientColumns,
		p.clause(), p.bind(id), p.bind(userID),
	)
	return scanClient(r.pool.QueryRow(ctx, q, p.args...))
}

func (r *ClientRepository) Delete(ctx context.Context, id, userID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM clients WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrClientNotFound
	}
	return nil
}
