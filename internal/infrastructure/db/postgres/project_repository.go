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

const projectColumns = `id, user_id, client_id, name, description, hourly_rate_cents,
	status, deadline, created_at, updated_at`

// ProjectRepository persists projects in Postgres.
type ProjectRepository struct {
	pool *pgxpool.Pool
}

func NewProjectRepository(pool *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{pool: pool}
}

func scanProject(r row) (*domain.Project, error) {
	var p domain.Project
	err := r.Scan(
		&p.ID, &p.UserID, &p.ClientID, &p.Name, &p.Description,
		&p.HourlyRateCents, &p.Status, &p.Deadline, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrProjectNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan project: %w", err)
	}
	return &p, nil
}

func (r *ProjectRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Project, error) {
	q := `SELECT ` + projectColumns + ` FROM projects WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var projects []*domain.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (r *ProjectRepository) Get(ctx context.Context, id, userID string) (*domain.Project, error) {
	q := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1 AND user_id = $2`
	return scanProject(r.pool.QueryRow(ctx, q, id, userID))
}

func (r *ProjectRepository) Create(ctx context.Context, p *domain.Project) error {
	q := `
		INSERT INTO projects (id, user_id, client_id, name, description, hourly_rate_cents,
			status, deadline, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.pool.Exec(ctx, q,
		p.ID, p.UserID, p.ClientID, p.Name, p.Description, p.HourlyRateCents,
		string(p.Status), p.Deadline, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create project: %w", err)
	}
	return nil
}

func (r *ProjectRepository) Update(ctx context.Context, id, userID string, in ports.UpdateProjectInput) (*domain.Project, error) {
	p := newPatch()
	if in.ClientID != nil {
		p.add("client_id", *in.ClientID)
	}
	if in.Name != nil {
		p.add("name", *in.Name)
	}
	if in.Description != nil {
		p.add("description", *in.Description)
	}
	if in.HourlyRateCents != nil {
		p.add("hourly_rate_cents", *in.HourlyRateCents)
	}
	if in.Status != nil {
		p.add("status", string(*in.Status))
	}
	if in.Deadline != nil {
		p.add("deadline", *in.Deadline)
	}

	q := fmt.Sprintf(
		`UPDATE projects SET %s WHERE id = %s AND user_id = %s RETURNING `+projectColumns,
		p.clause(), p.bind(id), p.bind(userID),
	)
	return scanProject(r.pool.QueryRow(ctx, q, p.args...))
}

func (r *ProjectRepository) Delete(ctx context.Context, id, userID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}
