package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/freelancedesk/freelancedesk/internal/core/domain"
)

const activityLogColumns = `id, user_id, action, entity_type, entity_id, details,
	ip_address, user_agent, created_at`

const defaultActivityLimit = 50

// ActivityLogRepository appends to and reads the audit trail in Postgres.
type ActivityLogRepository struct {
	pool *pgxpool.Pool
}

func NewActivityLogRepository(pool *pgxpool.Pool) *ActivityLogRepository {
	return &ActivityLogRepository{pool: pool}
}

func (r *ActivityLogRepository) Insert(ctx context.Context, l *domain.ActivityLog) error {
	q := `
		INSERT INTO activity_logs (id, user_id, action, entity_type, entity_id, details,
			ip_address, user_agent, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(ctx, q,
		l.ID, l.UserID, l.Action, l.EntityType, l.EntityID, l.Details,
		l.IPAddress, l.UserAgent, l.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert activity log: %w", err)
	}
	return nil
}

// List returns the newest entries first. An empty userID matches all users;
// limit <= 0 falls back to the default page size.
func (r *ActivityLogRepository) List(ctx context.Context, userID string, limit int) ([]*domain.ActivityLog, error) {
	if limit <= 0 {
		limit = defaultActivityLimit
	}

	q := `SELECT ` + activityLogColumns + ` FROM activity_logs`
	args := []any{}
	if userID != "" {
		args = append(args, userID)
		q += ` WHERE user_id = $1`
	}
	args = append(args, limit)
	q += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d`, len(args))

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list activity logs: %w", err)
	}
	defer rows.Close()

	var logs []*domain.ActivityLog
	for rows.Next() {
		var l domain.ActivityLog
		if err := rows.Scan(
			&l.ID, &l.UserID, &l.Action, &l.EntityType, &l.EntityID, &l.Details,
			&l.IPAddress, &l.UserAgent, &l.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan activity log: %w", err)
		}
		logs = append(logs, &l)
	}
	return logs, rows.Err()
}
