package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/freelancedesk/freelancedesk/internal/core/domain"
	"github.com/freelancedesk/freelancedesk/internal/core/ports"
)

const timeEntryColumns = `id, user_id, project_id, description, start_time, end_time,
	duration, is_running, created_at, updated_at`

// TimeEntryRepository persists time entries in Postgres. The one-running-
// entry-per-user invariant is enforced here: Start runs stop-and-insert in
// one transaction, and a partial unique index on (user_id) WHERE is_running
// rejects whatever slips past it.
type TimeEntryRepository struct {
	pool *pgxpool.Pool
}

func NewTimeEntryRepository(pool *pgxpool.Pool) *TimeEntryRepository {
	return &TimeEntryRepository{pool: pool}
}

func scanTimeEntry(r row) (*domain.TimeEntry, error) {
	var e domain.TimeEntry
	err := r.Scan(
		&e.ID, &e.UserID, &e.ProjectID, &e.Description, &e.StartTime,
		&e.EndTime, &e.Duration, &e.IsRunning, &e.CreatedAt, &e.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrTimeEntryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan time entry: %w", err)
	}
	return &e, nil
}

func (r *TimeEntryRepository) ListByUser(ctx context.Context, userID, projectID string) ([]*domain.TimeEntry, error) {
	q := `SELECT ` + timeEntryColumns + ` FROM time_entries WHERE user_id = $1`
	args := []any{userID}
	if projectID != "" {
		q += ` AND project_id = $2`
		args = append(args, projectID)
	}
	q += ` ORDER BY start_time DESC`

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list time entries: %w", err)
	}
	defer rows.Close()

	var entries []*domain.TimeEntry
	for rows.Next() {
		e, err := scanTimeEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *TimeEntryRepository) FindRunning(ctx context.Context, userID string) (*domain.TimeEntry, error) {
	q := `SELECT ` + timeEntryColumns + ` FROM time_entries WHERE user_id = $1 AND is_running`
	return scanTimeEntry(r.pool.QueryRow(ctx, q, userID))
}

func (r *TimeEntryRepository) Get(ctx context.Context, id, userID string) (*domain.TimeEntry, error) {
	q := `SELECT ` + timeEntryColumns + ` FROM time_entries WHERE id = $1 AND user_id = $2`
	return scanTimeEntry(r.pool.QueryRow(ctx, q, id, userID))
}

// Start stops the user's running entry, if any, at the new entry's start
// time and inserts the new entry, all in one transaction. The stopped entry
// is returned, or nil when the user was idle. A concurrent start losing the
// race against the unique index yields ErrTimerConflict.
func (r *TimeEntryRepository) Start(ctx context.Context, e *domain.TimeEntry) (*domain.TimeEntry, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("start timer: %w", err)
	}
	defer tx.Rollback(ctx)

	stopQ := `
		UPDATE time_entries
		SET end_time = $2,
			duration = GREATEST(0, FLOOR(EXTRACT(EPOCH FROM ($2 - start_time)) / 60))::INTEGER,
			is_running = FALSE,
			updated_at = now()
		WHERE user_id = $1 AND is_running
		RETURNING ` + timeEntryColumns
	stopped, err := scanTimeEntry(tx.QueryRow(ctx, stopQ, e.UserID, e.StartTime))
	if err != nil && !errors.Is(err, domain.ErrTimeEntryNotFound) {
		return nil, err
	}
	if errors.Is(err, domain.ErrTimeEntryNotFound) {
		stopped = nil
	}

	insertQ := `
		INSERT INTO time_entries (id, user_id, project_id, description, start_time,
			is_running, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, TRUE, $6, $7)`
	if _, err := tx.Exec(ctx, insertQ,
		e.ID, e.UserID, e.ProjectID, e.Description, e.StartTime, e.CreatedAt, e.UpdatedAt,
	); err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrTimerConflict
		}
		return nil, fmt.Errorf("insert time entry: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrTimerConflict
		}
		return nil, fmt.Errorf("start timer: %w", err)
	}
	return stopped, nil
}

// Finish closes an entry: sets end time and duration, clears is_running.
func (r *TimeEntryRepository) Finish(ctx context.Context, id, userID string, end time.Time, durationMin int) (*domain.TimeEntry, error) {
	q := `
		UPDATE time_entries
		SET end_time = $3, duration = $4, is_running = FALSE, updated_at = now()
		WHERE id = $1 AND user_id = $2
		RETURNING ` + timeEntryColumns
	return scanTimeEntry(r.pool.QueryRow(ctx, q, id, userID, end, durationMin))
}

func (r *TimeEntryRepository) Update(ctx context.Context, id, userID string, in ports.UpdateTimeEntryInput) (*domain.TimeEntry, error) {
	p := newPatch()
	if in.ProjectID != nil {
		p.add("project_id", *in.ProjectID)
	}
	if in.Description != nil {
		p.add("description", *in.Description)
	}
	if in.StartTime != nil {
		p.add("start_time", *in.StartTime)
	}
	if in.EndTime != nil {
		p.add("end_time", *in.EndTime)
	}
	if in.Duration != nil {
		p.add("duration", *in.Duration)
	}

	q := fmt.Sprintf(
		`UPDATE time_entries SET %s WHERE id = %s AND user_id = %s RETURNING `+timeEntryColumns,
		p.clause(), p.bind(id), p.bind(userID),
	)
	return scanTimeEntry(r.pool.QueryRow(ctx, q, p.args...))
}

func (r *TimeEntryRepository) Delete(ctx context.Context, id, userID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM time_entries WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete time entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTimeEntryNotFound
	}
	return nil
}
