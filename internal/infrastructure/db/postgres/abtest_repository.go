package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/freelancedesk/freelancedesk/internal/core/domain"
)

const abTestColumns = `id, name, description, type, variant_a, variant_b, status,
	start_date, end_date, success_metric, created_at, updated_at`

const abTestResultColumns = `id, test_id, entity_id, entity_type, variant, success, recorded_at`

// AbTestRepository persists A/B tests and their results in Postgres.
type AbTestRepository struct {
	pool *pgxpool.Pool
}

func NewAbTestRepository(pool *pgxpool.Pool) *AbTestRepository {
	return &AbTestRepository{pool: pool}
}

func scanAbTest(r row) (*domain.AbTest, error) {
	var t domain.AbTest
	err := r.Scan(
		&t.ID, &t.Name, &t.Description, &t.Type, &t.VariantA, &t.VariantB,
		&t.Status, &t.StartDate, &t.EndDate, &t.SuccessMetric,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrAbTestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan ab test: %w", err)
	}
	return &t, nil
}

func (r *AbTestRepository) List(ctx context.Context) ([]*domain.AbTest, error) {
	q := `SELECT ` + abTestColumns + ` FROM ab_tests ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list ab tests: %w", err)
	}
	defer rows.Close()

	var tests []*domain.AbTest
	for rows.Next() {
		t, err := scanAbTest(rows)
		if err != nil {
			return nil, err
		}
		tests = append(tests, t)
	}
	return tests, rows.Err()
}

func (r *AbTestRepository) Get(ctx context.Context, id string) (*domain.AbTest, error) {
	q := `SELECT ` + abTestColumns + ` FROM ab_tests WHERE id = $1`
	return scanAbTest(r.pool.QueryRow(ctx, q, id))
}

func (r *AbTestRepository) Create(ctx context.Context, t *domain.AbTest) error {
	q := `
		INSERT INTO ab_tests (id, name, description, type, variant_a, variant_b, status,
			start_date, end_date, success_metric, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.pool.Exec(ctx, q,
		t.ID, t.Name, t.Description, t.Type, t.VariantA, t.VariantB,
		string(t.Status), t.StartDate, t.EndDate, t.SuccessMetric,
		t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create ab test: %w", err)
	}
	return nil
}

func (r *AbTestRepository) RecordResult(ctx context.Context, res *domain.AbTestResult) error {
	q := `
		INSERT INTO ab_test_results (id, test_id, entity_id, entity_type, variant, success, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(ctx, q,
		res.ID, res.TestID, res.EntityID, res.EntityType, res.Variant,
		res.Success, res.RecordedAt,
	)
	if err != nil {
		return fmt.Errorf("record ab test result: %w", err)
	}
	return nil
}

func (r *AbTestRepository) ListResults(ctx context.Context, testID string) ([]*domain.AbTestResult, error) {
	q := `SELECT ` + abTestResultColumns + ` FROM ab_test_results WHERE test_id = $1 ORDER BY recorded_at DESC`
	rows, err := r.pool.Query(ctx, q, testID)
	if err != nil {
		return nil, fmt.Errorf("list ab test results: %w", err)
	}
	defer rows.Close()

	var results []*domain.AbTestResult
	for rows.Next() {
		var res domain.AbTestResult
		if err := rows.Scan(
			&res.ID, &res.TestID, &res.EntityID, &res.EntityType,
			&res.Variant, &res.Success, &res.RecordedAt,
		); err != nil {
			return nil, fmt.Errorf("scan ab test result: %w", err)
		}
		results = append(results, &res)
	}
	return results, rows.Err()
}
