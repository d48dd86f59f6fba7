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

const quoteColumns = `id, user_id, client_id, quote_number, title, description,
	amount_cents, tax_cents, total_cents, status, valid_until, notes,
	template_variant, created_at, updated_at`

// QuoteRepository persists quotes in Postgres.
type QuoteRepository struct {
	pool *pgxpool.Pool
}

func NewQuoteRepository(pool *pgxpool.Pool) *QuoteRepository {
	return &QuoteRepository{pool: pool}
}

func scanQuote(r row) (*domain.Quote, error) {
	var q domain.Quote
	err := r.Scan(
		&q.ID, &q.UserID, &q.ClientID, &q.QuoteNumber, &q.Title, &q.Description,
		&q.AmountCents, &q.TaxCents, &q.TotalCents, &q.Status, &q.ValidUntil,
		&q.Notes, &q.TemplateVariant, &q.CreatedAt, &q.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrQuoteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan quote: %w", err)
	}
	return &q, nil
}

func (r *QuoteRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Quote, error) {
	q := `SELECT ` + quoteColumns + ` FROM quotes WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	defer rows.Close()

	var quotes []*domain.Quote
	for rows.Next() {
		qt, err := scanQuote(rows)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, qt)
	}
	return quotes, rows.Err()
}

func (r *QuoteRepository) Get(ctx context.Context, id, userID string) (*domain.Quote, error) {
	q := `SELECT ` + quoteColumns + ` FROM quotes WHERE id = $1 AND user_id = $2`
	return scanQuote(r.pool.QueryRow(ctx, q, id, userID))
}

func (r *QuoteRepository) Create(ctx context.Context, qt *domain.Quote) error {
	q := `
		INSERT INTO quotes (id, user_id, client_id, quote_number, title, description,
			amount_cents, tax_cents, total_cents, status, valid_until, notes,
			template_variant, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.pool.Exec(ctx, q,
		qt.ID, qt.UserID, qt.ClientID, qt.QuoteNumber, qt.Title, qt.Description,
		qt.AmountCents, qt.TaxCents, qt.TotalCents, string(qt.Status),
		qt.ValidUntil, qt.Notes, qt.TemplateVariant, qt.CreatedAt, qt.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create quote: %w", err)
	}
	return nil
}

func (r *QuoteRepository) Update(ctx context.Context, id, userID string, in ports.UpdateQuoteInput) (*domain.Quote, error) {
	p := newPatch()
	if in.Title != nil {
		p.add("title", *in.Title)
	}
	if in.Description != nil {
		p.add("description", *in.Description)
	}
	if in.AmountCents != nil {
		p.add("amount_cents", *in.AmountCents)
	}
	if in.TaxCents != nil {
		p.add("tax_cents", *in.TaxCents)
	}
	if in.TotalCents != nil {
		p.add("total_cents", *in.TotalCents)
	}
	if in.Status != nil {
		p.add("status", string(*in.Status))
	}
	if in.ValidUntil != nil {
		p.add("valid_until", *in.ValidUntil)
	}
	if in.Notes != nil {
		p.add("notes", *in.Notes)
	}

	q := fmt.Sprintf(
		`UPDATE quotes SET %s WHERE id = %s AND user_id = %s RETURNING `+quoteColumns,
		p.clause(), p.bind(id), p.bind(userID),
	)
	return scanQuote(r.pool.QueryRow(ctx, q, p.args...))
}

func (r *QuoteRepository) Delete(ctx context.Context, id, userID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM quotes WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete quote: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrQuoteNotFound
	}
	return nil
}
