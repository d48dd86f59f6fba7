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

const documentColumns = `id, user_id, client_id, project_id, invoice_id, quote_id,
	name, type, file_path, file_size, mime_type, created_at`

// DocumentRepository persists document metadata in Postgres.
type DocumentRepository struct {
	pool *pgxpool.Pool
}

func NewDocumentRepository(pool *pgxpool.Pool) *DocumentRepository {
	return &DocumentRepository{pool: pool}
}

func scanDocument(r row) (*domain.Document, error) {
	var d domain.Document
	err := r.Scan(
		&d.ID, &d.UserID, &d.ClientID, &d.ProjectID, &d.InvoiceID, &d.QuoteID,
		&d.Name, &d.Type, &d.FilePath, &d.FileSize, &d.MimeType, &d.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrDocumentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan document: %w", err)
	}
	return &d, nil
}

func (r *DocumentRepository) ListByUser(ctx context.Context, userID string, f ports.DocumentFilter) ([]*domain.Document, error) {
	q := `SELECT ` + documentColumns + ` FROM documents WHERE user_id = $1`
	args := []any{userID}
	if f.Type != "" {
		args = append(args, f.Type)
		q += fmt.Sprintf(` AND type = $%d`, len(args))
	}
	if f.ClientID != "" {
		args = append(args, f.ClientID)
		q += fmt.Sprintf(` AND client_id = $%d`, len(args))
	}
	if f.ProjectID != "" {
		args = append(args, f.ProjectID)
		q += fmt.Sprintf(` AND project_id = $%d`, len(args))
	}
	q += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var docs []*domain.Document
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

func (r *DocumentRepository) Create(ctx context.Context, d *domain.Document) error {
	q := `
		INSERT INTO documents (id, user_id, client_id, project_id, invoice_id, quote_id,
			name, type, file_path, file_size, mime_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.pool.Exec(ctx, q,
		d.ID, d.UserID, d.ClientID, d.ProjectID, d.InvoiceID, d.QuoteID,
		d.Name, d.Type, d.FilePath, d.FileSize, d.MimeType, d.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}
	return nil
}

func (r *DocumentRepository) Delete(ctx context.Context, id, userID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM documents WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDocumentNotFound
	}
	return nil
}
