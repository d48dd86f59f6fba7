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

const invoiceColumns = `id, user_id, client_id, invoice_number, project_id, amount_cents,
	tax_cents, total_cents, status, issue_date, due_date, paid_date, notes,
	template_variant, created_at, updated_at`

// InvoiceRepository persists invoices in Postgres.
type InvoiceRepository struct {
	pool *pgxpool.Pool
}

func NewInvoiceRepository(pool *pgxpool.Pool) *InvoiceRepository {
	return &InvoiceRepository{pool: pool}
}

func scanInvoice(r row) (*domain.Invoice, error) {
	var inv domain.Invoice
	err := r.Scan(
		&inv.ID, &inv.UserID, &inv.ClientID, &inv.InvoiceNumber, &inv.ProjectID,
		&inv.AmountCents, &inv.TaxCents, &inv.TotalCents, &inv.Status,
		&inv.IssueDate, &inv.DueDate, &inv.PaidDate, &inv.Notes,
		&inv.TemplateVariant, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrInvoiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan invoice: %w", err)
	}
	return &inv, nil
}

func (r *InvoiceRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Invoice, error) {
	q := `SELECT ` + invoiceColumns + ` FROM invoices WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	var invoices []*domain.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, inv)
	}
	return invoices, rows.Err()
}

func (r *InvoiceRepository) Get(ctx context.Context, id, userID string) (*domain.Invoice, error) {
	q := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1 AND user_id = $2`
	return scanInvoice(r.pool.QueryRow(ctx, q, id, userID))
}

func (r *InvoiceRepository) Create(ctx context.Context, inv *domain.Invoice) error {
	q := `
		INSERT INTO invoices (id, user_id, client_id, invoice_number, project_id, amount_cents,
			tax_cents, total_cents, status, issue_date, due_date, notes,
			template_variant, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.pool.Exec(ctx, q,
		inv.ID, inv.UserID, inv.ClientID, inv.InvoiceNumber, inv.ProjectID,
		inv.AmountCents, inv.TaxCents, inv.TotalCents, string(inv.Status),
		inv.IssueDate, inv.DueDate, inv.Notes, inv.TemplateVariant,
		inv.CreatedAt, inv.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create invoice: %w", err)
	}
	return nil
}

func (r *InvoiceRepository) Update(ctx context.Context, id, userID string, in ports.UpdateInvoiceInput) (*domain.Invoice, error) {
	p := newPatch()
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
	if in.DueDate != nil {
		p.add("due_date", *in.DueDate)
	}
	if in.PaidDate != nil {
		p.add("paid_date", *in.PaidDate)
	}
	if in.Notes != nil {
		p.add("notes", *in.Notes)
	}

	q := fmt.Sprintf(
		`UPDATE invoices SET %s WHERE id = %s AND user_id = %s RETURNING `+invoiceColumns,
		p.clause(), p.bind(id), p.bind(userID),
	)
	return scanInvoice(r.pool.QueryRow(ctx, q, p.args...))
}

// MarkPaid flips the invoice to paid with the given payment date. Not
// user-scoped: the caller is the payment webhook.
func (r *InvoiceRepository) MarkPaid(ctx context.Context, id string, paidAt time.Time) error {
	q := `UPDATE invoices SET status = 'paid', paid_date = $2, updated_at = now() WHERE id = $1`
	tag, err := r.pool.Exec(ctx, q, id, paidAt)
	if err != nil {
		return fmt.Errorf("mark invoice paid: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInvoiceNotFound
	}
	return nil
}

func (r *InvoiceRepository) Delete(ctx context.Context, id, userID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM invoices WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInvoiceNotFound
	}
	return nil
}
