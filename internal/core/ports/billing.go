package ports

import (
	"context"
	"time"

	"github.com/freelancedesk/freelancedesk/internal/core/domain"
)

// NumberSequencer hands out the next sequence value for a document prefix
// within a calendar year. Implementations must be safe under concurrent
// calls and return strictly increasing values per (prefix, year).
type NumberSequencer interface {
	Next(ctx context.Context, prefix string, year int) (int64, error)
}

// CreateInvoiceInput carries the fields accepted when creating an invoice.
// Number and template variant are assigned by the service.
type CreateInvoiceInput struct {
	UserID      string
	ClientID    string
	ProjectID   *string
	AmountCents int64
	TaxCents    int64
	Status      domain.InvoiceStatus
	DueDate     *time.Time
	Notes       string
}

// UpdateInvoiceInput is a partial patch; nil fields are left untouched.
type UpdateInvoiceInput struct {
	AmountCents *int64
	TaxCents    *int64
	TotalCents  *int64
	Status      *domain.InvoiceStatus
	DueDate     *time.Time
	PaidDate    *time.Time
	Notes       *string
}

// CreateQuoteInput carries the fields accepted when creating a quote.
type CreateQuoteInput struct {
	UserID      string
	ClientID    string
	Title       string
	Description string
	AmountCents int64
	TaxCents    int64
	Status      domain.QuoteStatus
	ValidUntil  *time.Time
	Notes       string
}

// UpdateQuoteInput is a partial patch; nil fields are left untouched.
type UpdateQuoteInput struct {
	Title       *string
	Description *string
	AmountCents *int64
	TaxCents    *int64
	TotalCents  *int64
	Status      *domain.QuoteStatus
	ValidUntil  *time.Time
	Notes       *string
}

// InvoiceRepository defines persistence operations for invoices.
type InvoiceRepository interface {
	ListByUser(ctx context.Context, userID string) ([]*domain.Invoice, error)
	Get(ctx context.Context, id, userID string) (*domain.Invoice, error)
	Create(ctx context.Context, inv *domain.Invoice) error
	Update(ctx context.Context, id, userID string, in UpdateInvoiceInput) (*domain.Invoice, error)
	Delete(ctx context.Context, id, userID string) error
	// MarkPaid flips the invoice to paid with the given payment date. It is
	// not user-scoped: the caller is the payment webhook, not a user.
	MarkPaid(ctx context.Context, id string, paidAt time.Time) error
}

// QuoteRepository defines persistence operations for quotes.
type QuoteRepository interface {
	ListByUser(ctx context.Context, userID string) ([]*domain.Quote, error)
	Get(ctx context.Context, id, userID string) (*domain.Quote, error)
	Create(ctx context.Context, q *domain.Quote) error
	Update(ctx context.Context, id, userID string, in UpdateQuoteInput) (*domain.Quote, error)
	Delete(ctx context.Context, id, userID string) error
}

// BillingService covers invoices and quotes: numbering, variant assignment
// and CRUD.
type BillingService interface {
	ListInvoices(ctx context.Context, userID string) ([]*domain.Invoice, error)
	CreateInvoice(ctx context.Context, in CreateInvoiceInput) (*domain.Invoice, error)
	UpdateInvoice(ctx context.Context, id, userID string, in UpdateInvoiceInput) (*domain.Invoice, error)
	DeleteInvoice(ctx context.Context, id, userID string) error

	ListQuotes(ctx context.Context, userID string) ([]*domain.Quote, error)
	CreateQuote(ctx context.Context, in CreateQuoteInput) (*domain.Quote, error)
	UpdateQuote(ctx context.Context, id, userID string, in UpdateQuoteInput) (*domain.Quote, error)
	DeleteQuote(ctx context.Context, id, userID string) error
}
