package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/freelancedesk/freelancedesk/internal/api/metrics"
	"github.com/freelancedesk/freelancedesk/internal/core/domain"
	"github.com/freelancedesk/freelancedesk/internal/core/ports"
)

const (
	invoicePrefix = "INV"
	quotePrefix   = "QUO"
)

// BillingService implements invoice and quote use cases. Document numbers
// come from an atomic per-(prefix, year) sequence; the template variant is
// a uniform-random A/B label with no behavioural effect.
type BillingService struct {
	invoices ports.InvoiceRepository
	quotes   ports.QuoteRepository
	seq      ports.NumberSequencer
	log      zerolog.Logger
}

func NewBillingService(
	invoices ports.InvoiceRepository,
	quotes ports.QuoteRepository,
	seq ports.NumberSequencer,
	log zerolog.Logger,
) *BillingService {
	return &BillingService{invoices: invoices, quotes: quotes, seq: seq, log: log}
}

// formatDocumentNumber renders PREFIX-YYYY-NNN, zero-padded to at least
// three digits. Sequences restart each calendar year.
func formatDocumentNumber(prefix string, year int, seq int64) string {
	return fmt.Sprintf("%s-%d-%03d", prefix, year, seq)
}

// pickVariant assigns the A/B template label uniformly at random.
func pickVariant() string {
	if rand.IntN(2) == 0 {
		return domain.VariantA
	}
	return domain.VariantB
}

func (s *BillingService) ListInvoices(ctx context.Context, userID string) ([]*domain.Invoice, error) {
	return s.invoices.ListByUser(ctx, userID)
}

func (s *BillingService) CreateInvoice(ctx context.Context, in ports.CreateInvoiceInput) (*domain.Invoice, error) {
	now := time.Now().UTC()
	year := now.Year()

	seq, err := s.seq.Next(ctx, invoicePrefix, year)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to allocate invoice number")
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = domain.InvoiceDraft
	}

	inv := &domain.Invoice{
		ID:              uuid.NewString(),
		UserID:          in.UserID,
		ClientID:        in.ClientID,
		InvoiceNumber:   formatDocumentNumber(invoicePrefix, year, seq),
		ProjectID:       in.ProjectID,
		AmountCents:     in.AmountCents,
		TaxCents:        in.TaxCents,
		TotalCents:      in.AmountCents + in.TaxCents,
		Status:          status,
		IssueDate:       now,
		DueDate:         in.DueDate,
		Notes:           in.Notes,
		TemplateVariant: pickVariant(),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.invoices.Create(ctx, inv); err != nil {
		s.log.Error().Err(err).Str("invoice_number", inv.InvoiceNumber).Msg("failed to create invoice")
		return nil, err
	}

	metrics.DocumentsCreatedTotal.WithLabelValues("invoice", inv.TemplateVariant).Inc()
	s.log.Info().
		Str("invoice_id", inv.ID).
		Str("invoice_number", inv.InvoiceNumber).
		Str("variant", inv.TemplateVariant).
		Msg("invoice created")
	return inv, nil
}

func (s *BillingService) UpdateInvoice(ctx context.Context, id, userID string, in ports.UpdateInvoiceInput) (*domain.Invoice, error) {
	// Recompute the total when amount or tax moves without an explicit total.
	if in.TotalCents == nil && (in.AmountCents != nil || in.TaxCents != nil) {
		existing, err := s.invoices.Get(ctx, id, userID)
		if err != nil {
			return nil, err
		}
		amount := existing.AmountCents
		tax := existing.TaxCents
		if in.AmountCents != nil {
			amount = *in.AmountCents
		}
		if in.TaxCents != nil {
			tax = *in.TaxCents
		}
		total := amount + tax
		in.TotalCents = &total
	}
	return s.invoices.Update(ctx, id, userID, in)
}

func (s *BillingService) DeleteInvoice(ctx context.Context, id, userID string) error {
	return s.invoices.Delete(ctx, id, userID)
}

func (s *BillingService) ListQuotes(ctx context.Context, userID string) ([]*domain.Quote, error) {
	return s.quotes.ListByUser(ctx, userID)
}

func (s *BillingService) CreateQuote(ctx context.Context, in ports.CreateQuoteInput) (*domain.Quote, error) {
	now := time.Now().UTC()
	year := now.Year()

	seq, err := s.seq.Next(ctx, quotePrefix, year)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to allocate quote number")
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = domain.QuoteDraft
	}

	q := &domain.Quote{
		ID:              uuid.NewString(),
		UserID:          in.UserID,
		ClientID:        in.ClientID,
		QuoteNumber:     formatDocumentNumber(quotePrefix, year, seq),
		Title:           in.Title,
		Description:     in.Description,
		AmountCents:     in.AmountCents,
		TaxCents:        in.TaxCents,
		TotalCents:      in.AmountCents + in.TaxCents,
		Status:          status,
		ValidUntil:      in.ValidUntil,
		Notes:           in.Notes,
		TemplateVariant: pickVariant(),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.quotes.Create(ctx, q); err != nil {
		s.log.Error().Err(err).Str("quote_number", q.QuoteNumber).Msg("failed to create quote")
		return nil, err
	}

	metrics.DocumentsCreatedTotal.WithLabelValues("quote", q.TemplateVariant).Inc()
	s.log.Info().
		Str("quote_id", q.ID).
		Str("quote_number", q.QuoteNumber).
		Str("variant", q.TemplateVariant).
		Msg("quote created")
	return q, nil
}

func (s *BillingService) UpdateQuote(ctx context.Context, id, userID string, in ports.UpdateQuoteInput) (*domain.Quote, error) {
	if in.TotalCents == nil && (in.AmountCents != nil || in.TaxCents != nil) {
		existing, err := s.quotes.Get(ctx, id, userID)
		if err != nil {
			return nil, err
		}
		amount := existing.AmountCents
		tax := existing.TaxCents
		if in.AmountCents != nil {
			amount = *in.AmountCents
		}
		if in.TaxCents != nil {
			tax = *in.TaxCents
		}
		total := amount + tax
		in.TotalCents = &total
	}
	return s.quotes.Update(ctx, id, userID, in)
}

func (s *BillingService) DeleteQuote(ctx context.Context, id, userID string) error {
	return s.quotes.Delete(ctx, id, userID)
}
