package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/freelancedesk/freelancedesk/internal/core/domain"
	"github.com/freelancedesk/freelancedesk/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stubs
// ---------------------------------------------------------------------------

type stubSequencer struct {
	counters map[string]int64
}

func newStubSequencer() *stubSequencer {
	return &stubSequencer{counters: make(map[string]int64)}
}

func (s *stubSequencer) Next(_ context.Context, prefix string, year int) (int64, error) {
	key := fmt.Sprintf("%s-%d", prefix, year)
	s.counters[key]++
	return s.counters[key], nil
}

type stubInvoiceRepo struct {
	byID map[string]*domain.Invoice
}

func newStubInvoiceRepo() *stubInvoiceRepo {
	return &stubInvoiceRepo{byID: make(map[string]*domain.Invoice)}
}

func (r *stubInvoiceRepo) ListByUser(_ context.Context, userID string) ([]*domain.Invoice, error) {
	var out []*domain.Invoice
	for _, inv := range r.byID {
		if inv.UserID == userID {
			clone := *inv
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubInvoiceRepo) Get(_ context.Context, id, userID string) (*domain.Invoice, error) {
	inv, ok := r.byID[id]
	if !ok || inv.UserID != userID {
		return nil, domain.ErrInvoiceNotFound
	}
	clone := *inv
	return &clone, nil
}

func (r *stubInvoiceRepo) Create(_ context.Context, inv *domain.Invoice) error {
	clone := *inv
	r.byID[inv.ID] = &clone
	return nil
}

func (r *stubInvoiceRepo) Update(_ context.Context, id, userID string, in ports.UpdateInvoiceInput) (*domain.Invoice, error) {
	inv, ok := r.byID[id]
	if !ok || inv.UserID != userID {
		return nil, domain.ErrInvoiceNotFound
	}
	if in.AmountCents != nil {
		inv.AmountCents = *in.AmountCents
	}
	if in.TaxCents != nil {
		inv.TaxCents = *in.TaxCents
	}
	if in.TotalCents != nil {
		inv.TotalCents = *in.TotalCents
	}
	if in.Status != nil {
		inv.Status = *in.Status
	}
	clone := *inv
	return &clone, nil
}

func (r *stubInvoiceRepo) Delete(_ context.Context, id, userID string) error {
	inv, ok := r.byID[id]
	if !ok || inv.UserID != userID {
		return domain.ErrInvoiceNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *stubInvoiceRepo) MarkPaid(_ context.Context, id string, paidAt time.Time) error {
	inv, ok := r.byID[id]
	if !ok {
		return domain.ErrInvoiceNotFound
	}
	inv.Status = domain.InvoicePaid
	inv.PaidDate = &paidAt
	return nil
}

type stubQuoteRepo struct {
	byID map[string]*domain.Quote
}

func newStubQuoteRepo() *stubQuoteRepo {
	return &stubQuoteRepo{byID: make(map[string]*domain.Quote)}
}

func (r *stubQuoteRepo) ListByUser(_ context.Context, userID string) ([]*domain.Quote, error) {
	var out []*domain.Quote
	for _, q := range r.byID {
		if q.UserID == userID {
			clone := *q
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubQuoteRepo) Get(_ context.Context, id, userID string) (*domain.Quote, error) {
	q, ok := r.byID[id]
	if !ok || q.UserID != userID {
		return nil, domain.ErrQuoteNotFound
	}
	clone := *q
	return &clone, nil
}

func (r *stubQuoteRepo) Create(_ context.Context, q *domain.Quote) error {
	clone := *q
	r.byID[q.ID] = &clone
	return nil
}

func (r *stubQuoteRepo) Update(_ context.Context, id, userID string, in ports.UpdateQuoteInput) (*domain.Quote, error) {
	q, ok := r.byID[id]
	if !ok || q.UserID != userID {
		return nil, domain.ErrQuoteNotFound
	}
	if in.AmountCents != nil {
		q.AmountCents = *in.AmountCents
	}
	if in.TaxCents != nil {
		q.TaxCents = *in.TaxCents
	}
	if in.TotalCents != nil {
		q.TotalCents = *in.TotalCents
	}
	if in.Status != nil {
		q.Status = *in.Status
	}
	clone := *q
	return &clone, nil
}

func (r *stubQuoteRepo) Delete(_ context.Context, id, userID string) error {
	q, ok := r.byID[id]
	if !ok || q.UserID != userID {
		return domain.ErrQuoteNotFound
	}
	delete(r.byID, id)
	return nil
}

func newBillingService() (*BillingService, *stubInvoiceRepo, *stubQuoteRepo, *stubSequencer) {
	invoices := newStubInvoiceRepo()
	quotes := newStubQuoteRepo()
	seq := newStubSequencer()
	return NewBillingService(invoices, quotes, seq, zerolog.Nop()), invoices, quotes, seq
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestCreateInvoice_SequentialNumbers(t *testing.T) {
	svc, _, _, _ := newBillingService()
	year := time.Now().UTC().Year()

	first, err := svc.CreateInvoice(context.Background(), ports.CreateInvoiceInput{
		UserID: "u1", ClientID: "c1", AmountCents: 10000,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	second, err := svc.CreateInvoice(context.Background(), ports.CreateInvoiceInput{
		UserID: "u1", ClientID: "c1", AmountCents: 5000,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if want := fmt.Sprintf("INV-%d-001", year); first.InvoiceNumber != want {
		t.Fatalf("first number: got %s want %s", first.InvoiceNumber, want)
	}
	if want := fmt.Sprintf("INV-%d-002", year); second.InvoiceNumber != want {
		t.Fatalf("second number: got %s want %s", second.InvoiceNumber, want)
	}
}

func TestCreateQuote_IndependentSequence(t *testing.T) {
	svc, _, _, _ := newBillingService()
	year := time.Now().UTC().Year()

	if _, err := svc.CreateInvoice(context.Background(), ports.CreateInvoiceInput{
		UserID: "u1", ClientID: "c1", AmountCents: 100,
	}); err != nil {
		t.Fatalf("create invoice: %v", err)
	}

	q, err := svc.CreateQuote(context.Background(), ports.CreateQuoteInput{
		UserID: "u1", ClientID: "c1", Title: "Website redesign", AmountCents: 100,
	})
	if err != nil {
		t.Fatalf("create quote: %v", err)
	}
	if want := fmt.Sprintf("QUO-%d-001", year); q.QuoteNumber != want {
		t.Fatalf("quote number: got %s want %s", q.QuoteNumber, want)
	}
}

func TestCreateInvoice_TotalAndVariant(t *testing.T) {
	svc, _, _, _ := newBillingService()

	inv, err := svc.CreateInvoice(context.Background(), ports.CreateInvoiceInput{
		UserID: "u1", ClientID: "c1", AmountCents: 10000, TaxCents: 1800,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if inv.TotalCents != 11800 {
		t.Fatalf("total: got %d want 11800", inv.TotalCents)
	}
	if inv.TemplateVariant != domain.VariantA && inv.TemplateVariant != domain.VariantB {
		t.Fatalf("variant must be A or B, got %q", inv.TemplateVariant)
	}
	if inv.Status != domain.InvoiceDraft {
		t.Fatalf("default status must be draft, got %s", inv.Status)
	}
}

func TestFormatDocumentNumber_Padding(t *testing.T) {
	cases := []struct {
		seq  int64
		want string
	}{
		{1, "INV-2025-001"},
		{42, "INV-2025-042"},
		{999, "INV-2025-999"},
		{1000, "INV-2025-1000"},
	}
	for _, tc := range cases {
		if got := formatDocumentNumber("INV", 2025, tc.seq); got != tc.want {
			t.Fatalf("seq %d: got %s want %s", tc.seq, got, tc.want)
		}
	}
}

func TestUpdateInvoice_RecomputesTotal(t *testing.T) {
	svc, invoices, _, _ := newBillingService()
	invoices.byID["i1"] = &domain.Invoice{
		ID: "i1", UserID: "u1", ClientID: "c1",
		AmountCents: 10000, TaxCents: 1800, TotalCents: 11800,
		Status: domain.InvoiceDraft,
	}

	amount := int64(20000)
	inv, err := svc.UpdateInvoice(context.Background(), "i1", "u1", ports.UpdateInvoiceInput{
		AmountCents: &amount,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if inv.TotalCents != 21800 {
		t.Fatalf("total not recomputed: got %d want 21800", inv.TotalCents)
	}
}

func TestUpdateInvoice_ExplicitTotalWins(t *testing.T) {
	svc, invoices, _, _ := newBillingService()
	invoices.byID["i1"] = &domain.Invoice{
		ID: "i1", UserID: "u1", ClientID: "c1",
		AmountCents: 10000, TaxCents: 0, TotalCents: 10000,
		Status: domain.InvoiceDraft,
	}

	amount := int64(20000)
	total := int64(19000)
	inv, err := svc.UpdateInvoice(context.Background(), "i1", "u1", ports.UpdateInvoiceInput{
		AmountCents: &amount,
		TotalCents:  &total,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if inv.TotalCents != 19000 {
		t.Fatalf("explicit total overridden: got %d want 19000", inv.TotalCents)
	}
}

func TestPickVariant_OnlyAB(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		v := pickVariant()
		if v != domain.VariantA && v != domain.VariantB {
			t.Fatalf("unexpected variant %q", v)
		}
		seen[v] = true
	}
	if !seen[domain.VariantA] || !seen[domain.VariantB] {
		t.Fatalf("expected both variants across 200 draws, got %v", seen)
	}
}
