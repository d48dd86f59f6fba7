package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/freelancedesk/freelancedesk/internal/api/metrics"
	"github.com/freelancedesk/freelancedesk/internal/core/domain"
	"github.com/freelancedesk/freelancedesk/internal/core/ports"
)

// orderPrefix ties a gateway order back to the invoice it pays for.
const orderPrefix = "inv-"

// PaymentService implements the invoice payment flow against the gateway.
// Webhook deliveries are deduplicated per (order, status) so provider
// retries never reapply side effects.
type PaymentService struct {
	invoices ports.InvoiceRepository
	users    ports.UserRepository
	gateway  ports.PaymentGateway
	dedup    ports.WebhookDeduplicator
	log      zerolog.Logger
}

func NewPaymentService(
	invoices ports.InvoiceRepository,
	users ports.UserRepository,
	gateway ports.PaymentGateway,
	dedup ports.WebhookDeduplicator,
	log zerolog.Logger,
) *PaymentService {
	return &PaymentService{
		invoices: invoices,
		users:    users,
		gateway:  gateway,
		dedup:    dedup,
		log:      log,
	}
}

// CreateOrder opens a standalone gateway order for an arbitrary amount.
// Unlike Initiate, the order is not correlated to an invoice, so the
// webhook for it only records the dedup key.
func (s *PaymentService) CreateOrder(ctx context.Context, in ports.CreateOrderInput) (*ports.PaymentOrder, error) {
	u, err := s.users.Get(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	currency := in.Currency
	if currency == "" {
		currency = "INR"
	}
	order, err := s.gateway.CreateOrder(ctx, ports.GatewayOrderInput{
		OrderID:       "ord-" + uuid.NewString(),
		AmountCents:   in.AmountCents,
		Currency:      currency,
		CustomerID:    u.ID,
		CustomerEmail: u.Email,
		CustomerPhone: in.CustomerPhone,
	})
	if err != nil {
		s.log.Error().Err(err).Str("user_id", in.UserID).Msg("failed to create order")
		return nil, err
	}
	return order, nil
}

// Initiate opens a gateway order for the invoice's total. The order id is
// derived from the invoice id so the webhook can correlate the two.
func (s *PaymentService) Initiate(ctx context.Context, in ports.InitiatePaymentInput) (*ports.PaymentOrder, error) {
	inv, err := s.invoices.Get(ctx, in.InvoiceID, in.UserID)
	if err != nil {
		return nil, err
	}

	u, err := s.users.Get(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	order, err := s.gateway.CreateOrder(ctx, ports.GatewayOrderInput{
		OrderID:       orderPrefix + inv.ID,
		AmountCents:   inv.TotalCents,
		Currency:      "INR",
		CustomerID:    u.ID,
		CustomerEmail: u.Email,
		CustomerPhone: in.CustomerPhone,
	})
	if err != nil {
		s.log.Error().Err(err).Str("invoice_id", inv.ID).Msg("failed to initiate payment")
		return nil, err
	}
	return order, nil
}

func (s *PaymentService) OrderStatus(ctx context.Context, orderID string) (*ports.PaymentOrder, error) {
	return s.gateway.OrderStatus(ctx, orderID)
}

// HandleWebhook applies one gateway delivery. Duplicates are acknowledged
// without side effects. A successful payment marks the invoice paid.
func (s *PaymentService) HandleWebhook(ctx context.Context, orderID, status string) (bool, error) {
	seen, err := s.dedup.Seen(ctx, orderID, status)
	if err != nil {
		return false, err
	}
	if seen {
		metrics.WebhookDedupTotal.WithLabelValues("duplicate").Inc()
		s.log.Info().Str("order_id", orderID).Str("status", status).Msg("duplicate webhook ignored")
		return false, nil
	}

	if paymentSucceeded(status) {
		invoiceID := strings.TrimPrefix(orderID, orderPrefix)
		if err := s.invoices.MarkPaid(ctx, invoiceID, time.Now().UTC()); err != nil {
			// Unknown invoice is not retryable; anything else is.
			if !errors.Is(err, domain.ErrInvoiceNotFound) {
				return false, err
			}
			s.log.Warn().Str("order_id", orderID).Msg("webhook for unknown invoice")
		} else {
			s.log.Info().Str("invoice_id", invoiceID).Msg("invoice marked paid")
		}
	}

	if err := s.dedup.Mark(ctx, orderID, status); err != nil {
		return false, err
	}
	metrics.WebhookDedupTotal.WithLabelValues("processed").Inc()
	return true, nil
}

func paymentSucceeded(status string) bool {
	switch strings.ToUpper(status) {
	case "SUCCESS", "PAID":
		return true
	}
	return false
}
