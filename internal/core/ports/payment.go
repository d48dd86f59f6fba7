package ports

import "context"

// PaymentOrder is the gateway's view of a payment order, normalised to
// integer cents.
type PaymentOrder struct {
	OrderID          string `json:"orderId"`
	Status           string `json:"status"`
	AmountCents      int64  `json:"amountCents"`
	Currency         string `json:"currency"`
	PaymentSessionID string `json:"paymentSessionId,omitempty"`
}

// GatewayOrderInput carries the fields needed to open an order with the
// payment gateway.
type GatewayOrderInput struct {
	OrderID       string
	AmountCents   int64
	Currency      string
	CustomerID    string
	CustomerEmail string
	CustomerPhone string
}

// PaymentGateway abstracts the payment provider's REST API.
type PaymentGateway interface {
	CreateOrder(ctx context.Context, in GatewayOrderInput) (*PaymentOrder, error)
	OrderStatus(ctx context.Context, orderID string) (*PaymentOrder, error)
}

// WebhookDeduplicator remembers handled webhook deliveries so replays and
// provider retries are acknowledged without reapplying side effects.
type WebhookDeduplicator interface {
	Seen(ctx context.Context, orderID, status string) (bool, error)
	Mark(ctx context.Context, orderID, status string) error
}

// InitiatePaymentInput starts a gateway payment for one invoice.
type InitiatePaymentInput struct {
	InvoiceID     string
	UserID        string
	CustomerPhone string
}

// CreateOrderInput opens a standalone gateway order, not tied to an
// invoice. The order id is generated server-side.
type CreateOrderInput struct {
	UserID        string
	AmountCents   int64
	Currency      string
	CustomerPhone string
}

// PaymentService covers the invoice payment flow: order creation, status
// polling and webhook processing.
type PaymentService interface {
	CreateOrder(ctx context.Context, in CreateOrderInput) (*PaymentOrder, error)
	Initiate(ctx context.Context, in InitiatePaymentInput) (*PaymentOrder, error)
	OrderStatus(ctx context.Context, orderID string) (*PaymentOrder, error)
	// HandleWebhook applies a delivery once; it reports whether the
	// delivery was processed (false for duplicates).
	HandleWebhook(ctx context.Context, orderID, status string) (bool, error)
}
