package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/freelancedesk/freelancedesk/internal/api/metrics"
	"github.com/freelancedesk/freelancedesk/internal/core/ports"
)

const (
	apiVersion     = "2023-08-01"
	defaultTimeout = 15 * time.Second
)

// Config holds the gateway credentials and callback URLs.
type Config struct {
	AppID     string
	SecretKey string
	BaseURL   string
	ReturnURL string
	NotifyURL string
}

// Cashfree is a thin client over the Cashfree PG REST API. Amounts cross
// the wire in currency units; cents are converted at this boundary and
// nowhere else.
type Cashfree struct {
	cfg    Config
	client *http.Client
	log    zerolog.Logger
}

func NewCashfree(cfg Config, log zerolog.Logger) *Cashfree {
	return &Cashfree{
		cfg:    cfg,
		client: &http.Client{Timeout: defaultTimeout},
		log:    log,
	}
}

type customerDetails struct {
	CustomerID    string `json:"customer_id"`
	CustomerEmail string `json:"customer_email,omitempty"`
	CustomerPhone string `json:"customer_phone"`
}

type orderMeta struct {
	ReturnURL string `json:"return_url,omitempty"`
	NotifyURL string `json:"notify_url,omitempty"`
}

type createOrderRequest struct {
	OrderID         string          `json:"order_id"`
	OrderAmount     float64         `json:"order_amount"`
	OrderCurrency   string          `json:"order_currency"`
	CustomerDetails customerDetails `json:"customer_details"`
	OrderMeta       orderMeta       `json:"order_meta"`
}

type orderResponse struct {
	OrderID          string  `json:"order_id"`
	OrderStatus      string  `json:"order_status"`
	OrderAmount      float64 `json:"order_amount"`
	OrderCurrency    string  `json:"order_currency"`
	PaymentSessionID string  `json:"payment_session_id"`
}

func (o orderResponse) toPort() *ports.PaymentOrder {
	return &ports.PaymentOrder{
		OrderID:          o.OrderID,
		Status:           o.OrderStatus,
		AmountCents:      int64(math.Round(o.OrderAmount * 100)),
		Currency:         o.OrderCurrency,
		PaymentSessionID: o.PaymentSessionID,
	}
}

// CreateOrder opens an order with the gateway and returns the payment
// session used by the client-side checkout.
func (cf *Cashfree) CreateOrder(ctx context.Context, in ports.GatewayOrderInput) (*ports.PaymentOrder, error) {
	currency := in.Currency
	if currency == "" {
		currency = "INR"
	}

	body := createOrderRequest{
		OrderID:       in.OrderID,
		OrderAmount:   float64(in.AmountCents) / 100,
		OrderCurrency: currency,
		CustomerDetails: customerDetails{
			CustomerID:    in.CustomerID,
			CustomerEmail: in.CustomerEmail,
			CustomerPhone: in.CustomerPhone,
		},
		OrderMeta: orderMeta{
			ReturnURL: cf.cfg.ReturnURL,
			NotifyURL: cf.cfg.NotifyURL,
		},
	}

	var resp orderResponse
	if err := cf.do(ctx, http.MethodPost, "/orders", body, &resp); err != nil {
		metrics.PaymentOrdersTotal.WithLabelValues("create", "error").Inc()
		return nil, err
	}

	metrics.PaymentOrdersTotal.WithLabelValues("create", "ok").Inc()
	cf.log.Info().
		Str("order_id", resp.OrderID).
		Str("order_status", resp.OrderStatus).
		Msg("payment order created")
	return resp.toPort(), nil
}

// OrderStatus fetches the current state of an order.
func (cf *Cashfree) OrderStatus(ctx context.Context, orderID string) (*ports.PaymentOrder, error) {
	var resp orderResponse
	if err := cf.do(ctx, http.MethodGet, "/orders/"+orderID, nil, &resp); err != nil {
		metrics.PaymentOrdersTotal.WithLabelValues("status", "error").Inc()
		return nil, err
	}
	metrics.PaymentOrdersTotal.WithLabelValues("status", "ok").Inc()
	return resp.toPort(), nil
}

func (cf *Cashfree) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("cashfree: encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, cf.cfg.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("cashfree: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-version", apiVersion)
	req.Header.Set("x-client-id", cf.cfg.AppID)
	req.Header.Set("x-client-secret", cf.cfg.SecretKey)

	resp, err := cf.client.Do(req)
	if err != nil {
		return fmt.Errorf("cashfree: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("cashfree: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		cf.log.Warn().
			Int("status", resp.StatusCode).
			Str("path", path).
			Msg("cashfree request rejected")
		return fmt.Errorf("cashfree: %s %s: status %d: %s", method, path, resp.StatusCode, raw)
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("cashfree: decode response: %w", err)
		}
	}
	return nil
}
