package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freelancedesk/freelancedesk/internal/core/ports"
)

// PaymentHandler handles the invoice payment flow.
type PaymentHandler struct {
	service  ports.PaymentService
	activity ports.ActivityRecorder
}

func NewPaymentHandler(service ports.PaymentService, activity ports.ActivityRecorder) *PaymentHandler {
	return &PaymentHandler{service: service, activity: activity}
}

type initiatePaymentRequest struct {
	InvoiceID     string `json:"invoiceId" validate:"required"`
	CustomerPhone string `json:"customerPhone"`
}

type createOrderRequest struct {
	AmountCents   int64  `json:"amountCents" validate:"required,gte=1"`
	Currency      string `json:"currency"`
	CustomerPhone string `json:"customerPhone"`
}

// webhookRequest is the shape of a gateway delivery; only the order id and
// payment status are consumed.
type webhookRequest struct {
	Type string `json:"type"`
	Data struct {
		Order struct {
			OrderID string `json:"order_id"`
		} `json:"order"`
		Payment struct {
			PaymentStatus string `json:"payment_status"`
		} `json:"payment"`
	} `json:"data"`
}

// CreateOrder handles POST /api/cashfree/orders.
func (h *PaymentHandler) CreateOrder(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	order, err := h.service.CreateOrder(c.Request().Context(), ports.CreateOrderInput{
		UserID:        userID,
		AmountCents:   req.AmountCents,
		Currency:      req.Currency,
		CustomerPhone: req.CustomerPhone,
	})
	if err != nil {
		return err
	}

	logActivity(c, h.activity, userID, "payment_order_created", "payment_order", order.OrderID, map[string]int64{"amountCents": order.AmountCents})
	return c.JSON(http.StatusCreated, order)
}

// Initiate handles POST /api/cashfree/initiate-payment.
func (h *PaymentHandler) Initiate(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req initiatePaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	order, err := h.service.Initiate(c.Request().Context(), ports.InitiatePaymentInput{
		InvoiceID:     req.InvoiceID,
		UserID:        userID,
		CustomerPhone: req.CustomerPhone,
	})
	if err != nil {
		return err
	}

	logActivity(c, h.activity, userID, "payment_initiated", "invoice", req.InvoiceID, map[string]string{"orderId": order.OrderID})
	return c.JSON(http.StatusCreated, order)
}

// OrderStatus handles GET /api/cashfree/orders/:orderId.
func (h *PaymentHandler) OrderStatus(c echo.Context) error {
	if _, err := ctxUserID(c); err != nil {
		return err
	}

	order, err := h.service.OrderStatus(c.Request().Context(), c.Param("orderId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}

// Webhook handles POST /api/cashfree/webhook. The gateway retries until it
// gets a 2xx, so duplicates are acknowledged without reprocessing.
func (h *PaymentHandler) Webhook(c echo.Context) error {
	var req webhookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.Data.Order.OrderID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing order id")
	}

	processed, err := h.service.HandleWebhook(c.Request().Context(), req.Data.Order.OrderID, req.Data.Payment.PaymentStatus)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"processed": processed})
}
