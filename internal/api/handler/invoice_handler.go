package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/freelancedesk/freelancedesk/internal/core/domain"
	"github.com/freelancedesk/freelancedesk/internal/core/ports"
)

// InvoiceHandler handles HTTP requests for invoices.
type InvoiceHandler struct {
	service  ports.BillingService
	activity ports.ActivityRecorder
}

func NewInvoiceHandler(service ports.BillingService, activity ports.ActivityRecorder) *InvoiceHandler {
	return &InvoiceHandler{service: service, activity: activity}
}

type createInvoiceRequest struct {
	ClientID    string     `json:"clientId" validate:"required"`
	ProjectID   *string    `json:"projectId"`
	AmountCents int64      `json:"amountCents" validate:"gte=0"`
	TaxCents    int64      `json:"taxCents" validate:"gte=0"`
	Status      string     `json:"status" validate:"omitempty,oneof=draft sent paid overdue cancelled"`
	DueDate     *time.Time `json:"dueDate"`
	Notes       string     `json:"notes"`
}

type updateInvoiceRequest struct {
	AmountCents *int64     `json:"amountCents" validate:"omitempty,gte=0"`
	TaxCents    *int64     `json:"taxCents" validate:"omitempty,gte=0"`
	TotalCents  *int64     `json:"totalCents" validate:"omitempty,gte=0"`
	Status      *string    `json:"status" validate:"omitempty,oneof=draft sent paid overdue cancelled"`
	DueDate     *time.Time `json:"dueDate"`
	PaidDate    *time.Time `json:"paidDate"`
	Notes       *string    `json:"notes"`
}

// List handles GET /api/invoices.
func (h *InvoiceHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	invoices, err := h.service.ListInvoices(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, invoices)
}

// Create handles POST /api/invoices. The invoice number and template
// variant are assigned server-side.
//
// @Summary      Create an invoice
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createInvoiceRequest  true  "Invoice details"
// @Success      201   {object}  domain.Invoice
// @Failure      400   {object}  map[string]string
// @Router       /api/invoices [post]
func (h *InvoiceHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createInvoiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	inv, err := h.service.CreateInvoice(c.Request().Context(), ports.CreateInvoiceInput{
		UserID:      userID,
		ClientID:    req.ClientID,
		ProjectID:   req.ProjectID,
		AmountCents: req.AmountCents,
		TaxCents:    req.TaxCents,
		Status:      domain.InvoiceStatus(req.Status),
		DueDate:     req.DueDate,
		Notes:       req.Notes,
	})
	if err != nil {
		return err
	}

	logActivity(c, h.activity, userID, "invoice_created", "invoice", inv.ID, map[string]string{"invoiceNumber": inv.InvoiceNumber})
	return c.JSON(http.StatusCreated, inv)
}

// Update handles PUT /api/invoices/:id.
func (h *InvoiceHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req updateInvoiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var status *domain.InvoiceStatus
	if req.Status != nil {
		s := domain.InvoiceStatus(*req.Status)
		status = &s
	}

	inv, err := h.service.UpdateInvoice(c.Request().Context(), c.Param("id"), userID, ports.UpdateInvoiceInput{
		AmountCents: req.AmountCents,
		TaxCents:    req.TaxCents,
		TotalCents:  req.TotalCents,
		Status:      status,
		DueDate:     req.DueDate,
		PaidDate:    req.PaidDate,
		Notes:       req.Notes,
	})
	if err != nil {
		return err
	}

	logActivity(c, h.activity, userID, "invoice_updated", "invoice", inv.ID, nil)
	return c.JSON(http.StatusOK, inv)
}

// Delete handles DELETE /api/invoices/:id.
func (h *InvoiceHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	if err := h.service.DeleteInvoice(c.Request().Context(), id, userID); err != nil {
		return err
	}

	logActivity(c, h.activity, userID, "invoice_deleted", "invoice", id, nil)
	return c.NoContent(http.StatusNoContent)
}
