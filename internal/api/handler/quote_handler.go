package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/freelancedesk/freelancedesk/internal/core/domain"
	"github.com/freelancedesk/freelancedesk/internal/core/ports"
)

// QuoteHandler handles HTTP requests for quotes.
type QuoteHandler struct {
	service  ports.BillingService
	activity ports.ActivityRecorder
}

func NewQuoteHandler(service ports.BillingService, activity ports.ActivityRecorder) *QuoteHandler {
	return &QuoteHandler{service: service, activity: activity}
}

type createQuoteRequest struct {
	ClientID    string     `json:"clientId" validate:"required"`
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description"`
	AmountCents int64      `json:"amountCents" validate:"gte=0"`
	TaxCents    int64      `json:"taxCents" validate:"gte=0"`
	Status      string     `json:"status" validate:"omitempty,oneof=draft sent accepted rejected expired"`
	ValidUntil  *time.Time `json:"validUntil"`
	Notes       string     `json:"notes"`
}

type updateQuoteRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	AmountCents *int64     `json:"amountCents" validate:"omitempty,gte=0"`
	TaxCents    *int64     `json:"taxCents" validate:"omitempty,gte=0"`
	TotalCents  *int64     `json:"totalCents" validate:"omitempty,gte=0"`
	Status      *string    `json:"status" validate:"omitempty,oneof=draft sent accepted rejected expired"`
	ValidUntil  *time.Time `json:"validUntil"`
	Notes       *string    `json:"notes"`
}

// List handles GET /api/quotes.
func (h *QuoteHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	quotes, err := h.service.ListQuotes(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, quotes)
}

// Create handles POST /api/quotes. The quote number and template variant
// are assigned server-side.
func (h *QuoteHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createQuoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	q, err := h.service.CreateQuote(c.Request().Context(), ports.CreateQuoteInput{
		UserID:      userID,
		ClientID:    req.ClientID,
		Title:       req.Title,
		Description: req.Description,
		AmountCents: req.AmountCents,
		TaxCents:    req.TaxCents,
		Status:      domain.QuoteStatus(req.Status),
		ValidUntil:  req.ValidUntil,
		Notes:       req.Notes,
	})
	if err != nil {
		return err
	}

	logActivity(c, h.activity, userID, "quote_created", "quote", q.ID, map[string]string{"quoteNumber": q.QuoteNumber})
	return c.JSON(http.StatusCreated, q)
}

// Update handles PUT /api/quotes/:id.
func (h *QuoteHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req updateQuoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var status *domain.QuoteStatus
	if req.Status != nil {
		s := domain.QuoteStatus(*req.Status)
		status = &s
	}

	q, err := h.service.UpdateQuote(c.Request().Context(), c.Param("id"), userID, ports.UpdateQuoteInput{
		Title:       req.Title,
		Description: req.Description,
		AmountCents: req.AmountCents,
		TaxCents:    req.TaxCents,
		TotalCents:  req.TotalCents,
		Status:      status,
		ValidUntil:  req.ValidUntil,
		Notes:       req.Notes,
	})
	if err != nil {
		return err
	}

	logActivity(c, h.activity, userID, "quote_updated", "quote", q.ID, nil)
	return c.JSON(http.StatusOK, q)
}

// Delete handles DELETE /api/quotes/:id.
func (h *QuoteHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	if err := h.service.DeleteQuote(c.Request().Context(), id, userID); err != nil {
		return err
	}

	logActivity(c, h.activity, userID, "quote_deleted", "quote", id, nil)
	return c.NoContent(http.StatusNoContent)
}
