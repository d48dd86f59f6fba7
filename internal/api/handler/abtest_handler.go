package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/freelancedesk/freelancedesk/internal/core/domain"
	"github.com/freelancedesk/freelancedesk/internal/core/ports"
)

// AbTestHandler handles HTTP requests for A/B tests.
type AbTestHandler struct {
	service ports.AbTestService
}

func NewAbTestHandler(service ports.AbTestService) *AbTestHandler {
	return &AbTestHandler{service: service}
}

type createAbTestRequest struct {
	Name          string          `json:"name" validate:"required"`
	Description   string          `json:"description"`
	Type          string          `json:"type" validate:"required"`
	VariantA      json.RawMessage `json:"variantA" validate:"required"`
	VariantB      json.RawMessage `json:"variantB" validate:"required"`
	Status        string          `json:"status" validate:"omitempty,oneof=draft running paused completed"`
	StartDate     *time.Time      `json:"startDate"`
	EndDate       *time.Time      `json:"endDate"`
	SuccessMetric string          `json:"successMetric" validate:"required"`
}

type recordResultRequest struct {
	EntityID   string `json:"entityId" validate:"required"`
	EntityType string `json:"entityType" validate:"required"`
	Variant    string `json:"variant" validate:"required,oneof=A B"`
	Success    bool   `json:"success"`
}

// List handles GET /api/ab-tests.
func (h *AbTestHandler) List(c echo.Context) error {
	tests, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tests)
}

// Create handles POST /api/ab-tests.
func (h *AbTestHandler) Create(c echo.Context) error {
	var req createAbTestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	t, err := h.service.Create(c.Request().Context(), ports.CreateAbTestInput{
		Name:          req.Name,
		Description:   req.Description,
		Type:          req.Type,
		VariantA:      req.VariantA,
		VariantB:      req.VariantB,
		Status:        domain.TestStatus(req.Status),
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		SuccessMetric: req.SuccessMetric,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, t)
}

// RecordResult handles POST /api/ab-tests/:id/results.
func (h *AbTestHandler) RecordResult(c echo.Context) error {
	var req recordResultRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	res, err := h.service.RecordResult(c.Request().Context(), ports.RecordResultInput{
		TestID:     c.Param("id"),
		EntityID:   req.EntityID,
		EntityType: req.EntityType,
		Variant:    req.Variant,
		Success:    req.Success,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, res)
}

// ListResults handles GET /api/ab-tests/:id/results.
func (h *AbTestHandler) ListResults(c echo.Context) error {
	results, err := h.service.ListResults(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, results)
}
