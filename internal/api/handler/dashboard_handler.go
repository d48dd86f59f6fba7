package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freelancedesk/freelancedesk/internal/core/ports"
)

// DashboardHandler serves the aggregate dashboard view.
type DashboardHandler struct {
	service ports.DashboardService
}

func NewDashboardHandler(service ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Stats handles GET /api/dashboard/stats.
//
// @Summary      Dashboard aggregates for the authenticated user
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.DashboardStats
// @Failure      401  {object}  map[string]string
// @Router       /api/dashboard/stats [get]
func (h *DashboardHandler) Stats(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	stats, err := h.service.Stats(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
