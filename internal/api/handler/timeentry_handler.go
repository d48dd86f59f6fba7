package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/freelancedesk/freelancedesk/internal/core/ports"
)

// TimeEntryHandler handles HTTP requests for the timer lifecycle.
type TimeEntryHandler struct {
	service  ports.TimeEntryService
	activity ports.ActivityRecorder
}

func NewTimeEntryHandler(service ports.TimeEntryService, activity ports.ActivityRecorder) *TimeEntryHandler {
	return &TimeEntryHandler{service: service, activity: activity}
}

type startTimerRequest struct {
	ProjectID   string `json:"projectId" validate:"required"`
	Description string `json:"description"`
}

type updateTimeEntryRequest struct {
	ProjectID   *string    `json:"projectId"`
	Description *string    `json:"description"`
	StartTime   *time.Time `json:"startTime"`
	EndTime     *time.Time `json:"endTime"`
	Duration    *int       `json:"duration" validate:"omitempty,gte=0"`
}

// List handles GET /api/time-entries. An optional projectId query param
// narrows the result.
func (h *TimeEntryHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	entries, err := h.service.List(c.Request().Context(), userID, c.QueryParam("projectId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}

// Active handles GET /api/time-entries/active. Responds with null when the
// user has no running timer.
func (h *TimeEntryHandler) Active(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	entry, err := h.service.Active(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entry)
}

// Start handles POST /api/time-entries. Any running timer is stopped
// at the new entry's start time.
//
// @Summary      Start a timer
// @Tags         time-entries
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      startTimerRequest  true  "Timer details"
// @Success      201   {object}  domain.TimeEntry
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/time-entries [post]
func (h *TimeEntryHandler) Start(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req startTimerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	entry, err := h.service.Start(c.Request().Context(), ports.StartTimerInput{
		UserID:      userID,
		ProjectID:   req.ProjectID,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	logActivity(c, h.activity, userID, "timer_started", "time_entry", entry.ID, map[string]string{"projectId": entry.ProjectID})
	return c.JSON(http.StatusCreated, entry)
}

// Stop handles PUT /api/time-entries/:id/stop.
func (h *TimeEntryHandler) Stop(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	entry, err := h.service.Stop(c.Request().Context(), c.Param("id"), userID)
	if err != nil {
		return err
	}

	logActivity(c, h.activity, userID, "timer_stopped", "time_entry", entry.ID, map[string]any{"duration": entry.Duration})
	return c.JSON(http.StatusOK, entry)
}

// Update handles PUT /api/time-entries/:id.
func (h *TimeEntryHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req updateTimeEntryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	entry, err := h.service.Update(c.Request().Context(), c.Param("id"), userID, ports.UpdateTimeEntryInput{
		ProjectID:   req.ProjectID,
		Description: req.Description,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Duration:    req.Duration,
	})
	if err != nil {
		return err
	}

	logActivity(c, h.activity, userID, "time_entry_updated", "time_entry", entry.ID, nil)
	return c.JSON(http.StatusOK, entry)
}

// Delete handles DELETE /api/time-entries/:id.
func (h *TimeEntryHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	if err := h.service.Delete(c.Request().Context(), id, userID); err != nil {
		return err
	}

	logActivity(c, h.activity, userID, "time_entry_deleted", "time_entry", id, nil)
	return c.NoContent(http.StatusNoContent)
}
