package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/freelancedesk/freelancedesk/internal/core/domain"
	"github.com/freelancedesk/freelancedesk/internal/core/ports"
)

// ProjectHandler handles HTTP requests for projects.
type ProjectHandler struct {
	service  ports.ProjectService
	activity ports.ActivityRecorder
}

func NewProjectHandler(service ports.ProjectService, activity ports.ActivityRecorder) *ProjectHandler {
	return &ProjectHandler{service: service, activity: activity}
}

type createProjectRequest struct {
	ClientID        *string    `json:"clientId"`
	Name            string     `json:"name" validate:"required"`
	Description     string     `json:"description"`
	HourlyRateCents *int64     `json:"hourlyRateCents" validate:"omitempty,gte=0"`
	Status          string     `json:"status" validate:"omitempty,oneof=active paused completed cancelled"`
	Deadline        *time.Time `json:"deadline"`
}

type updateProjectRequest struct {
	ClientID        *string    `json:"clientId"`
	Name            *string    `json:"name"`
	Description     *string    `json:"description"`
	HourlyRateCents *int64     `json:"hourlyRateCents" validate:"omitempty,gte=0"`
	Status          *string    `json:"status" validate:"omitempty,oneof=active paused completed cancelled"`
	Deadline        *time.Time `json:"deadline"`
}

// List handles GET /api/projects.
func (h *ProjectHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	projects, err := h.service.List(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projects)
}

// Create handles POST /api/projects.
//
// @Summary      Create a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProjectRequest  true  "Project details"
// @Success      201   {object}  domain.Project
// @Failure      400   {object}  map[string]string
// @Router       /api/projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	project, err := h.service.Create(c.Request().Context(), ports.CreateProjectInput{
		UserID:          userID,
		ClientID:        req.ClientID,
		Name:            req.Name,
		Description:     req.Description,
		HourlyRateCents: req.HourlyRateCents,
		Status:          domain.ProjectStatus(req.Status),
		Deadline:        req.Deadline,
	})
	if err != nil {
		return err
	}

	logActivity(c, h.activity, userID, "project_created", "project", project.ID, map[string]string{"name": project.Name})
	return c.JSON(http.StatusCreated, project)
}

// Update handles PUT /api/projects/:id.
func (h *ProjectHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req updateProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var status *domain.ProjectStatus
	if req.Status != nil {
		s := domain.ProjectStatus(*req.Status)
		status = &s
	}

	project, err := h.service.Update(c.Request().Context(), c.Param("id"), userID, ports.UpdateProjectInput{
		ClientID:        req.ClientID,
		Name:            req.Name,
		Description:     req.Description,
		HourlyRateCents: req.HourlyRateCents,
		Status:          status,
		Deadline:        req.Deadline,
	})
	if err != nil {
		return err
	}

	logActivity(c, h.activity, userID, "project_updated", "project", project.ID, nil)
	return c.JSON(http.StatusOK, project)
}

// Delete handles DELETE /api/projects/:id.
func (h *ProjectHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	if err := h.service.Delete(c.Request().Context(), id, userID); err != nil {
		return err
	}

	logActivity(c, h.activity, userID, "project_deleted", "project", id, nil)
	return c.NoContent(http.StatusNoContent)
}
