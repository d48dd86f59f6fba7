package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freelancedesk/freelancedesk/internal/core/ports"
)

// ClientHandler handles HTTP requests for client records.
type ClientHandler struct {
	service  ports.ClientService
	activity ports.ActivityRecorder
}

func NewClientHandler(service ports.ClientService, activity ports.ActivityRecorder) *ClientHandler {
	return &ClientHandler{service: service, activity: activity}
}

type createClientRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

type updateClientRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Phone   *string `json:"phone"`
	Company *string `json:"company"`
	Address *string `json:"address"`
	Notes   *string `json:"notes"`
}

// List handles GET /api/clients.
func (h *ClientHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	clients, err := h.service.List(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, clients)
}

// Create handles POST /api/clients.
//
// @Summary      Create a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createClientRequest  true  "Client details"
// @Success      201   {object}  domain.Client
// @Failure      400   {object}  map[string]string
// @Router       /api/clients [post]
func (h *ClientHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createClientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	client, err := h.service.Create(c.Request().Context(), ports.CreateClientInput{
		UserID:  userID,
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Company: req.Company,
		Address: req.Address,
		Notes:   req.Notes,
	})
	if err != nil {
		return err
	}

	logActivity(c, h.activity, userID, "client_created", "client", client.ID, map[string]string{"name": client.Name})
	return c.JSON(http.StatusCreated, client)
}

// Update handles PUT /api/clients/:id.
func (h *ClientHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req updateClientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	client, err := h.service.Update(c.Request().Context(), c.Param("id"), userID, ports.UpdateClientInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Company: req.Company,
		Address: req.Address,
		Notes:   req.Notes,
	})
	if err != nil {
		return err
	}

	logActivity(c, h.activity, userID, "client_updated", "client", client.ID, nil)
	return c.JSON(http.StatusOK, client)
}

// Delete handles DELETE /api/clients/:id.
func (h *ClientHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	if err := h.service.Delete(c.Request().Context(), id, userID); err != nil {
		return err
	}

	logActivity(c, h.activity, userID, "client_deleted", "client", id, nil)
	return c.NoContent(http.StatusNoContent)
}
