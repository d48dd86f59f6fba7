package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freelancedesk/freelancedesk/internal/core/ports"
)

// AuthHandler handles the authenticated-user endpoint.
type AuthHandler struct {
	users ports.UserService
}

func NewAuthHandler(users ports.UserService) *AuthHandler {
	return &AuthHandler{users: users}
}

// Me handles GET /api/auth/user. The row is upserted from the token claims
// on every call, so the first login provisions the user.
//
// @Summary      Get the authenticated user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.User
// @Failure      401  {object}  map[string]string
// @Router       /api/auth/user [get]
func (h *AuthHandler) Me(c echo.Context) error {
	in, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	u, err := h.users.Provision(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, u)
}
