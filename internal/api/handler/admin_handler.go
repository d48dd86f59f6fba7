package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/freelancedesk/freelancedesk/internal/core/ports"
)

// AdminHandler handles the admin console: user management, gateway keys
// and the audit trail. All routes are gated behind the admin role.
type AdminHandler struct {
	users    ports.UserService
	keys     ports.PaymentKeyService
	logs     ports.ActivityLogRepository
	activity ports.ActivityRecorder
}

func NewAdminHandler(
	users ports.UserService,
	keys ports.PaymentKeyService,
	logs ports.ActivityLogRepository,
	activity ports.ActivityRecorder,
) *AdminHandler {
	return &AdminHandler{users: users, keys: keys, logs: logs, activity: activity}
}

type updateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=admin freelancer client"`
}

type createPaymentKeyRequest struct {
	Provider string `json:"provider" validate:"required"`
	KeyName  string `json:"keyName" validate:"required"`
	KeyValue string `json:"keyValue" validate:"required"`
}

// ListUsers handles GET /api/admin/users.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.users.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// UpdateUserRole handles PUT /api/admin/users/:id/role.
func (h *AdminHandler) UpdateUserRole(c echo.Context) error {
	adminID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req updateRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	u, err := h.users.UpdateRole(c.Request().Context(), c.Param("id"), req.Role)
	if err != nil {
		return err
	}

	logActivity(c, h.activity, adminID, "user_role_updated", "user", u.ID, map[string]string{"role": req.Role})
	return c.JSON(http.StatusOK, u)
}

// DeactivateUser handles PUT /api/admin/users/:id/deactivate.
func (h *AdminHandler) DeactivateUser(c echo.Context) error {
	adminID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	u, err := h.users.Deactivate(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	logActivity(c, h.activity, adminID, "user_deactivated", "user", u.ID, nil)
	return c.JSON(http.StatusOK, u)
}

// ActivateUser handles PUT /api/admin/users/:id/activate.
func (h *AdminHandler) ActivateUser(c echo.Context) error {
	adminID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	u, err := h.users.Activate(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	logActivity(c, h.activity, adminID, "user_activated", "user", u.ID, nil)
	return c.JSON(http.StatusOK, u)
}

// ListPaymentKeys handles GET /api/admin/payment-keys. Key values are
// always redacted.
func (h *AdminHandler) ListPaymentKeys(c echo.Context) error {
	keys, err := h.keys.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, keys)
}

// CreatePaymentKey handles POST /api/admin/payment-keys. The plaintext
// value is encrypted before storage and never echoed back.
func (h *AdminHandler) CreatePaymentKey(c echo.Context) error {
	adminID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createPaymentKeyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	k, err := h.keys.Create(c.Request().Context(), ports.CreatePaymentKeyInput{
		Provider: req.Provider,
		KeyName:  req.KeyName,
		KeyValue: req.KeyValue,
	})
	if err != nil {
		return err
	}

	logActivity(c, h.activity, adminID, "payment_key_created", "payment_key", k.ID, map[string]string{"provider": k.Provider})
	return c.JSON(http.StatusCreated, k)
}

// DeletePaymentKey handles DELETE /api/admin/payment-keys/:id.
func (h *AdminHandler) DeletePaymentKey(c echo.Context) error {
	adminID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	if err := h.keys.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	logActivity(c, h.activity, adminID, "payment_key_deleted", "payment_key", id, nil)
	return c.NoContent(http.StatusNoContent)
}

// ListActivityLogs handles GET /api/admin/activity-logs with optional
// userId and limit query params.
func (h *AdminHandler) ListActivityLogs(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a non-negative integer")
		}
		limit = n
	}

	logs, err := h.logs.List(c.Request().Context(), c.QueryParam("userId"), limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, logs)
}
