package handler

import (
	"encoding/json"

	"github.com/labstack/echo/v4"

	"github.com/freelancedesk/freelancedesk/internal/core/domain"
	"github.com/freelancedesk/freelancedesk/internal/core/ports"
)

// logActivity enqueues an audit entry for a mutating request. It never
// blocks and never fails the request.
func logActivity(c echo.Context, rec ports.ActivityRecorder, userID, action, entityType, entityID string, details any) {
	var raw json.RawMessage
	if details != nil {
		raw, _ = json.Marshal(details)
	}
	rec.Record(domain.ActivityLog{
		UserID:     userID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Details:    raw,
		IPAddress:  c.RealIP(),
		UserAgent:  c.Request().UserAgent(),
	})
}
