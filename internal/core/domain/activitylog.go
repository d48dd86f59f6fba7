package domain

import (
	"encoding/json"
	"time"
)

// ActivityLog is one row of the append-only audit trail. Entries are
// written as a side effect of mutating API calls and are never updated
// or deleted by the application.
type ActivityLog struct {
	ID         string          `json:"id"`
	UserID     string          `json:"userId"`
	Action     string          `json:"action"`
	EntityType string          `json:"entityType,omitempty"`
	EntityID   string          `json:"entityId,omitempty"`
	Details    json.RawMessage `json:"details,omitempty"`
	IPAddress  string          `json:"ipAddress,omitempty"`
	UserAgent  string          `json:"userAgent,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
}
