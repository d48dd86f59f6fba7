package ports

import (
	"context"

	"github.com/freelancedesk/freelancedesk/internal/core/domain"
)

// ActivityLogRepository appends to and reads the audit trail.
type ActivityLogRepository interface {
	Insert(ctx context.Context, l *domain.ActivityLog) error
	// List returns the newest entries first. An empty userID matches all
	// users; limit <= 0 falls back to the default page size.
	List(ctx context.Context, userID string, limit int) ([]*domain.ActivityLog, error)
}

// ActivityRecorder accepts audit entries from request handlers. Recording
// is fire-and-forget: it never blocks the caller and never returns an error.
type ActivityRecorder interface {
	Record(l domain.ActivityLog)
}
