package ports

import (
	"context"
	"time"

	"github.com/freelancedesk/freelancedesk/internal/core/domain"
)

// StartTimerInput carries the fields accepted when starting a timer.
type StartTimerInput struct {
	UserID      string
	ProjectID   string
	Description string
}

// UpdateTimeEntryInput is a partial patch; nil fields are left untouched.
type UpdateTimeEntryInput struct {
	ProjectID   *string
	Description *string
	StartTime   *time.Time
	EndTime     *time.Time
	Duration    *int
}

// TimeEntryRepository defines persistence operations for time entries.
type TimeEntryRepository interface {
	// ListByUser returns the user's entries, newest first. A non-empty
	// projectID narrows the result to one project.
	ListByUser(ctx context.Context, userID, projectID string) ([]*domain.TimeEntry, error)
	// FindRunning returns the user's running entry, or ErrTimeEntryNotFound.
	FindRunning(ctx context.Context, userID string) (*domain.TimeEntry, error)
	Get(ctx context.Context, id, userID string) (*domain.TimeEntry, error)
	// Start atomically stops the user's running entry (if any) at the new
	// entry's start time and inserts the new entry. The stopped entry is
	// returned, or nil when the user was idle.
	Start(ctx context.Context, e *domain.TimeEntry) (*domain.TimeEntry, error)
	// Finish closes an entry: sets end time and duration, clears is_running.
	Finish(ctx context.Context, id, userID string, end time.Time, durationMin int) (*domain.TimeEntry, error)
	Update(ctx context.Context, id, userID string, in UpdateTimeEntryInput) (*domain.TimeEntry, error)
	Delete(ctx context.Context, id, userID string) error
}

// TimeEntryService defines the timer lifecycle use cases.
type TimeEntryService interface {
	List(ctx context.Context, userID, projectID string) ([]*domain.TimeEntry, error)
	// Active returns the running entry, or nil when the user is idle.
	Active(ctx context.Context, userID string) (*domain.TimeEntry, error)
	Start(ctx context.Context, in StartTimerInput) (*domain.TimeEntry, error)
	Stop(ctx context.Context, id, userID string) (*domain.TimeEntry, error)
	Update(ctx context.Context, id, userID string, in UpdateTimeEntryInput) (*domain.TimeEntry, error)
	Delete(ctx context.Context, id, userID string) error
}
