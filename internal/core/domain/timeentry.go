package domain

import (
	"errors"
	"time"
)

var ErrTimeEntryNotFound = errors.New("time entry not found")

// ErrTimerConflict is returned when a concurrent start hits the one-running-
// entry-per-user unique index.
var ErrTimerConflict = errors.New("another timer is already running")

// TimeEntry is a work session on a project. At most one entry per user may
// have IsRunning=true at any instant; the storage layer enforces this with
// a partial unique index.
type TimeEntry struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	ProjectID   string     `json:"projectId"`
	Description string     `json:"description,omitempty"`
	StartTime   time.Time  `json:"startTime"`
	EndTime     *time.Time `json:"endTime,omitempty"`
	// Duration is whole minutes between start and end, floor-rounded.
	Duration  *int      `json:"duration,omitempty"`
	IsRunning bool      `json:"isRunning"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DurationMinutes returns the whole-minute span between start and end,
// rounded down and never negative.
func DurationMinutes(start, end time.Time) int {
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start) / time.Minute)
}
