package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/freelancedesk/freelancedesk/internal/api/metrics"
	"github.com/freelancedesk/freelancedesk/internal/core/domain"
	"github.com/freelancedesk/freelancedesk/internal/core/ports"
)

// TimeEntryService implements the timer lifecycle. The one-running-entry-
// per-user invariant lives in the repository: Start stops the previous
// running entry and inserts the new one in a single transaction, backed by
// a partial unique index.
type TimeEntryService struct {
	repo ports.TimeEntryRepository
	log  zerolog.Logger
}

func NewTimeEntryService(repo ports.TimeEntryRepository, log zerolog.Logger) *TimeEntryService {
	return &TimeEntryService{repo: repo, log: log}
}

func (s *TimeEntryService) List(ctx context.Context, userID, projectID string) ([]*domain.TimeEntry, error) {
	return s.repo.ListByUser(ctx, userID, projectID)
}

// Active returns the running entry, or nil when the user is idle.
func (s *TimeEntryService) Active(ctx context.Context, userID string) (*domain.TimeEntry, error) {
	e, err := s.repo.FindRunning(ctx, userID)
	if errors.Is(err, domain.ErrTimeEntryNotFound) {
		return nil, nil
	}
	return e, err
}

// Start begins a new work session. Any previously running entry is stopped
// at the new entry's start time, so its end time never exceeds the new
// entry's start.
func (s *TimeEntryService) Start(ctx context.Context, in ports.StartTimerInput) (*domain.TimeEntry, error) {
	now := time.Now().UTC()
	e := &domain.TimeEntry{
		ID:          uuid.NewString(),
		UserID:      in.UserID,
		ProjectID:   in.ProjectID,
		Description: in.Description,
		StartTime:   now,
		IsRunning:   true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	stopped, err := s.repo.Start(ctx, e)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", in.UserID).Msg("failed to start timer")
		return nil, err
	}

	if stopped != nil {
		metrics.TimersAutoStoppedTotal.Inc()
		s.log.Info().
			Str("entry_id", stopped.ID).
			Str("user_id", in.UserID).
			Msg("auto-stopped previous running entry")
	}

	metrics.TimersStartedTotal.Inc()
	s.log.Info().Str("entry_id", e.ID).Str("project_id", e.ProjectID).Msg("timer started")
	return e, nil
}

// Stop closes an entry at the current time. Duration is the whole-minute
// span since start, rounded down and never negative.
func (s *TimeEntryService) Stop(ctx context.Context, id, userID string) (*domain.TimeEntry, error) {
	e, err := s.repo.Get(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	d := domain.DurationMinutes(e.StartTime, now)

	stopped, err := s.repo.Finish(ctx, id, userID, now, d)
	if err != nil {
		s.log.Error().Err(err).Str("entry_id", id).Msg("failed to stop timer")
		return nil, err
	}

	metrics.TimersStoppedTotal.Inc()
	s.log.Info().Str("entry_id", id).Int("duration_min", d).Msg("timer stopped")
	return stopped, nil
}

func (s *TimeEntryService) Update(ctx context.Context, id, userID string, in ports.UpdateTimeEntryInput) (*domain.TimeEntry, error) {
	return s.repo.Update(ctx, id, userID, in)
}

// Delete removes an entry in any state. Derived invoices are untouched.
func (s *TimeEntryService) Delete(ctx context.Context, id, userID string) error {
	return s.repo.Delete(ctx, id, userID)
}
