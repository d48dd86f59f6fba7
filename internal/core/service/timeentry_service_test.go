package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/freelancedesk/freelancedesk/internal/core/domain"
	"github.com/freelancedesk/freelancedesk/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubTimeEntryRepo struct {
	entries  map[string]*domain.TimeEntry
	startErr error // if set, Start returns this error
}

func newStubTimeEntryRepo() *stubTimeEntryRepo {
	return &stubTimeEntryRepo{entries: make(map[string]*domain.TimeEntry)}
}

func (r *stubTimeEntryRepo) ListByUser(_ context.Context, userID, projectID string) ([]*domain.TimeEntry, error) {
	var out []*domain.TimeEntry
	for _, e := range r.entries {
		if e.UserID != userID {
			continue
		}
		if projectID != "" && e.ProjectID != projectID {
			continue
		}
		clone := *e
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubTimeEntryRepo) FindRunning(_ context.Context, userID string) (*domain.TimeEntry, error) {
	for _, e := range r.entries {
		if e.UserID == userID && e.IsRunning {
			clone := *e
			return &clone, nil
		}
	}
	return nil, domain.ErrTimeEntryNotFound
}

func (r *stubTimeEntryRepo) Get(_ context.Context, id, userID string) (*domain.TimeEntry, error) {
	e, ok := r.entries[id]
	if !ok || e.UserID != userID {
		return nil, domain.ErrTimeEntryNotFound
	}
	clone := *e
	return &clone, nil
}

// Start mirrors the transactional stop-and-insert of the real repository.
func (r *stubTimeEntryRepo) Start(_ context.Context, e *domain.TimeEntry) (*domain.TimeEntry, error) {
	if r.startErr != nil {
		return nil, r.startErr
	}

	var stopped *domain.TimeEntry
	for _, prev := range r.entries {
		if prev.UserID == e.UserID && prev.IsRunning {
			end := e.StartTime
			d := domain.DurationMinutes(prev.StartTime, end)
			prev.EndTime = &end
			prev.Duration = &d
			prev.IsRunning = false
			clone := *prev
			stopped = &clone
			break
		}
	}

	clone := *e
	r.entries[e.ID] = &clone
	return stopped, nil
}

func (r *stubTimeEntryRepo) Finish(_ context.Context, id, userID string, end time.Time, durationMin int) (*domain.TimeEntry, error) {
	e, ok := r.entries[id]
	if !ok || e.UserID != userID {
		return nil, domain.ErrTimeEntryNotFound
	}
	e.EndTime = &end
	e.Duration = &durationMin
	e.IsRunning = false
	clone := *e
	return &clone, nil
}

func (r *stubTimeEntryRepo) Update(_ context.Context, id, userID string, in ports.UpdateTimeEntryInput) (*domain.TimeEntry, error) {
	e, ok := r.entries[id]
	if !ok || e.UserID != userID {
		return nil, domain.ErrTimeEntryNotFound
	}
	if in.Description != nil {
		e.Description = *in.Description
	}
	if in.Duration != nil {
		e.Duration = in.Duration
	}
	clone := *e
	return &clone, nil
}

func (r *stubTimeEntryRepo) Delete(_ context.Context, id, userID string) error {
	e, ok := r.entries[id]
	if !ok || e.UserID != userID {
		return domain.ErrTimeEntryNotFound
	}
	delete(r.entries, id)
	return nil
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestStartTimer_Idle(t *testing.T) {
	repo := newStubTimeEntryRepo()
	svc := NewTimeEntryService(repo, zerolog.Nop())

	e, err := svc.Start(context.Background(), ports.StartTimerInput{
		UserID:      "u1",
		ProjectID:   "p1",
		Description: "design work",
	})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if e.ID == "" {
		t.Fatalf("expected generated id")
	}
	if !e.IsRunning {
		t.Fatalf("new entry must be running")
	}

	running, err := repo.FindRunning(context.Background(), "u1")
	if err != nil {
		t.Fatalf("find running: %v", err)
	}
	if running.ID != e.ID {
		t.Fatalf("running entry mismatch: got %s want %s", running.ID, e.ID)
	}
}

func TestStartTimer_AutoStopsPrevious(t *testing.T) {
	repo := newStubTimeEntryRepo()
	start := time.Now().UTC().Add(-10 * time.Minute)
	repo.entries["old"] = &domain.TimeEntry{
		ID:        "old",
		UserID:    "u1",
		ProjectID: "p1",
		StartTime: start,
		IsRunning: true,
	}
	svc := NewTimeEntryService(repo, zerolog.Nop())

	e, err := svc.Start(context.Background(), ports.StartTimerInput{UserID: "u1", ProjectID: "p2"})
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	old := repo.entries["old"]
	if old.IsRunning {
		t.Fatalf("previous entry still running")
	}
	if old.EndTime == nil || !old.EndTime.Equal(e.StartTime) {
		t.Fatalf("previous entry must end at the new entry's start time")
	}
	if old.Duration == nil || *old.Duration != 10 {
		t.Fatalf("expected 10 minute duration, got %v", old.Duration)
	}

	running, err := repo.FindRunning(context.Background(), "u1")
	if err != nil {
		t.Fatalf("find running: %v", err)
	}
	if running.ID != e.ID {
		t.Fatalf("only the new entry may be running")
	}
}

func TestStartTimer_ConflictPropagates(t *testing.T) {
	repo := newStubTimeEntryRepo()
	repo.startErr = domain.ErrTimerConflict
	svc := NewTimeEntryService(repo, zerolog.Nop())

	_, err := svc.Start(context.Background(), ports.StartTimerInput{UserID: "u1", ProjectID: "p1"})
	if !errors.Is(err, domain.ErrTimerConflict) {
		t.Fatalf("expected ErrTimerConflict, got %v", err)
	}
}

func TestStopTimer_FloorsDuration(t *testing.T) {
	repo := newStubTimeEntryRepo()
	repo.entries["e1"] = &domain.TimeEntry{
		ID:        "e1",
		UserID:    "u1",
		ProjectID: "p1",
		StartTime: time.Now().UTC().Add(-125 * time.Second),
		IsRunning: true,
	}
	svc := NewTimeEntryService(repo, zerolog.Nop())

	e, err := svc.Stop(context.Background(), "e1", "u1")
	if err != nil {
		t.Fatalf("stop: %v", err)
	}
	if e.Duration == nil || *e.Duration != 2 {
		t.Fatalf("expected floor to 2 minutes, got %v", e.Duration)
	}
	if e.IsRunning {
		t.Fatalf("stopped entry still running")
	}
}

func TestStopTimer_NeverNegative(t *testing.T) {
	repo := newStubTimeEntryRepo()
	repo.entries["e1"] = &domain.TimeEntry{
		ID:        "e1",
		UserID:    "u1",
		ProjectID: "p1",
		StartTime: time.Now().UTC().Add(time.Hour),
		IsRunning: true,
	}
	svc := NewTimeEntryService(repo, zerolog.Nop())

	e, err := svc.Stop(context.Background(), "e1", "u1")
	if err != nil {
		t.Fatalf("stop: %v", err)
	}
	if e.Duration == nil || *e.Duration != 0 {
		t.Fatalf("expected clamped 0 duration, got %v", e.Duration)
	}
}

func TestStopTimer_UnknownEntry(t *testing.T) {
	repo := newStubTimeEntryRepo()
	svc := NewTimeEntryService(repo, zerolog.Nop())

	_, err := svc.Stop(context.Background(), "nope", "u1")
	if !errors.Is(err, domain.ErrTimeEntryNotFound) {
		t.Fatalf("expected ErrTimeEntryNotFound, got %v", err)
	}
}

func TestActive_NilWhenIdle(t *testing.T) {
	repo := newStubTimeEntryRepo()
	svc := NewTimeEntryService(repo, zerolog.Nop())

	e, err := svc.Active(context.Background(), "u1")
	if err != nil {
		t.Fatalf("active: %v", err)
	}
	if e != nil {
		t.Fatalf("expected nil entry for idle user, got %+v", e)
	}
}
