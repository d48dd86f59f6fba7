package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/freelancedesk/freelancedesk/internal/core/domain"
	"github.com/freelancedesk/freelancedesk/internal/core/ports"
)

type stubTimeEntryService struct {
	active    *domain.TimeEntry
	lastStart ports.StartTimerInput
	stopped   *domain.TimeEntry
}

func (s *stubTimeEntryService) List(_ context.Context, userID, projectID string) ([]*domain.TimeEntry, error) {
	return nil, nil
}

func (s *stubTimeEntryService) Active(_ context.Context, userID string) (*domain.TimeEntry, error) {
	return s.active, nil
}

func (s *stubTimeEntryService) Start(_ context.Context, in ports.StartTimerInput) (*domain.TimeEntry, error) {
	s.lastStart = in
	return &domain.TimeEntry{
		ID:        "e1",
		UserID:    in.UserID,
		ProjectID: in.ProjectID,
		StartTime: time.Now().UTC(),
		IsRunning: true,
	}, nil
}

func (s *stubTimeEntryService) Stop(_ context.Context, id, userID string) (*domain.TimeEntry, error) {
	if s.stopped == nil {
		return nil, domain.ErrTimeEntryNotFound
	}
	return s.stopped, nil
}

func (s *stubTimeEntryService) Update(_ context.Context, id, userID string, in ports.UpdateTimeEntryInput) (*domain.TimeEntry, error) {
	return nil, domain.ErrTimeEntryNotFound
}

func (s *stubTimeEntryService) Delete(_ context.Context, id, userID string) error {
	return domain.ErrTimeEntryNotFound
}

type stubRecorder struct {
	records []domain.ActivityLog
}

func (r *stubRecorder) Record(l domain.ActivityLog) {
	r.records = append(r.records, l)
}

func newTimeEntryContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "u1")
	return c, rec
}

func TestTimeEntryHandler_Start(t *testing.T) {
	svc := &stubTimeEntryService{}
	recorder := &stubRecorder{}
	h := NewTimeEntryHandler(svc, recorder)

	c, rec := newTimeEntryContext(t, http.MethodPost, "/api/time-entries",
		`{"projectId":"p1","description":"design"}`)

	if err := h.Start(c); err != nil {
		t.Fatalf("start: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if svc.lastStart.UserID != "u1" || svc.lastStart.ProjectID != "p1" {
		t.Fatalf("service input mismatch: %+v", svc.lastStart)
	}

	var resp domain.TimeEntry
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.IsRunning {
		t.Fatalf("response entry must be running")
	}

	if len(recorder.records) != 1 || recorder.records[0].Action != "timer_started" {
		t.Fatalf("expected one timer_started audit entry, got %+v", recorder.records)
	}
}

func TestTimeEntryHandler_StartMissingProject(t *testing.T) {
	h := NewTimeEntryHandler(&stubTimeEntryService{}, &stubRecorder{})

	c, _ := newTimeEntryContext(t, http.MethodPost, "/api/time-entries", `{"description":"x"}`)

	err := h.Start(c)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestTimeEntryHandler_ActiveNull(t *testing.T) {
	h := NewTimeEntryHandler(&stubTimeEntryService{}, &stubRecorder{})

	c, rec := newTimeEntryContext(t, http.MethodGet, "/api/time-entries/active", "")

	if err := h.Active(c); err != nil {
		t.Fatalf("active: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "null" {
		t.Fatalf("expected null body for idle user, got %q", got)
	}
}

func TestTimeEntryHandler_Unauthenticated(t *testing.T) {
	h := NewTimeEntryHandler(&stubTimeEntryService{}, &stubRecorder{})

	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodGet, "/api/time-entries", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.List(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without claims, got %v", err)
	}
}
