package service

import (
	"testing"
	"time"

	"github.com/freelancedesk/freelancedesk/internal/core/domain"
)

func intPtr(n int) *int { return &n }

func timePtr(t time.Time) *time.Time { return &t }

func TestComputeStats_WeeklyHours(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	entries := []*domain.TimeEntry{
		{Duration: intPtr(90), CreatedAt: now.AddDate(0, 0, -1)},  // counted
		{Duration: intPtr(30), CreatedAt: now.AddDate(0, 0, -6)},  // counted
		{Duration: intPtr(60), CreatedAt: now.AddDate(0, 0, -10)}, // too old
		{Duration: nil, CreatedAt: now},                           // running, excluded
	}

	stats := computeStats(entries, nil, nil, now)
	if stats.WeeklyHours != 2.0 {
		t.Fatalf("weekly hours: got %v want 2.0", stats.WeeklyHours)
	}
}

func TestComputeStats_WeeklyHoursRoundsToTenth(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	// 100 minutes = 1.666... hours, rounds to 1.7.
	entries := []*domain.TimeEntry{
		{Duration: intPtr(100), CreatedAt: now},
	}

	stats := computeStats(entries, nil, nil, now)
	if stats.WeeklyHours != 1.7 {
		t.Fatalf("weekly hours: got %v want 1.7", stats.WeeklyHours)
	}
}

func TestComputeStats_ActiveProjects(t *testing.T) {
	now := time.Now().UTC()

	projects := []*domain.Project{
		{Status: domain.ProjectActive},
		{Status: domain.ProjectActive},
		{Status: domain.ProjectPaused},
		{Status: domain.ProjectCompleted},
	}

	stats := computeStats(nil, projects, nil, now)
	if stats.ActiveProjects != 2 {
		t.Fatalf("active projects: got %d want 2", stats.ActiveProjects)
	}
}

func TestComputeStats_PendingAndRevenue(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	invoices := []*domain.Invoice{
		{Status: domain.InvoiceSent, TotalCents: 10000},
		{Status: domain.InvoiceOverdue, TotalCents: 5000},
		{Status: domain.InvoiceDraft, TotalCents: 99999}, // not pending
		{Status: domain.InvoicePaid, TotalCents: 20000, PaidDate: timePtr(now.AddDate(0, 0, -5))},
		{Status: domain.InvoicePaid, TotalCents: 7000, PaidDate: timePtr(now.AddDate(0, 0, -40))}, // outside window
		{Status: domain.InvoicePaid, TotalCents: 3000, PaidDate: nil},                             // no paid date
	}

	stats := computeStats(nil, nil, invoices, now)
	if stats.PendingCents != 15000 {
		t.Fatalf("pending: got %d want 15000", stats.PendingCents)
	}
	if stats.MonthlyRevenueCents != 20000 {
		t.Fatalf("revenue: got %d want 20000", stats.MonthlyRevenueCents)
	}
}

func TestComputeStats_Empty(t *testing.T) {
	stats := computeStats(nil, nil, nil, time.Now().UTC())
	if stats.WeeklyHours != 0 || stats.ActiveProjects != 0 || stats.PendingCents != 0 || stats.MonthlyRevenueCents != 0 {
		t.Fatalf("expected zero stats, got %+v", stats)
	}
}
