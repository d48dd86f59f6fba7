package service

import (
	"context"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/freelancedesk/freelancedesk/internal/core/domain"
	"github.com/freelancedesk/freelancedesk/internal/core/ports"
)

// DashboardService computes the dashboard aggregates from three base
// fetches; all arithmetic happens in memory on integer cents.
type DashboardService struct {
	entries  ports.TimeEntryRepository
	projects ports.ProjectRepository
	invoices ports.InvoiceRepository
	log      zerolog.Logger
}

func NewDashboardService(
	entries ports.TimeEntryRepository,
	projects ports.ProjectRepository,
	invoices ports.InvoiceRepository,
	log zerolog.Logger,
) *DashboardService {
	return &DashboardService{entries: entries, projects: projects, invoices: invoices, log: log}
}

func (s *DashboardService) Stats(ctx context.Context, userID string) (*ports.DashboardStats, error) {
	entries, err := s.entries.ListByUser(ctx, userID, "")
	if err != nil {
		return nil, err
	}
	projects, err := s.projects.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	invoices, err := s.invoices.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return computeStats(entries, projects, invoices, now), nil
}

// computeStats is the pure aggregation over already-fetched collections.
func computeStats(
	entries []*domain.TimeEntry,
	projects []*domain.Project,
	invoices []*domain.Invoice,
	now time.Time,
) *ports.DashboardStats {
	weekAgo := now.AddDate(0, 0, -7)
	monthAgo := now.AddDate(0, 0, -30)

	var weeklyMinutes int
	for _, e := range entries {
		if e.Duration == nil || e.CreatedAt.Before(weekAgo) {
			continue
		}
		weeklyMinutes += *e.Duration
	}

	var active int
	for _, p := range projects {
		if p.Status == domain.ProjectActive {
			active++
		}
	}

	var pending, revenue int64
	for _, inv := range invoices {
		switch inv.Status {
		case domain.InvoiceSent, domain.InvoiceOverdue:
			pending += inv.TotalCents
		case domain.InvoicePaid:
			if inv.PaidDate != nil && !inv.PaidDate.Before(monthAgo) {
				revenue += inv.TotalCents
			}
		}
	}

	return &ports.DashboardStats{
		WeeklyHours:         math.Round(float64(weeklyMinutes)/60*10) / 10,
		ActiveProjects:      active,
		PendingCents:        pending,
		MonthlyRevenueCents: revenue,
	}
}
