package ports

import "context"

// DashboardStats is the aggregate view rendered on the dashboard.
type DashboardStats struct {
	// WeeklyHours sums durations (minutes/60) of entries created in the
	// trailing 7 days; entries without a duration are excluded.
	WeeklyHours float64 `json:"weeklyHours"`
	// ActiveProjects counts projects with status "active".
	ActiveProjects int `json:"activeProjects"`
	// PendingCents sums totals of sent and overdue invoices.
	PendingCents int64 `json:"pendingCents"`
	// MonthlyRevenueCents sums totals of invoices paid in the trailing 30 days.
	MonthlyRevenueCents int64 `json:"monthlyRevenueCents"`
}

// DashboardService computes read-only aggregates for one user.
type DashboardService interface {
	Stats(ctx context.Context, userID string) (*DashboardStats, error)
}
