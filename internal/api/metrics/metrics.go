// Package metrics defines and registers all custom Prometheus metrics for
// the FreelanceDesk API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default registry at init time; the router
// exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "freelancedesk"

// ── Timer metrics ─────────────────────────────────────────────────────────────

// TimersStartedTotal counts successfully started time entries.
var TimersStartedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "timers_started_total",
		Help:      "Total number of time entries started.",
	},
)

// TimersStoppedTotal counts explicit stop calls that completed.
var TimersStoppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "timers_stopped_total",
		Help:      "Total number of time entries stopped via the stop endpoint.",
	},
)

// TimersAutoStoppedTotal counts entries closed implicitly because the same
// user started a new timer while one was still running.
var TimersAutoStoppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "timers_auto_stopped_total",
		Help:      "Total number of running entries auto-stopped by a new start.",
	},
)

// ── Billing metrics ───────────────────────────────────────────────────────────

// DocumentsCreatedTotal counts generated invoices and quotes.
// Labels:
//   - type: "invoice" or "quote"
//   - variant: the A/B template label assigned at creation
var DocumentsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "documents_created_total",
		Help:      "Total number of invoices and quotes created, by type and template variant.",
	},
	[]string{"type", "variant"},
)

// ── Activity log metrics ──────────────────────────────────────────────────────

// ActivityLogsDroppedTotal counts audit entries dropped because the recorder
// queue was full.
var ActivityLogsDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activity_logs_dropped_total",
		Help:      "Total number of activity log entries dropped due to a full queue.",
	},
)

// ActivityLogsFailedTotal counts audit entries that failed to persist.
var ActivityLogsFailedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activity_logs_failed_total",
		Help:      "Total number of activity log entries that failed to write.",
	},
)

// ActivityQueueDepth tracks entries waiting in the recorder channel.
var ActivityQueueDepth = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "activity_queue_depth",
		Help:      "Current number of activity log entries pending in the recorder queue.",
	},
)

// ── Payment metrics ───────────────────────────────────────────────────────────

// WebhookDedupTotal counts webhook deduplication decisions.
// Label:
//   - result: "duplicate" (replay, skipped) or "processed" (new delivery)
var WebhookDedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "webhook_dedup_total",
		Help:      "Total number of payment webhook dedup checks, labelled by result.",
	},
	[]string{"result"},
)

// PaymentOrdersTotal counts gateway order operations by outcome.
// Labels:
//   - operation: "create" or "status"
//   - outcome: "ok" or "error"
var PaymentOrdersTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payment_orders_total",
		Help:      "Total number of payment gateway calls, by operation and outcome.",
	},
	[]string{"operation", "outcome"},
)
