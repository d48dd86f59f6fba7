package queue

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/freelancedesk/freelancedesk/internal/api/metrics"
	"github.com/freelancedesk/freelancedesk/internal/core/domain"
	"github.com/freelancedesk/freelancedesk/internal/core/ports"
)

const (
	channelBuffer = 256
	writeTimeout  = 5 * time.Second
)

// Recorder writes activity log entries off the request path. Record never
// blocks and never fails the caller: a full queue drops the entry, a failed
// insert is logged and counted.
type Recorder struct {
	ch   chan domain.ActivityLog
	repo ports.ActivityLogRepository
	log  zerolog.Logger
}

// NewRecorder creates a Recorder backed by the given repository.
func NewRecorder(repo ports.ActivityLogRepository, log zerolog.Logger) *Recorder {
	return &Recorder{
		ch:   make(chan domain.ActivityLog, channelBuffer),
		repo: repo,
		log:  log,
	}
}

// Start launches the writer goroutine. It stops when ctx is cancelled.
func (r *Recorder) Start(ctx context.Context) {
	go r.run(ctx)
}

// Record enqueues an audit entry. ID and timestamp are assigned here so
// callers only provide the payload.
func (r *Recorder) Record(l domain.ActivityLog) {
	l.ID = uuid.NewString()
	l.CreatedAt = time.Now().UTC()

	select {
	case r.ch <- l:
		metrics.ActivityQueueDepth.Set(float64(len(r.ch)))
	default:
		metrics.ActivityLogsDroppedTotal.Inc()
		r.log.Warn().
			Str("action", l.Action).
			Str("user_id", l.UserID).
			Msg("activity log queue full, entry dropped")
	}
}

func (r *Recorder) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case l, ok := <-r.ch:
			if !ok {
				return
			}
			metrics.ActivityQueueDepth.Set(float64(len(r.ch)))

			// The originating request is long gone; write with a fresh
			// bounded context.
			writeCtx, cancel := context.WithTimeout(context.Background(), writeTimeout)
			err := r.repo.Insert(writeCtx, &l)
			cancel()

			if err != nil {
				metrics.ActivityLogsFailedTotal.Inc()
				r.log.Warn().Err(err).
					Str("action", l.Action).
					Str("user_id", l.UserID).
					Msg("failed to write activity log")
			}
		}
	}
}
