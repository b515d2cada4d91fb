package queue

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskgate/clickup-gateway/internal/api/metrics"
	"github.com/taskgate/clickup-gateway/internal/core/domain"
	"github.com/taskgate/clickup-gateway/internal/core/ports"
)

const (
	defaultWorkers = 2
	channelBuffer  = 256
	insertTimeout  = 5 * time.Second
)

// APILogWriter drains usage records into the store off the request path.
// Enqueue never blocks: when the buffer is full the entry is dropped and
// counted, since usage logging must not slow a response down.
type APILogWriter struct {
	entries chan domain.APILogEntry
	repo    ports.APILogRepository
	log     zerolog.Logger
	workers int
}

// NewAPILogWriter creates an APILogWriter with numWorkers drain goroutines.
// If numWorkers <= 0, defaultWorkers is used.
func NewAPILogWriter(numWorkers int, repo ports.APILogRepository, log zerolog.Logger) *APILogWriter {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	return &APILogWriter{
		entries: make(chan domain.APILogEntry, channelBuffer),
		repo:    repo,
		log:     log,
		workers: numWorkers,
	}
}

// Start launches the drain goroutines. Workers stop when ctx is cancelled.
func (w *APILogWriter) Start(ctx context.Context) {
	for i := 0; i < w.workers; i++ {
		go w.run(ctx)
	}
}

// Enqueue submits a usage record for persistence.
func (w *APILogWriter) Enqueue(entry domain.APILogEntry) {
	select {
	case w.entries <- entry:
	default:
		metrics.APILogFailuresTotal.Inc()
		w.log.Warn().Int64("user_id", entry.UserID).Msg("api log buffer full, entry dropped")
	}
}

func (w *APILogWriter) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case entry, ok := <-w.entries:
			if !ok {
				return
			}
			insertCtx, cancel := context.WithTimeout(context.Background(), insertTimeout)
			if err := w.repo.Insert(insertCtx, entry); err != nil {
				metrics.APILogFailuresTotal.Inc()
				w.log.Error().Err(err).
					Int64("user_id", entry.UserID).
					Str("endpoint", entry.Endpoint).
					Msg("api log insert failed")
			}
			cancel()
		}
	}
}
