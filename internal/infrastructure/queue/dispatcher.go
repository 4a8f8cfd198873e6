package queue

import (
	"context"
	"errors"
	"hash/fnv"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/saddam-69/zcardgen/internal/api/metrics"
	"github.com/saddam-69/zcardgen/internal/core/domain"
	"github.com/saddam-69/zcardgen/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes view records to a fixed set of workers using consistent
// hashing on the card id, guaranteeing per-card insertion ordering. Worker
// failures are logged and counted, never surfaced to the caller — view
// recording is fire-and-forget past the track endpoint's existence check.
type Dispatcher struct {
	workers []chan ports.RecordViewInput
	service ports.ViewService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.ViewService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.RecordViewInput, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.RecordViewInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends a view to the worker responsible for its card id.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(view ports.RecordViewInput) {
	i := d.shardIndex(view.CardID)
	d.workers[i] <- view
	metrics.TrackQueueDepth.WithLabelValues(strconv.Itoa(i)).Inc()
}

// shardIndex maps a card id deterministically to a worker index.
func (d *Dispatcher) shardIndex(cardID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(cardID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.RecordViewInput) {
	workerID := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case view, ok := <-ch:
			if !ok {
				return
			}
			metrics.TrackQueueDepth.WithLabelValues(workerID).Dec()

			start := time.Now()
			if _, err := d.service.Process(ctx, view); err != nil {
				reason := "insert_failed"
				if errors.Is(err, domain.ErrCardNotFound) {
					// Card deleted between enqueue and dequeue.
					reason = "card_not_found"
				}
				metrics.ViewsErrorsTotal.WithLabelValues(reason).Inc()
				d.log.Error().Err(err).
					Str("card_id", view.CardID).
					Int("worker_id", id).
					Msg("view recording failed")
			} else {
				metrics.ViewsRecordedTotal.Inc()
			}
			metrics.ViewProcessingDuration.Observe(time.Since(start).Seconds())
		}
	}
}
