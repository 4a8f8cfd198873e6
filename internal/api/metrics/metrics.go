// Package metrics defines all custom Prometheus metrics for the card
// service. It is the single source of truth for metric names, labels, and
// help strings. Metrics register with the default registry via promauto at
// package load; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "zcardgen"

// ── Card metrics ──────────────────────────────────────────────────────────────

// CardsCreatedTotal counts newly created cards.
// Label:
//   - theme: "default", "dark" or "light"
var CardsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cards_created_total",
		Help:      "Total number of cards created, by theme.",
	},
	[]string{"theme"},
)

// ── View tracking metrics ─────────────────────────────────────────────────────

// ViewsRecordedTotal counts view rows successfully appended.
var ViewsRecordedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "views_recorded_total",
		Help:      "Total number of card views successfully recorded.",
	},
)

// ViewsErrorsTotal counts views that failed recording.
// Label:
//   - reason: short description of the failure (e.g. "card_not_found", "insert_failed")
var ViewsErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "views_errors_total",
		Help:      "Total number of card views that failed recording.",
	},
	[]string{"reason"},
)

// TrackQueueDepth tracks the number of views waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var TrackQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "track_queue_depth",
		Help:      "Current number of views pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// ViewProcessingDuration measures how long one view takes from dequeue to
// persistence.
var ViewProcessingDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "view_processing_duration_seconds",
		Help:      "Duration of view recording from dequeue to persistence.",
		Buckets:   prometheus.DefBuckets,
	},
)

// ── Upload metrics ────────────────────────────────────────────────────────────

// UploadsTotal counts blob store operations.
// Label:
//   - operation: "store" or "remove"
var UploadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_total",
		Help:      "Total number of blob store operations, by operation.",
	},
	[]string{"operation"},
)
