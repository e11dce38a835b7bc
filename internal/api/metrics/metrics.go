// Package metrics defines and registers all custom Prometheus metrics for the
// auction marketplace API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default Prometheus registry at package
// init through promauto; request-level metrics come from echoprometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "marketplace"

// ── Marketplace metrics ───────────────────────────────────────────────────────

// ProductsCreatedTotal counts newly listed products.
var ProductsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "products_created_total",
		Help:      "Total number of products listed.",
	},
)

// BidsPlacedTotal counts newly placed bids.
var BidsPlacedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bids_placed_total",
		Help:      "Total number of bids placed.",
	},
)

// AuthorizationDeniedTotal counts mutations rejected by the ownership check.
// Labels:
//   - resource: "product" or "bid"
//   - operation: "update", "delete" or "picture"
var AuthorizationDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authorization_denied_total",
		Help:      "Total number of mutations rejected because the caller is neither owner nor admin.",
	},
	[]string{"resource", "operation"},
)

// AdminOverridesTotal counts mutations that passed only because the caller is an admin.
var AdminOverridesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "admin_overrides_total",
		Help:      "Total number of mutations on resources owned by someone else, allowed by the admin bypass.",
	},
	[]string{"resource", "operation"},
)

// IdempotentReplaysTotal counts create requests answered from a stored Idempotency-Key.
var IdempotentReplaysTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "idempotent_replays_total",
		Help:      "Total number of create requests answered from a previously seen idempotency key.",
	},
	[]string{"resource"},
)

// ── Activity trail metrics ────────────────────────────────────────────────────

// ActivityQueueDepth tracks the number of audit events waiting in each worker channel.
var ActivityQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "activity_queue_depth",
		Help:      "Current number of audit events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// ActivityDroppedTotal counts audit events dropped because a worker channel was full.
var ActivityDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activity_dropped_total",
		Help:      "Total number of audit events dropped because the dispatcher was saturated.",
	},
)

// ActivityErrorsTotal counts audit events that failed to persist.
var ActivityErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activity_errors_total",
		Help:      "Total number of audit events that could not be written.",
	},
)
