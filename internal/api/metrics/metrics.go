// Package metrics defines and registers all custom Prometheus metrics for
// the Fix4Home admin gateway. It is the single source of truth for metric
// names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "fix4home_admin"

// UpstreamRequestsTotal counts calls to the remote Fix4Home API.
// Labels:
//   - method: HTTP method of the outbound request
//   - outcome: "ok", "error", "session_invalid", or "unreachable"
var UpstreamRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_requests_total",
		Help:      "Total number of requests sent to the upstream API, by outcome.",
	},
	[]string{"method", "outcome"},
)

// UpstreamRequestDuration measures end-to-end duration of upstream calls.
var UpstreamRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_request_duration_seconds",
		Help:      "Duration of upstream API calls from dispatch to response decode.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method"},
)

// SessionInvalidationsTotal counts sessions cleared because the upstream
// rejected the stored credential mid-flight.
var SessionInvalidationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_invalidations_total",
		Help:      "Total number of sessions cleared after an upstream authentication failure.",
	},
)

// LoginsTotal counts login attempts through the gateway.
// Label:
//   - result: "success", "denied" (non-admin role), or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)
