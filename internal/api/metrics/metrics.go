// Package metrics defines and registers all custom Prometheus metrics for
// the ClickUp gateway. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at package load;
// the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "clickup_gateway"

// UpstreamRequestsTotal counts outbound calls to the ClickUp API.
// Labels:
//   - method: HTTP verb of the outbound call
//   - status: upstream HTTP status code, or "error" when no response arrived
var UpstreamRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_requests_total",
		Help:      "Total number of outbound requests to the ClickUp API.",
	},
	[]string{"method", "status"},
)

// UpstreamRequestDuration measures the round-trip time of outbound calls.
var UpstreamRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_request_duration_seconds",
		Help:      "Duration of outbound ClickUp API calls.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method"},
)

// AuthAttemptsTotal counts authentication operations.
// Labels:
//   - action: "login" or "register"
//   - result: "ok" or "denied"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of login and registration attempts.",
	},
	[]string{"action", "result"},
)

// RateLimitRejectionsTotal counts requests rejected by the rate limiter.
// Label:
//   - tier: "short", "medium" or "long"
var RateLimitRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limit_rejections_total",
		Help:      "Total number of requests rejected per rate-limit tier.",
	},
	[]string{"tier"},
)

// APILogFailuresTotal counts usage-log writes that failed. Failures are
// operational signal only and never surface to the caller.
var APILogFailuresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "api_log_failures_total",
		Help:      "Total number of API usage log writes that failed.",
	},
)
