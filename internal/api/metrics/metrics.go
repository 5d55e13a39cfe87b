// Package metrics defines all custom Prometheus metrics for the notes API.
// It is the single source of truth for metric names, labels, and help
// strings. Metrics register themselves with the default registry at init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "notes"

// RegistrationsTotal counts successfully created accounts.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of successful user registrations.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AuthRejectionsTotal counts requests rejected by the auth middleware.
// Label:
//   - reason: "no_token" or "invalid_token"
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected by the auth middleware.",
	},
	[]string{"reason"},
)

// NoteOperationsTotal counts successful note mutations.
// Label:
//   - operation: "create", "update", or "delete"
var NoteOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "note_operations_total",
		Help:      "Total number of successful note operations, by operation.",
	},
	[]string{"operation"},
)

// RateLimitedTotal counts requests rejected by the rate limiter.
var RateLimitedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limited_total",
		Help:      "Total number of requests rejected with 429.",
	},
)
