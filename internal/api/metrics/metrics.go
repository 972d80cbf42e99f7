// Package metrics defines and registers all custom Prometheus metrics for the
// hospital management API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at init via promauto;
// the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hms"

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "invalid_credentials", or "throttled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts successful account registrations by role.
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of successful registrations, by role.",
	},
	[]string{"role"},
)

// TokenFailuresTotal counts rejected bearer tokens.
// Label:
//   - reason: "missing", "malformed", "invalid_signature", or "expired"
var TokenFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_failures_total",
		Help:      "Total number of bearer tokens rejected during validation.",
	},
	[]string{"reason"},
)

// AuthzDenialsTotal counts policy denials.
// Labels:
//   - operation: the protected operation identifier (e.g. "patient.delete")
//   - role: the role that was refused
var AuthzDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authz_denials_total",
		Help:      "Total number of operations denied by the access policy.",
	},
	[]string{"operation", "role"},
)

// ChatbotQueriesTotal counts chatbot queries by resolved intent.
var ChatbotQueriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "chatbot_queries_total",
		Help:      "Total number of chatbot queries, by parsed intent.",
	},
	[]string{"intent"},
)

// ChatbotQueryDuration measures intent execution time end-to-end.
var ChatbotQueryDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "chatbot_query_duration_seconds",
		Help:      "Duration of chatbot query execution from parse to response.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"intent"},
)
