// Package metrics defines the gateway's custom Prometheus metrics. It is the
// single source of truth for metric names, labels, and help strings; metrics
// register with the default registry at package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "potato"

// BackendRequestDuration measures one GraphQL round trip to the backend.
// Label:
//   - operation: the named query/mutation (e.g. "currentUser", "deleteAsset")
var BackendRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "backend_request_duration_seconds",
		Help:      "Duration of GraphQL calls to the backend, by operation.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"operation"},
)

// BackendErrorsTotal counts failed backend calls.
// Labels:
//   - operation: the named query/mutation
//   - kind: "api" for structured GraphQL errors, "transport" for network or
//     decoding failures
var BackendErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "backend_errors_total",
		Help:      "Total number of failed backend calls, by operation and kind.",
	},
	[]string{"operation", "kind"},
)

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "failure", or "throttled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RoleDenialsTotal counts role-gate denials that redirected the request.
// Label:
//   - role: the first required role of the gated route
var RoleDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "role_denials_total",
		Help:      "Total number of requests redirected by the role gate.",
	},
	[]string{"role"},
)

// FlashMessagesTotal counts flash messages staged for delivery.
// Label:
//   - type: "success" or "error"
var FlashMessagesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "flash_messages_total",
		Help:      "Total number of flash messages staged, by type.",
	},
	[]string{"type"},
)
