// Package metrics defines and registers all custom Prometheus metrics for the
// auth service. It is the single source of truth for metric names, labels,
// and help strings; metrics register with the default registry at import time
// via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "auth"

// SignupsTotal counts signup attempts.
// Label:
//   - result: "created", "duplicate", or "error"
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of signup attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// TokensIssuedTotal counts bearer tokens minted after successful logins.
var TokensIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of bearer tokens issued.",
	},
)

// AuthorizationFailuresTotal counts rejected protected requests. The reason
// label carries the fine-grained failure kind that the client-facing response
// deliberately hides (e.g. "expired", "signature_invalid", "missing_header").
var AuthorizationFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authorization_failures_total",
		Help:      "Total number of rejected protected requests, by internal reason.",
	},
	[]string{"reason"},
)
