// Package metrics defines and registers all custom Prometheus metrics for
// the daily report API. It is the single source of truth for metric names,
// labels, and help strings. Request-level metrics (latency, status codes)
// come from echoprometheus and are not duplicated here.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "salesreport"

// LoginsTotal counts credential exchanges.
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

// AuthDeniedTotal counts requests rejected by the access gate.
// Label:
//   - reason: "unauthenticated" (no/invalid/revoked session) or "forbidden"
//     (valid session, insufficient role)
var AuthDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_denied_total",
		Help:      "Total number of requests denied by authentication or role checks.",
	},
	[]string{"reason"},
)

// GuardRedirectsTotal counts browser navigations redirected by the route guard.
// Label:
//   - target: redirect destination path (e.g. "/login", "/reports")
var GuardRedirectsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_redirects_total",
		Help:      "Total number of route guard redirects, by destination.",
	},
	[]string{"target"},
)

// ReportsCreatedTotal counts successfully created daily reports.
var ReportsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reports_created_total",
		Help:      "Total number of daily reports created.",
	},
)

// WriteConflictsTotal counts uniqueness violations surfaced to clients.
// Label:
//   - resource: "user" (duplicate email) or "report" (duplicate owner+date)
var WriteConflictsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "write_conflicts_total",
		Help:      "Total number of create/update attempts rejected as duplicates.",
	},
	[]string{"resource"},
)
