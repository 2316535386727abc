// Package metrics defines all custom Prometheus metrics for the careers
// API. It is the single source of truth for metric names, labels, and help
// strings; promauto registers everything with the default registry at
// package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "careers"

// UsersCreatedTotal counts successfully created user accounts.
// Label:
//   - is_admin: "true" when the new account carries the admin flag
var UsersCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of user accounts created.",
	},
	[]string{"is_admin"},
)

// UsersDeletedTotal counts deleted user accounts.
var UsersDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_deleted_total",
		Help:      "Total number of user accounts deleted.",
	},
)

// ApplicationsTotal counts job applications recorded successfully.
var ApplicationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "applications_total",
		Help:      "Total number of job applications recorded.",
	},
)

// AuthzDenialsTotal counts authorization denials by the tier that rejected
// the request.
// Label:
//   - tier: "admin" or "self_or_admin"
var AuthzDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authz_denials_total",
		Help:      "Total number of requests denied by an access tier check.",
	},
	[]string{"tier"},
)

// LoginsTotal counts token requests by outcome.
// Label:
//   - result: "ok" or "failed"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)
