// Package metrics defines the custom Prometheus metrics for the technotes
// API. It is the single source of truth for metric names, labels, and help
// strings. Metrics are registered with the default registry on import via
// promauto; the /metrics endpoint is served by the echoprometheus handler.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "technotes"

// UsersCreatedTotal counts successfully created users.
var UsersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of users successfully created.",
	},
)

// UsersDeletedTotal counts successfully deleted users.
var UsersDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_deleted_total",
		Help:      "Total number of users successfully deleted.",
	},
)

// NotesCreatedTotal counts successfully created notes.
var NotesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notes_created_total",
		Help:      "Total number of notes successfully created.",
	},
)

// NotesDeletedTotal counts successfully deleted notes.
var NotesDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notes_deleted_total",
		Help:      "Total number of notes successfully deleted.",
	},
)

// RequestsRejectedTotal counts requests rejected before any write.
// Labels:
//   - resource: "users" or "notes"
//   - reason: "validation", "conflict", "not_found", "empty", "guard"
var RequestsRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_rejected_total",
		Help:      "Total number of rejected requests, by resource and reason.",
	},
	[]string{"resource", "reason"},
)

// LoginsTotal counts login attempts by outcome.
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
