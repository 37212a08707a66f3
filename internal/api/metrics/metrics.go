// Package metrics defines and registers the dev server's custom Prometheus
// metrics. It is the single source of truth for metric names, labels, and
// help strings; metrics register with the default registry at import time.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "meetpoint"

// LoginsTotal counts login attempts.
// Labels:
//   - kind: "customer" or "business"
//   - result: "ok" or "rejected"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by account kind and result.",
	},
	[]string{"kind", "result"},
)

// RegistrationsTotal counts account creations.
// Labels:
//   - kind: "customer" or "business"
//   - result: "ok" or "rejected"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by account kind and result.",
	},
	[]string{"kind", "result"},
)

// RatingsCreatedTotal counts successfully created ratings, by star score.
var RatingsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ratings_created_total",
		Help:      "Total number of ratings created, by star score.",
	},
	[]string{"score"},
)
