// Package metrics defines the client-side Prometheus metrics for the MeetPoint
// gateway. It is the single source of truth for metric names, labels, and help
// strings; metrics register with the default registry at import time.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "meetpoint_client"

// RequestsTotal counts completed gateway requests.
// Labels:
//   - method: HTTP method
//   - status: HTTP status code, or "0" when the request never completed
var RequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_total",
		Help:      "Total number of API requests issued, by method and status.",
	},
	[]string{"method", "status"},
)

// RequestDuration measures wall time per request from send to body decode.
var RequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "request_duration_seconds",
		Help:      "Duration of API requests, by method.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method"},
)
