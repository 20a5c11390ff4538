// Package metrics holds the Prometheus instruments of the engine. All
// instruments register with the default registry and are exposed by Handler.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "eightd"

var (
	// HTTPRequestsTotal counts answered requests.
	// Labels: method, route (chi route pattern), status.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by method, route pattern and status code.",
	}, []string{"method", "route", "status"})

	// HTTPRequestDuration measures handler latency.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by method and route pattern.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	// CausesDeleted counts cause rows removed, cascades included.
	CausesDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "causes_deleted_total",
		Help:      "Cause rows removed, including cascaded descendants.",
	})

	// CauseTreeNodes observes the size of every tree served.
	CauseTreeNodes = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "cause_tree_nodes",
		Help:      "Number of nodes in cause trees returned to clients.",
		Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250, 500},
	})
)

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
