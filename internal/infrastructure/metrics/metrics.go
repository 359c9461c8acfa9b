// Package metrics exposes Prometheus collectors for the admin API.
package metrics

import (
	"database/sql"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	FieldViolationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "product_field_violations_total",
			Help: "Rejected product submissions by field and violation kind",
		},
		[]string{"field", "kind"},
	)
)

// ObserveFieldViolation counts one rejected product field.
func ObserveFieldViolation(field, kind string) {
	FieldViolationsTotal.WithLabelValues(field, kind).Inc()
}

// RegisterDBStats exposes database/sql pool statistics for the product store.
func RegisterDBStats(db *sql.DB) error {
	return prometheus.Register(collectors.NewDBStatsCollector(db, "products"))
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
