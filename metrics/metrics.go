package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   *prometheus.CounterVec
	HttpRequestDuration *prometheus.HistogramVec

	// CSV import metrics
	ImportRowsTotal         *prometheus.CounterVec
	ImportInvitationsMinted prometheus.Counter
)

// Init registers all metrics under the given name prefix.
func Init(prefix string) {
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	ImportRowsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_import_rows_total",
			Help: "Total number of processed CSV import rows",
		},
		[]string{"outcome"}, // imported, error, skipped
	)

	ImportInvitationsMinted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_import_invitations_created_total",
			Help: "Total number of invitations created by CSV imports",
		},
	)
}

// CountImportRow is safe to call before Init (e.g. in tests).
func CountImportRow(outcome string) {
	if ImportRowsTotal != nil {
		ImportRowsTotal.WithLabelValues(outcome).Inc()
	}
}

// CountImportInvitation is safe to call before Init.
func CountImportInvitation() {
	if ImportInvitationsMinted != nil {
		ImportInvitationsMinted.Inc()
	}
}
