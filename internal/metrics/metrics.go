package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Generation metrics
	RecordsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookgen_records_generated_total",
			Help: "Total number of generated records by outcome",
		},
		[]string{"outcome"}, // "ok", "placeholder"
	)

	BatchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "bookgen_batch_duration_seconds",
			Help:    "Duration of page generation in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	BatchesFailed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bookgen_batches_failed_total",
			Help: "Total number of pages that failed as a whole",
		},
	)

	// HTTP metrics
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookgen_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bookgen_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)

// ObserveBatch records a generated page of records, of which placeholders
// failed individually.
func ObserveBatch(records, placeholders int, d time.Duration) {
	BatchDuration.Observe(d.Seconds())
	RecordsGenerated.WithLabelValues("placeholder").Add(float64(placeholders))
	RecordsGenerated.WithLabelValues("ok").Add(float64(records - placeholders))
}

// ObserveBatchFailure records a page that failed as a whole.
func ObserveBatchFailure(d time.Duration) {
	BatchDuration.Observe(d.Seconds())
	BatchesFailed.Inc()
}

// ObserveRequest records one served HTTP request.
func ObserveRequest(method, path string, status int, d time.Duration) {
	HTTPRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(d.Seconds())
}
