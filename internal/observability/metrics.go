package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics contains all Prometheus metrics for the social data service.
// Counters and histograms are registered via promauto with the default
// Prometheus registry.
type Metrics struct {
	// EntitiesCreated counts successful create operations, labeled by entity type.
	EntitiesCreated *prometheus.CounterVec

	// EntitiesUpdated counts successful update operations, labeled by entity type.
	EntitiesUpdated *prometheus.CounterVec

	// EntitiesDeleted counts delete operations, labeled by entity type.
	EntitiesDeleted *prometheus.CounterVec

	// ValidationFailures counts create/update inputs rejected by validation,
	// labeled by entity type.
	ValidationFailures *prometheus.CounterVec

	// ResolutionFailures counts failed relationship resolutions, labeled by
	// relationship (e.g. "post.owner") and failure reason.
	ResolutionFailures *prometheus.CounterVec

	// HTTPRequestDuration observes request duration in seconds, labeled by
	// method, route pattern, and status code.
	HTTPRequestDuration *prometheus.HistogramVec

	// RateLimitedRequests counts requests rejected by the rate limiter.
	RateLimitedRequests prometheus.Counter
}

// NewMetrics creates and registers all service metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		EntitiesCreated: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "socialdata",
			Name:      "entities_created_total",
			Help:      "Total entities created, by entity type.",
		}, []string{"entity"}),

		EntitiesUpdated: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "socialdata",
			Name:      "entities_updated_total",
			Help:      "Total entities updated, by entity type.",
		}, []string{"entity"}),

		EntitiesDeleted: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "socialdata",
			Name:      "entities_deleted_total",
			Help:      "Total entity deletions, by entity type.",
		}, []string{"entity"}),

		ValidationFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "socialdata",
			Name:      "validation_failures_total",
			Help:      "Total inputs rejected by validation, by entity type.",
		}, []string{"entity"}),

		ResolutionFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "socialdata",
			Name:      "resolution_failures_total",
			Help:      "Total failed relationship resolutions, by relationship and reason.",
		}, []string{"relationship", "reason"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "socialdata",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),

		RateLimitedRequests: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "socialdata",
			Name:      "rate_limited_requests_total",
			Help:      "Total requests rejected by the rate limiter.",
		}),
	}
}
