package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Event kinds used as label values.
const (
	KindAnalytics = "analytics"
	KindFeedback  = "feedback"
)

var (
	EventsSaved = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "adfriend_events_saved_total",
		Help: "Total number of events persisted",
	}, []string{"kind"})

	// operation is "insert" or "list".
	EventsFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "adfriend_events_failed_total",
		Help: "Total number of failed store operations",
	}, []string{"kind", "operation"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "adfriend_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "endpoint", "status"})
)
