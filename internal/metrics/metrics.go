// Package metrics defines Prometheus metrics for the Trendyol client and the
// local mock API.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "trendyol"

// Client request metrics. The route label is the unresolved path template
// so cardinality stays bounded.
var (
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "client_requests_total",
		Help:      "Total number of Trendyol API requests by outcome.",
	}, []string{"method", "route", "status"})

	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "client_request_duration_seconds",
		Help:      "Duration of Trendyol API requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	TransportFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "client_transport_failures_total",
		Help:      "Total number of requests that never produced an HTTP status.",
	}, []string{"reason"})

	ParseFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "client_parse_failures_total",
		Help:      "Total number of response bodies that were not valid JSON.",
	})

	ExtractionFallbacksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "client_extraction_fallbacks_total",
		Help:      "Total number of legacy responses with an unrecognized wrapper shape.",
	}, []string{"route"})
)

// Rate limiter metrics.
var (
	RateLimitWaitDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "client_rate_limit_wait_seconds",
		Help:      "Time spent waiting on the client-side rate limiter.",
		Buckets:   []float64{.001, .005, .01, .05, .1, .25, .5, 1, 2.5},
	})

	RateLimitRejectionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "client_rate_limit_rejections_total",
		Help:      "Total number of requests abandoned while waiting on the rate limiter.",
	})

	DailyUsage = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "client_daily_usage",
		Help:      "Current request count within the rolling 24-hour window.",
	})
)

// Mock API HTTP metrics.
var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "mock_http_request_duration_seconds",
		Help:      "Duration of mock API HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mock_http_requests_total",
		Help:      "Total number of mock API HTTP requests.",
	}, []string{"method", "path", "status"})

	BatchRequestsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mock_batch_requests_total",
		Help:      "Total number of batch request ids issued by the mock API.",
	})
)
