package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsRegistered(t *testing.T) {
	t.Parallel()

	// Verify all metrics are non-nil (registered via promauto on package init).
	assert.NotNil(t, RequestsTotal)
	assert.NotNil(t, RequestDuration)
	assert.NotNil(t, TransportFailuresTotal)
	assert.NotNil(t, ParseFailuresTotal)
	assert.NotNil(t, ExtractionFallbacksTotal)
	assert.NotNil(t, RateLimitWaitDuration)
	assert.NotNil(t, RateLimitRejectionsTotal)
	assert.NotNil(t, DailyUsage)
	assert.NotNil(t, HTTPRequestDuration)
	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, BatchRequestsTotal)
}

func TestRequestsTotal_Labels(t *testing.T) {
	t.Parallel()

	c := RequestsTotal.WithLabelValues("GET", "/metrics-test/route", "2xx")
	before := testutil.ToFloat64(c)
	c.Inc()
	assert.InDelta(t, before+1, testutil.ToFloat64(c), 0.001)
}
