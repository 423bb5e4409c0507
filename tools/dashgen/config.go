package main

import "errors"

// KnownMetrics is the set of metric names exported by the trendyol client
// and mock API plus recording rule names referenced in dashboards and
// alerts.
var KnownMetrics = map[string]bool{
	// Client request metrics.
	"trendyol_client_requests_total":             true,
	"trendyol_client_request_duration_seconds":   true,
	"trendyol_client_transport_failures_total":   true,
	"trendyol_client_parse_failures_total":       true,
	"trendyol_client_extraction_fallbacks_total": true,

	// Rate limiter metrics.
	"trendyol_client_rate_limit_wait_seconds":     true,
	"trendyol_client_rate_limit_rejections_total": true,
	"trendyol_client_daily_usage":                 true,

	// Mock API metrics.
	"trendyol_mock_http_request_duration_seconds": true,
	"trendyol_mock_http_requests_total":           true,
	"trendyol_mock_batch_requests_total":          true,

	// Recording rules.
	"trendyol:client_requests:rate5m":           true,
	"trendyol:client_errors:rate5m":             true,
	"trendyol:client_requests_by_route:rate5m":  true,
	"trendyol:client_transport_failures:rate5m": true,
	"trendyol:client_latency:p95_5m":            true,
	"trendyol:mock_http_requests:rate5m":        true,

	// Standard Prometheus metrics.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
