package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// MockRequestRate returns a timeseries panel showing mock API requests by
// route pattern.
func MockRequestRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Mock API Requests").
		Description("Requests per second served by the local mock API").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(
			`sum(rate(trendyol_mock_http_requests_total[5m])) by (path)`,
			"{{path}}", "A",
		)).
		Unit("reqps").
		FillOpacity(10).
		LineWidth(2).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// MockLatency returns a timeseries panel showing the mock API p95 latency.
func MockLatency() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Mock API p95").
		Description("95th percentile mock API response time").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(Quantile(0.95, "trendyol_mock_http_request_duration_seconds"), "p95", "A")).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// BatchRequests returns a stat panel showing batch ids issued by the mock
// API in the past hour.
func BatchRequests() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Batch Requests (1h)").
		Description("Bulk product requests accepted by the mock API in the last hour").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`increase(trendyol_mock_batch_requests_total[1h])`, "", "A")).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemeThresholds()).
		GraphMode(common.BigValueGraphModeArea)
}
