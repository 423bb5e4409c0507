package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

const clientDuration = "trendyol_client_request_duration_seconds"

// RequestRateByRoute returns a timeseries panel showing the request rate of
// each route template.
func RequestRateByRoute() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Request Rate by Route").
		Description("Trendyol API requests per second by route template").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`trendyol:client_requests_by_route:rate5m`, "{{route}}", "A")).
		Unit("reqps").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// LatencyPercentiles returns a timeseries panel showing p50, p95 and p99
// client request latencies.
func LatencyPercentiles() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Latency Percentiles").
		Description("Trendyol API request duration percentiles").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(Quantile(0.50, clientDuration), "p50", "A")).
		WithTarget(PromQuery(Quantile(0.95, clientDuration), "p95", "B")).
		WithTarget(PromQuery(Quantile(0.99, clientDuration), "p99", "C")).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// StatusClasses returns a timeseries panel showing responses by status
// class. Transport failures are reported as "error".
func StatusClasses() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Responses by Status").
		Description("Trendyol API responses per second by status class").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`sum(rate(trendyol_client_requests_total[5m])) by (status)`,
			"{{status}}", "A",
		)).
		Unit("reqps").
		FillOpacity(10).
		LineWidth(2).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// TransportFailures returns a timeseries panel showing requests that never
// produced an HTTP status, by reason.
func TransportFailures() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Transport Failures").
		Description("Timeouts, network errors and rate limiter cancellations per second").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`trendyol:client_transport_failures:rate5m`, "{{reason}}", "A")).
		FillOpacity(10).
		LineWidth(2).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenYellowRed(0.01, 0.1)).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// ParseFailures returns a stat panel showing bodies that were not valid
// JSON in the past 24 hours.
func ParseFailures() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Parse Failures (24h)").
		Description("Responses whose body was not valid JSON in the last 24 hours").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`increase(trendyol_client_parse_failures_total[24h])`, "", "A")).
		Thresholds(ThresholdsGreenYellowRed(1, 10)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}

// ExtractionFallbacks returns a timeseries panel showing legacy list
// responses with an unrecognized wrapper shape, by route.
func ExtractionFallbacks() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Unrecognized List Shapes").
		Description("Legacy list responses that matched no known wrapper key").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`sum(increase(trendyol_client_extraction_fallbacks_total[1h])) by (route)`,
			"{{route}}", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(1, 10)).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleBars)
}
