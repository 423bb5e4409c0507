package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
)

// RequestRateStat returns a stat panel showing the total client request
// rate.
func RequestRateStat() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Requests/s").
		Description("Trendyol API requests per second across all routes").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(`trendyol:client_requests:rate5m`, "", "A")).
		Unit("reqps").
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemeThresholds()).
		GraphMode(common.BigValueGraphModeArea)
}

// SuccessRatioStat returns a stat panel showing the share of requests that
// came back 2xx.
func SuccessRatioStat() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Success %").
		Description("Share of Trendyol API requests answered with a 2xx status").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(
			`(1 - trendyol:client_errors:rate5m / trendyol:client_requests:rate5m) * 100`,
			"", "A",
		)).
		Unit("percent").
		Thresholds(ThresholdsRedGreen(95)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone)
}

// LatencyStat returns a stat panel showing the p95 client latency.
func LatencyStat() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("p95 Latency").
		Description("95th percentile Trendyol API request duration").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(`trendyol:client_latency:p95_5m`, "", "A")).
		Unit("s").
		Thresholds(ThresholdsGreenYellowRed(2, 5)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone)
}

// DailyUsageStat returns a stat panel showing the requests counted in the
// rate limiter's rolling 24h window.
func DailyUsageStat() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Daily Usage").
		Description("Requests counted in the client rate limiter's 24h window").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(`max(trendyol_client_daily_usage)`, "", "A")).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemeThresholds()).
		GraphMode(common.BigValueGraphModeArea)
}
