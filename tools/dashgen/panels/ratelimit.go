package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// RateLimitWait returns a timeseries panel showing how long requests wait
// on the client-side limiter.
func RateLimitWait() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Limiter Wait").
		Description("Time requests spend waiting on the client rate limiter").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(Quantile(0.50, "trendyol_client_rate_limit_wait_seconds"), "p50", "A")).
		WithTarget(PromQuery(Quantile(0.95, "trendyol_client_rate_limit_wait_seconds"), "p95", "B")).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// DailyUsage returns a timeseries panel showing the rolling 24h request
// count of the client rate limiter.
func DailyUsage() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Daily Usage").
		Description("Requests counted in the rolling 24h window").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`trendyol_client_daily_usage`, "{{instance}}", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// RateLimitRejections returns a stat panel showing requests abandoned while
// waiting on the limiter in the past 24 hours.
func RateLimitRejections() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Limiter Rejections (24h)").
		Description("Requests whose context ended while waiting on the rate limiter").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`increase(trendyol_client_rate_limit_rejections_total[24h])`, "", "A")).
		Thresholds(ThresholdsGreenYellowRed(1, 10)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}
