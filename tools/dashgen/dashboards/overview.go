// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/donaldgifford/trendyol-seller/tools/dashgen/panels"
)

// BuildOverview constructs the Trendyol client dashboard.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("Trendyol Client").
		Uid("trendyol-client").
		Tags([]string{"trendyol"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.RequestRateStat()).
		WithPanel(panels.SuccessRatioStat()).
		WithPanel(panels.LatencyStat()).
		WithPanel(panels.DailyUsageStat()))

	b.WithRow(dashboard.NewRowBuilder("Client").
		WithPanel(panels.RequestRateByRoute()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.StatusClasses()).
		WithPanel(panels.TransportFailures()))

	b.WithRow(dashboard.NewRowBuilder("Response Shapes").
		WithPanel(panels.ParseFailures()).
		WithPanel(panels.ExtractionFallbacks()))

	b.WithRow(dashboard.NewRowBuilder("Rate Limiter").
		WithPanel(panels.RateLimitWait()).
		WithPanel(panels.DailyUsage()).
		WithPanel(panels.RateLimitRejections()))

	b.WithRow(dashboard.NewRowBuilder("Mock API").
		WithPanel(panels.MockRequestRate()).
		WithPanel(panels.MockLatency()).
		WithPanel(panels.BatchRequests()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
