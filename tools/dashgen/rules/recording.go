package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "trendyol-recording-rules",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "trendyol-recording",
					Rules: []Rule{
						{
							Record: "trendyol:client_requests:rate5m",
							Expr:   `sum(rate(trendyol_client_requests_total[5m]))`,
						},
						{
							Record: "trendyol:client_errors:rate5m",
							Expr:   `sum(rate(trendyol_client_requests_total{status!="2xx"}[5m]))`,
						},
						{
							Record: "trendyol:client_requests_by_route:rate5m",
							Expr:   `sum(rate(trendyol_client_requests_total[5m])) by (route)`,
						},
						{
							Record: "trendyol:client_transport_failures:rate5m",
							Expr:   `sum(rate(trendyol_client_transport_failures_total[5m])) by (reason)`,
						},
						{
							Record: "trendyol:client_latency:p95_5m",
							Expr:   `histogram_quantile(0.95, sum(rate(trendyol_client_request_duration_seconds_bucket[5m])) by (le))`,
						},
						{
							Record: "trendyol:mock_http_requests:rate5m",
							Expr:   `sum(rate(trendyol_mock_http_requests_total[5m]))`,
						},
					},
				},
			},
		},
	}
}
