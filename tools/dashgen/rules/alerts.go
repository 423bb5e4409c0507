package rules

// AlertRules returns a PrometheusRule CR containing alert rules for
// trendyol client health.
func AlertRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "trendyol-alerts",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "trendyol-alerts",
					Rules: []Rule{
						{
							Alert: "TrendyolClientHighErrorRate",
							Expr:  `trendyol:client_errors:rate5m / trendyol:client_requests:rate5m > 0.05`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "High Trendyol API error rate",
								"description": "More than 5% of Trendyol API requests have failed over the last 5 minutes.",
							},
						},
						{
							Alert: "TrendyolTransportFailures",
							Expr:  `sum(trendyol:client_transport_failures:rate5m{reason=~"timeout|network"}) > 0.1`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Trendyol API is unreachable",
								"description": "Requests to the Trendyol API are timing out or failing at the network layer.",
							},
						},
						{
							Alert: "TrendyolParseFailures",
							Expr:  `increase(trendyol_client_parse_failures_total[15m]) > 0`,
							For:   "0m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Trendyol API returned non-JSON bodies",
								"description": "One or more responses could not be decoded as JSON in the last 15 minutes.",
							},
						},
						{
							Alert: "TrendyolUnrecognizedListShape",
							Expr:  `sum(increase(trendyol_client_extraction_fallbacks_total[1h])) by (route) > 0`,
							For:   "0m",
							Labels: map[string]string{
								"severity": "info",
							},
							Annotations: map[string]string{
								"summary":     "Trendyol list response shape changed",
								"description": "A legacy list endpoint returned a wrapper key the client does not recognize.",
							},
						},
						{
							Alert: "TrendyolRateLimitRejections",
							Expr:  `increase(trendyol_client_rate_limit_rejections_total[5m]) > 0`,
							For:   "1m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Requests abandoned on the rate limiter",
								"description": "Callers are canceling requests while they wait for rate limiter tokens.",
							},
						},
						{
							Alert: "TrendyolSlowRequests",
							Expr:  `trendyol:client_latency:p95_5m > 5`,
							For:   "10m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Trendyol API latency is elevated",
								"description": "The p95 Trendyol API request duration has been above 5s for 10 minutes.",
							},
						},
					},
				},
			},
		},
	}
}
