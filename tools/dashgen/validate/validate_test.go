package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/trendyol-seller/tools/dashgen/rules"
	"github.com/donaldgifford/trendyol-seller/tools/dashgen/validate"
)

var known = map[string]bool{
	"requests_total":           true,
	"request_duration_seconds": true,
}

func TestExpr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		expr     string
		errors   int
		warnings int
	}{
		{name: "known counter", expr: `sum(rate(requests_total[5m]))`},
		{
			name: "histogram bucket suffix",
			expr: `histogram_quantile(0.95, sum(rate(request_duration_seconds_bucket[5m])) by (le))`,
		},
		{name: "unknown metric", expr: `rate(nope_total[5m])`, warnings: 1},
		{name: "repeated unknown reported once", expr: `nope_total / nope_total`, warnings: 1},
		{name: "syntax error", expr: `sum(rate(requests_total[5m])`, errors: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := validate.Expr("test", tt.expr, known)
			assert.Len(t, res.Errors, tt.errors, "errors: %v", res.Errors)
			assert.Len(t, res.Warnings, tt.warnings, "warnings: %v", res.Warnings)
			assert.Equal(t, tt.errors == 0, res.Ok())
		})
	}
}

func TestDashboard_WalksNestedPanels(t *testing.T) {
	t.Parallel()

	dash := map[string]any{
		"title": "Test",
		"panels": []any{
			map[string]any{
				"type":  "row",
				"title": "Row",
				"panels": []any{
					map[string]any{
						"title":   "Good",
						"targets": []any{map[string]any{"refId": "A", "expr": "requests_total"}},
					},
					map[string]any{
						"title":   "Unknown",
						"targets": []any{map[string]any{"refId": "A", "expr": "missing_total"}},
					},
					map[string]any{
						"title":   "Broken",
						"targets": []any{map[string]any{"refId": "B", "expr": "sum("}},
					},
				},
			},
		},
	}

	res := validate.Dashboard(dash, known)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], `panel "Test/Row/Broken" target B`)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "missing_total")
}

func TestRules_RecordsBecomeKnown(t *testing.T) {
	t.Parallel()

	cr := rules.PrometheusRule{
		Spec: rules.PrometheusRuleSpec{
			Groups: []rules.RuleGroup{{
				Name: "g",
				Rules: []rules.Rule{
					{Record: "job:requests:rate5m", Expr: `sum(rate(requests_total[5m]))`},
					{Alert: "TooMany", Expr: `job:requests:rate5m > 10`},
					{Expr: `requests_total`},
				},
			}},
		},
	}

	res := validate.Rules(cr, known)
	assert.Empty(t, res.Warnings)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "neither record nor alert")
}
