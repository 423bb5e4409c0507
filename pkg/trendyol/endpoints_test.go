package trendyol_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/donaldgifford/trendyol-seller/pkg/trendyol"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		template string
		params   trendyol.Params
		want     string
	}{
		{
			name:     "seller scoped",
			template: trendyol.RouteProducts,
			params:   trendyol.Params{"sellerId": "12345"},
			want:     "/integration/product/sellers/12345/products",
		},
		{
			name:     "multiple placeholders",
			template: trendyol.RouteCategoryAttributeValuesV2,
			params:   trendyol.Params{"categoryId": int64(411), "attributeId": 338},
			want:     "/integration/product/categories/411/attributes/338/values",
		},
		{
			name:     "missing name left in place",
			template: trendyol.RouteQuestionAnswer,
			params:   trendyol.Params{"sellerId": "1"},
			want:     "/integration/qna/sellers/1/questions/{questionId}/answers",
		},
		{
			name:     "no placeholders",
			template: trendyol.RouteBrands,
			want:     "/integration/product/brands",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, trendyol.Resolve(tt.template, tt.params))
		})
	}
}

func TestEnvironment_BaseURL(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "https://apigw.trendyol.com", trendyol.Production.BaseURL())
	assert.Equal(t, "https://stageapigw.trendyol.com", trendyol.Sandbox.BaseURL())
	assert.Equal(t, "https://apigw.trendyol.com", trendyol.Environment("").BaseURL())
}
