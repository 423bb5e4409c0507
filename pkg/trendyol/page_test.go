package trendyol_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/donaldgifford/trendyol-seller/pkg/trendyol"
)

func TestPage_Next(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		page   trendyol.Page[int]
		want   trendyol.Continuation
		wantOK bool
	}{
		{
			name:   "next offset page",
			page:   trendyol.Page[int]{Page: 0, Size: 50, TotalPages: 3},
			want:   trendyol.Continuation{Page: 1},
			wantOK: true,
		},
		{
			name: "last page",
			page: trendyol.Page[int]{Page: 2, Size: 50, TotalPages: 3},
		},
		{
			name: "empty result",
			page: trendyol.Page[int]{Page: 0, Size: 50, TotalPages: 0},
		},
		{
			name:   "cursor wins over page increment",
			page:   trendyol.Page[int]{Page: 0, Size: 50, TotalPages: 3, NextPageToken: "abc"},
			want:   trendyol.Continuation{NextPageToken: "abc"},
			wantOK: true,
		},
		{
			name:   "cursor on last offset page",
			page:   trendyol.Page[int]{Page: 99, Size: 100, TotalPages: 250, NextPageToken: "xyz"},
			want:   trendyol.Continuation{NextPageToken: "xyz"},
			wantOK: true,
		},
		{
			name: "offset ceiling reached without cursor",
			page: trendyol.Page[int]{Page: 99, Size: 100, TotalPages: 250},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := tt.page.Next()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, tt.page.HasMore())
		})
	}
}

func TestProductFilterV2_WithContinuation(t *testing.T) {
	t.Parallel()

	base := trendyol.ProductFilterV2{Page: ptr(0), Size: ptr(50), NextPageToken: "old"}

	byPage := base.WithContinuation(trendyol.Continuation{Page: 4})
	assert.Equal(t, 4, *byPage.Page)
	assert.Empty(t, byPage.NextPageToken)

	byCursor := base.WithContinuation(trendyol.Continuation{NextPageToken: "abc"})
	assert.Equal(t, "abc", byCursor.NextPageToken)
	assert.Equal(t, 0, *byCursor.Page)

	assert.Equal(t, "old", base.NextPageToken)
}
