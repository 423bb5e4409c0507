package trendyol_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/donaldgifford/trendyol-seller/pkg/trendyol"
)

func TestExtractContent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		raw    string
		want   []trendyol.Brand
		wantOK bool
	}{
		{
			name:   "bare array",
			raw:    `[{"id":1,"name":"A"}]`,
			want:   []trendyol.Brand{{ID: 1, Name: "A"}},
			wantOK: true,
		},
		{
			name:   "content key",
			raw:    `{"content":[{"id":2,"name":"B"}],"page":0,"totalPages":1}`,
			want:   []trendyol.Brand{{ID: 2, Name: "B"}},
			wantOK: true,
		},
		{
			name:   "products key",
			raw:    `{"products":[{"id":3,"name":"C"}]}`,
			want:   []trendyol.Brand{{ID: 3, Name: "C"}},
			wantOK: true,
		},
		{
			name:   "brands key",
			raw:    `{"brands":[{"id":4,"name":"D"}]}`,
			want:   []trendyol.Brand{{ID: 4, Name: "D"}},
			wantOK: true,
		},
		{
			name:   "categories key",
			raw:    `{"categories":[{"id":5,"name":"E"}]}`,
			want:   []trendyol.Brand{{ID: 5, Name: "E"}},
			wantOK: true,
		},
		{
			name:   "questions key",
			raw:    `{"questions":[{"id":6,"name":"F"}]}`,
			want:   []trendyol.Brand{{ID: 6, Name: "F"}},
			wantOK: true,
		},
		{
			name:   "first key in order wins",
			raw:    `{"brands":[{"id":8}],"content":[{"id":7}]}`,
			want:   []trendyol.Brand{{ID: 7}},
			wantOK: true,
		},
		{
			name:   "non-array key skipped",
			raw:    `{"content":{"id":1},"brands":[{"id":9}]}`,
			want:   []trendyol.Brand{{ID: 9}},
			wantOK: true,
		},
		{
			name:   "empty array under key",
			raw:    `{"content":[]}`,
			want:   []trendyol.Brand{},
			wantOK: true,
		},
		{
			name: "unrecognized wrapper",
			raw:  `{"items":[{"id":1}]}`,
			want: []trendyol.Brand{},
		},
		{
			name: "scalar",
			raw:  `42`,
			want: []trendyol.Brand{},
		},
		{
			name: "null",
			raw:  `null`,
			want: []trendyol.Brand{},
		},
		{
			name: "empty",
			raw:  ``,
			want: []trendyol.Brand{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := trendyol.ExtractContent[trendyol.Brand](json.RawMessage(tt.raw))
			assert.Equal(t, tt.wantOK, ok)
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}
