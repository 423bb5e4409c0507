package trendyol_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/trendyol-seller/pkg/trendyol"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		outcome     trendyol.Outcome
		wantSuccess bool
		wantStatus  int
		wantError   string
		wantData    trendyol.BatchRequest
		wantRaw     string
	}{
		{
			name:        "2xx with body",
			outcome:     trendyol.Outcome{StatusCode: 200, Body: []byte(`{"batchRequestId":"batch-001"}`)},
			wantSuccess: true,
			wantStatus:  200,
			wantData:    trendyol.BatchRequest{BatchRequestID: "batch-001"},
		},
		{
			name:        "2xx empty body",
			outcome:     trendyol.Outcome{StatusCode: 204},
			wantSuccess: true,
			wantStatus:  204,
		},
		{
			name:       "message field",
			outcome:    trendyol.Outcome{StatusCode: 401, Body: []byte(`{"message":"Invalid credentials"}`)},
			wantStatus: 401,
			wantError:  "Invalid credentials",
			wantRaw:    `{"message":"Invalid credentials"}`,
		},
		{
			name:       "message preferred over error",
			outcome:    trendyol.Outcome{StatusCode: 400, Body: []byte(`{"error":"Bad","message":"Worse"}`)},
			wantStatus: 400,
			wantError:  "Worse",
			wantRaw:    `{"error":"Bad","message":"Worse"}`,
		},
		{
			name:       "error field",
			outcome:    trendyol.Outcome{StatusCode: 404, Body: []byte(`{"error":"Not Found"}`)},
			wantStatus: 404,
			wantError:  "Not Found",
			wantRaw:    `{"error":"Not Found"}`,
		},
		{
			name:       "empty message falls through to error",
			outcome:    trendyol.Outcome{StatusCode: 400, Body: []byte(`{"message":"","error":"fallback"}`)},
			wantStatus: 400,
			wantError:  "fallback",
			wantRaw:    `{"message":"","error":"fallback"}`,
		},
		{
			name:       "non-string error rendered as JSON",
			outcome:    trendyol.Outcome{StatusCode: 422, Body: []byte(`{"error": {"code": 7}}`)},
			wantStatus: 422,
			wantError:  `{"code":7}`,
			wantRaw:    `{"error": {"code": 7}}`,
		},
		{
			name:       "no message fields",
			outcome:    trendyol.Outcome{StatusCode: 503, Body: []byte(`{"errors":[{"key":"x"}]}`)},
			wantStatus: 503,
			wantError:  "HTTP 503",
			wantRaw:    `{"errors":[{"key":"x"}]}`,
		},
		{
			name:       "array failure body",
			outcome:    trendyol.Outcome{StatusCode: 500, Body: []byte(`[1,2]`)},
			wantStatus: 500,
			wantError:  "HTTP 500",
			wantRaw:    `[1,2]`,
		},
		{
			name:       "non-2xx empty body",
			outcome:    trendyol.Outcome{StatusCode: 502},
			wantStatus: 502,
			wantError:  "HTTP 502",
		},
		{
			name:       "invalid JSON keeps status",
			outcome:    trendyol.Outcome{StatusCode: 502, Body: []byte("<html>Bad Gateway</html>")},
			wantStatus: 502,
			wantError:  "Parse error: <html>Bad Gateway</html>",
		},
		{
			name:       "invalid JSON on 2xx",
			outcome:    trendyol.Outcome{StatusCode: 200, Body: []byte("not json")},
			wantStatus: 200,
			wantError:  "Parse error: not json",
		},
		{
			name:       "invalid JSON without status defaults to 500",
			outcome:    trendyol.Outcome{Body: []byte("oops")},
			wantStatus: 500,
			wantError:  "Parse error: oops",
		},
		{
			name:       "transport failure",
			outcome:    trendyol.Outcome{Err: errors.New("dial tcp: connection refused")},
			wantStatus: 0,
			wantError:  "dial tcp: connection refused",
		},
		{
			name:       "body of wrong shape on 2xx",
			outcome:    trendyol.Outcome{StatusCode: 200, Body: []byte(`[1,2,3]`)},
			wantStatus: 200,
			wantError:  "Parse error: [1,2,3]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := trendyol.Normalize[trendyol.BatchRequest](tt.outcome)
			assert.Equal(t, tt.wantSuccess, got.Success)
			assert.Equal(t, tt.wantStatus, got.StatusCode)
			assert.Equal(t, tt.wantError, got.Error)
			assert.Equal(t, tt.wantData, got.Data)
			if tt.wantRaw == "" {
				assert.Empty(t, got.Raw)
			} else {
				assert.JSONEq(t, tt.wantRaw, string(got.Raw))
			}

			if got.Success {
				assert.Empty(t, got.Error)
				require.NoError(t, got.Err())
			} else {
				assert.NotEmpty(t, got.Error)
				require.Error(t, got.Err())
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	t.Parallel()

	outcomes := []trendyol.Outcome{
		{StatusCode: 200, Body: []byte(`{"content":[{"id":1}],"page":0,"size":1}`)},
		{StatusCode: 401, Body: []byte(`{"message":"Invalid credentials"}`)},
		{StatusCode: 0, Err: errors.New("boom")},
		{StatusCode: 200, Body: []byte(`{{`)},
	}

	for _, out := range outcomes {
		a := trendyol.Normalize[json.RawMessage](out)
		b := trendyol.Normalize[json.RawMessage](out)
		assert.Equal(t, a, b)
	}
}

func TestResponse_Err(t *testing.T) {
	t.Parallel()

	err := trendyol.Response[any]{StatusCode: 401, Error: "Invalid credentials"}.Err()
	var respErr *trendyol.ResponseError
	require.ErrorAs(t, err, &respErr)
	assert.Equal(t, 401, respErr.StatusCode)
	assert.Equal(t, "trendyol: status 401: Invalid credentials", err.Error())

	err = trendyol.Response[any]{Error: "request timeout after 30000ms"}.Err()
	assert.Equal(t, "trendyol: request timeout after 30000ms", err.Error())
}

func TestResponse_JSON(t *testing.T) {
	t.Parallel()

	resp := trendyol.Normalize[trendyol.BatchRequest](trendyol.Outcome{
		StatusCode: 200,
		Body:       []byte(`{"batchRequestId":"batch-001"}`),
	})
	b, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"statusCode":200,"data":{"batchRequestId":"batch-001"}}`, string(b))
}
