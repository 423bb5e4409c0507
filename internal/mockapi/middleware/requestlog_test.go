package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestLog(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		method        string
		target        string
		status        int
		providedReqID string
		wantLogFields []string
	}{
		{
			name:   "logs GET request with generated ID",
			method: http.MethodGet,
			target: "/integration/product/brands?size=1",
			status: http.StatusOK,
			wantLogFields: []string{
				"level=INFO",
				"method=GET",
				"path=/integration/product/brands",
				"query=size=1",
				"status=200",
				"duration_ms=",
				"request_id=",
			},
		},
		{
			name:   "logs unauthorized request at warn",
			method: http.MethodPost,
			target: "/integration/product/sellers/1/v2/products",
			status: http.StatusUnauthorized,
			wantLogFields: []string{
				"level=WARN",
				"method=POST",
				"status=401",
			},
		},
		{
			name:          "uses provided request ID",
			method:        http.MethodGet,
			target:        "/integration/product/product-categories",
			status:        http.StatusOK,
			providedReqID: "custom-req-id-123",
			wantLogFields: []string{
				"request_id=custom-req-id-123",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))

			e := echo.New()
			req := httptest.NewRequest(tt.method, tt.target, http.NoBody)
			if tt.providedReqID != "" {
				req.Header.Set(requestIDHeader, tt.providedReqID)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handler := RequestLog(logger)(func(c echo.Context) error {
				return c.NoContent(tt.status)
			})

			require.NoError(t, handler(c))

			logOutput := buf.String()
			for _, field := range tt.wantLogFields {
				assert.Contains(t, logOutput, field)
			}

			respID := rec.Header().Get(requestIDHeader)
			assert.NotEmpty(t, respID)
			if tt.providedReqID != "" {
				assert.Equal(t, tt.providedReqID, respID)
			}
			assert.NotEmpty(t, c.Get("request_id"))
		})
	}
}

func TestRequestLog_HealthzFirstSuccessLogged(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	e := echo.New()
	status := http.StatusOK
	handler := RequestLog(logger)(func(c echo.Context) error {
		return c.NoContent(status)
	})

	serve := func() {
		req := httptest.NewRequest(http.MethodGet, "/healthz", http.NoBody)
		require.NoError(t, handler(e.NewContext(req, httptest.NewRecorder())))
	}

	serve()
	assert.Contains(t, buf.String(), "path=/healthz")
	firstLen := buf.Len()

	serve()
	assert.Equal(t, firstLen, buf.Len(), "repeated healthy probes are not logged")

	status = http.StatusServiceUnavailable
	serve()
	assert.Greater(t, buf.Len(), firstLen)
	assert.Contains(t, buf.String(), "status=503")
}
