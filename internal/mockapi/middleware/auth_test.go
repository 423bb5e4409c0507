package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestBasicAuth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		path       string
		user, pass string
		setAuth    bool
		wantStatus int
	}{
		{name: "credentials present", path: "/integration/product/brands", user: "k", pass: "s", setAuth: true, wantStatus: http.StatusOK},
		{name: "missing header", path: "/integration/product/brands", wantStatus: http.StatusUnauthorized},
		{name: "empty secret", path: "/integration/product/brands", user: "k", setAuth: true, wantStatus: http.StatusUnauthorized},
		{name: "metrics open", path: "/metrics", wantStatus: http.StatusOK},
		{name: "healthz open", path: "/healthz", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, tt.path, http.NoBody)
			if tt.setAuth {
				req.SetBasicAuth(tt.user, tt.pass)
			}
			rec := httptest.NewRecorder()

			err := BasicAuth()(func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			})(e.NewContext(req, rec))
			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.JSONEq(t, `{"message":"Invalid credentials"}`, rec.Body.String())
			}
		})
	}
}
