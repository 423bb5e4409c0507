package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/trendyol-seller/pkg/trendyol"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		envVars   map[string]string
		wantErr   string
		checkFunc func(t *testing.T, cfg *Config)
	}{
		{
			name: "valid minimal config",
			yaml: `
trendyol:
  seller_id: "12345"
  api_key: key
  api_secret: secret
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "12345", cfg.Trendyol.SellerID)
				assert.Equal(t, "key", cfg.Trendyol.APIKey)
				assert.Equal(t, "secret", cfg.Trendyol.APISecret)
			},
		},
		{
			name: "defaults applied for optional fields",
			yaml: `
trendyol:
  seller_id: "12345"
  api_key: key
  api_secret: secret
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "production", cfg.Trendyol.Environment)
				assert.Equal(t, 30*time.Second, cfg.Trendyol.Timeout)
				assert.Zero(t, cfg.Trendyol.RateLimit.PerSecond)
				assert.Zero(t, cfg.Trendyol.RateLimit.Burst)
				assert.Equal(t, "127.0.0.1", cfg.MockServer.Host)
				assert.Equal(t, 8089, cfg.MockServer.Port)
				assert.Equal(t, 10*time.Second, cfg.MockServer.ReadTimeout)
				assert.Equal(t, 9, cfg.MockServer.CursorAfter)
				assert.Equal(t, int64(25), cfg.MockServer.TotalElements)
				assert.Equal(t, "trendyol", cfg.Telemetry.ServiceName)
				assert.Equal(t, "info", cfg.Logging.Level)
				assert.Equal(t, "text", cfg.Logging.Format)
			},
		},
		{
			name: "env var substitution",
			yaml: `
trendyol:
  seller_id: "12345"
  api_key: key
  api_secret: "${TEST_TRENDYOL_SECRET}"
`,
			envVars: map[string]string{
				"TEST_TRENDYOL_SECRET": "secret123",
			},
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "secret123", cfg.Trendyol.APISecret)
			},
		},
		{
			name: "missing api secret",
			yaml: `
trendyol:
  seller_id: "12345"
  api_key: key
`,
			wantErr: `required parameter "apiSecret" is missing or empty`,
		},
		{
			name: "non-numeric seller id",
			yaml: `
trendyol:
  seller_id: acme
  api_key: key
  api_secret: secret
`,
			wantErr: `seller id "acme" must be numeric`,
		},
		{
			name: "unknown environment",
			yaml: `
trendyol:
  seller_id: "12345"
  api_key: key
  api_secret: secret
  environment: staging
`,
			wantErr: `unknown environment "staging"`,
		},
		{
			name: "invalid logging format",
			yaml: `
trendyol:
  seller_id: "12345"
  api_key: key
  api_secret: secret
logging:
  format: xml
`,
			wantErr: `logging.format must be one of: text, json, console (got "xml")`,
		},
		{
			name:    "invalid YAML",
			yaml:    `{{{not valid yaml`,
			wantErr: "parsing config YAML",
		},
		{
			name: "full config with overrides",
			yaml: `
trendyol:
  seller_id: "98765"
  api_key: key
  api_secret: secret
  environment: sandbox
  base_url: http://localhost:8089
  user_agent: integrator/2.0
  timeout: 5s
  rate_limit:
    per_second: 2.5
    daily_limit: 1000
mock_server:
  host: 0.0.0.0
  port: 9090
  cursor_after: 3
  total_elements: 500
telemetry:
  otlp_endpoint: localhost:4317
  insecure: true
  service_name: seller-sync
logging:
  level: debug
  format: console
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "sandbox", cfg.Trendyol.Environment)
				assert.Equal(t, "http://localhost:8089", cfg.Trendyol.BaseURL)
				assert.Equal(t, "integrator/2.0", cfg.Trendyol.UserAgent)
				assert.Equal(t, 5*time.Second, cfg.Trendyol.Timeout)
				assert.InDelta(t, 2.5, cfg.Trendyol.RateLimit.PerSecond, 0.001)
				assert.Equal(t, 10, cfg.Trendyol.RateLimit.Burst)
				assert.Equal(t, int64(1000), cfg.Trendyol.RateLimit.DailyLimit)
				assert.Equal(t, "0.0.0.0:9090", cfg.MockServerAddr())
				assert.Equal(t, 3, cfg.MockServer.CursorAfter)
				assert.Equal(t, int64(500), cfg.MockServer.TotalElements)
				assert.Equal(t, "localhost:4317", cfg.Telemetry.OTLPEndpoint)
				assert.True(t, cfg.Telemetry.Insecure)
				assert.Equal(t, "seller-sync", cfg.Telemetry.ServiceName)
				assert.Equal(t, "debug", cfg.Logging.Level)
				assert.Equal(t, "console", cfg.Logging.Format)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Only parallelize tests that don't modify env vars.
			if len(tt.envVars) == 0 {
				t.Parallel()
			}

			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o644))

			cfg, err := Load(path)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)

			if tt.checkFunc != nil {
				tt.checkFunc(t, cfg)
			}
		})
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	t.Parallel()

	_, err := Load("/nonexistent/path/config.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestParse_DefersValidation(t *testing.T) {
	t.Parallel()

	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Trendyol.Environment)
	require.Error(t, cfg.Validate())

	cfg.Trendyol.SellerID = "1"
	cfg.Trendyol.APIKey = "k"
	cfg.Trendyol.APISecret = "s"
	require.NoError(t, cfg.Validate())
}

func TestConfig_Credentials(t *testing.T) {
	t.Parallel()

	cfg := &Config{Trendyol: TrendyolConfig{
		SellerID:    "12345",
		APIKey:      "k",
		APISecret:   "s",
		Environment: "sandbox",
	}}

	assert.Equal(t, trendyol.Credentials{
		SellerID:    "12345",
		APIKey:      "k",
		APISecret:   "s",
		Environment: trendyol.Sandbox,
	}, cfg.Credentials())
}

func TestConfig_ClientOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		trendyol    TrendyolConfig
		wantBaseURL string
		wantTimeout time.Duration
	}{
		{
			name:        "sandbox without override",
			trendyol:    TrendyolConfig{SellerID: "1", Environment: "sandbox", Timeout: 10 * time.Second},
			wantBaseURL: trendyol.SandboxBaseURL,
			wantTimeout: 10 * time.Second,
		},
		{
			name: "base url override wins",
			trendyol: TrendyolConfig{
				SellerID:    "1",
				Environment: "sandbox",
				BaseURL:     "http://localhost:8089",
				Timeout:     time.Second,
				RateLimit:   RateLimitConfig{PerSecond: 5, Burst: 1},
			},
			wantBaseURL: "http://localhost:8089",
			wantTimeout: time.Second,
		},
		{
			name:        "zero timeout keeps client default",
			trendyol:    TrendyolConfig{SellerID: "1"},
			wantBaseURL: trendyol.ProductionBaseURL,
			wantTimeout: trendyol.DefaultTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := &Config{Trendyol: tt.trendyol}
			c := trendyol.New(cfg.Credentials(), cfg.ClientOptions()...)
			assert.Equal(t, tt.wantBaseURL, c.BaseURL())
			assert.Equal(t, tt.wantTimeout, c.Timeout())
		})
	}
}
