// Package config handles loading and validating the trendyol CLI and mock
// server configuration from YAML files with environment variable
// substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/trendyol-seller/pkg/trendyol"
)

// Config is the top-level configuration.
type Config struct {
	Trendyol   TrendyolConfig   `yaml:"trendyol"`
	MockServer MockServerConfig `yaml:"mock_server"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// TrendyolConfig defines the seller account and client settings.
type TrendyolConfig struct {
	SellerID    string          `yaml:"seller_id"`
	APIKey      string          `yaml:"api_key"`
	APISecret   string          `yaml:"api_secret"`
	Environment string          `yaml:"environment"` // production, sandbox
	BaseURL     string          `yaml:"base_url"`
	UserAgent   string          `yaml:"user_agent"`
	Timeout     time.Duration   `yaml:"timeout"`
	RateLimit   RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig defines client-side rate limiting. A zero PerSecond
// disables the limiter.
type RateLimitConfig struct {
	PerSecond  float64 `yaml:"per_second"`
	Burst      int     `yaml:"burst"`
	DailyLimit int64   `yaml:"daily_limit"`
}

// MockServerConfig defines the local mock API server.
type MockServerConfig struct {
	Host          string        `yaml:"host"`
	Port          int           `yaml:"port"`
	ReadTimeout   time.Duration `yaml:"read_timeout"`
	WriteTimeout  time.Duration `yaml:"write_timeout"`
	CursorAfter   int           `yaml:"cursor_after"` // page index past which a nextPageToken is returned
	TotalElements int64         `yaml:"total_elements"`
}

// TelemetryConfig defines OpenTelemetry trace export. An empty endpoint
// disables export.
type TelemetryConfig struct {
	OTLPEndpoint string `yaml:"otlp_endpoint"`
	Insecure     bool   `yaml:"insecure"`
	ServiceName  string `yaml:"service_name"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json, console
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Parse expands environment variables in data, decodes it and applies
// defaults. It does not validate, so callers can layer flag and env
// overrides before calling Validate.
func Parse(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)
	return cfg, nil
}

// Credentials returns the seller credentials of the config.
func (c *Config) Credentials() trendyol.Credentials {
	return trendyol.Credentials{
		SellerID:    c.Trendyol.SellerID,
		APIKey:      c.Trendyol.APIKey,
		APISecret:   c.Trendyol.APISecret,
		Environment: trendyol.Environment(c.Trendyol.Environment),
	}
}

// ClientOptions translates the client settings into trendyol options.
// Defaults already applied by Parse are passed through explicitly.
func (c *Config) ClientOptions() []trendyol.Option {
	t := c.Trendyol
	opts := []trendyol.Option{trendyol.WithTimeout(t.Timeout)}
	if t.BaseURL != "" {
		opts = append(opts, trendyol.WithBaseURL(t.BaseURL))
	}
	if t.UserAgent != "" {
		opts = append(opts, trendyol.WithUserAgent(t.UserAgent))
	}
	if t.RateLimit.PerSecond > 0 {
		rl := trendyol.NewRateLimiter(t.RateLimit.PerSecond, t.RateLimit.Burst,
			trendyol.WithDailyLimit(t.RateLimit.DailyLimit))
		opts = append(opts, trendyol.WithRateLimiter(rl))
	}
	return opts
}

// MockServerAddr returns the host:port the mock server listens on.
func (c *Config) MockServerAddr() string {
	return fmt.Sprintf("%s:%d", c.MockServer.Host, c.MockServer.Port)
}

func applyDefaults(cfg *Config) {
	applyTrendyolDefaults(&cfg.Trendyol)
	applyMockServerDefaults(&cfg.MockServer)
	applyTelemetryDefaults(&cfg.Telemetry)
	applyLoggingDefaults(&cfg.Logging)
}

func applyTrendyolDefaults(t *TrendyolConfig) {
	if t.Environment == "" {
		t.Environment = string(trendyol.Production)
	}
	if t.Timeout == 0 {
		t.Timeout = trendyol.DefaultTimeout
	}
	applyRateLimitDefaults(&t.RateLimit)
}

func applyRateLimitDefaults(r *RateLimitConfig) {
	if r.PerSecond > 0 && r.Burst == 0 {
		r.Burst = 10
	}
}

func applyMockServerDefaults(m *MockServerConfig) {
	if m.Host == "" {
		m.Host = "127.0.0.1"
	}
	if m.Port == 0 {
		m.Port = 8089
	}
	if m.ReadTimeout == 0 {
		m.ReadTimeout = 10 * time.Second
	}
	if m.WriteTimeout == 0 {
		m.WriteTimeout = 10 * time.Second
	}
	if m.CursorAfter == 0 {
		m.CursorAfter = 9
	}
	if m.TotalElements == 0 {
		m.TotalElements = 25
	}
}

func applyTelemetryDefaults(t *TelemetryConfig) {
	if t.ServiceName == "" {
		t.ServiceName = "trendyol"
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error

	if err := c.Credentials().Validate(); err != nil {
		errs = append(errs, fmt.Errorf("trendyol: %w", err))
	}
	if c.Trendyol.Timeout < 0 {
		errs = append(errs, fmt.Errorf("trendyol.timeout must not be negative"))
	}
	if c.Trendyol.RateLimit.PerSecond < 0 {
		errs = append(errs, fmt.Errorf("trendyol.rate_limit.per_second must not be negative"))
	}

	switch c.Logging.Format {
	case "text", "json", "console":
	default:
		errs = append(errs, fmt.Errorf(
			"logging.format must be one of: text, json, console (got %q)",
			c.Logging.Format,
		))
	}

	return errors.Join(errs...)
}
