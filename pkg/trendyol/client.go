// Package trendyol provides a typed client for the Trendyol seller API.
//
// Every operation funnels through one executor that issues a single HTTP
// call and normalizes the outcome into a Response envelope. Remote and
// transport failures are reported in the envelope; only missing required
// parameters are returned as Go errors.
package trendyol

import (
	"encoding/base64"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const (
	// ProductionBaseURL is the live Trendyol API gateway.
	ProductionBaseURL = "https://apigw.trendyol.com"
	// SandboxBaseURL is the staging API gateway.
	SandboxBaseURL = "https://stageapigw.trendyol.com"

	// DefaultTimeout bounds a single request when no timeout is configured.
	DefaultTimeout = 30 * time.Second

	tracerName = "github.com/donaldgifford/trendyol-seller/pkg/trendyol"
)

// Environment selects the API gateway a client talks to.
type Environment string

// Supported environments.
const (
	Production Environment = "production"
	Sandbox    Environment = "sandbox"
)

// BaseURL returns the gateway URL for the environment. Anything other than
// Sandbox resolves to production.
func (e Environment) BaseURL() string {
	if e == Sandbox {
		return SandboxBaseURL
	}
	return ProductionBaseURL
}

// Credentials identify a seller account.
type Credentials struct {
	SellerID    string
	APIKey      string
	APISecret   string
	Environment Environment
}

// Client is a Trendyol seller API client. It is immutable after New and
// safe for concurrent use.
type Client struct {
	creds       Credentials
	baseURL     string
	authHeader  string
	userAgent   string
	timeout     time.Duration
	httpClient  *http.Client
	rateLimiter *RateLimiter
	logger      *slog.Logger
	tracer      trace.Tracer
	now         func() time.Time
}

// Option configures the Client.
type Option func(*Client)

// WithBaseURL overrides the environment's gateway URL.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the wall-clock budget of a single request.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithRateLimiter makes every request wait on r before it is sent.
func WithRateLimiter(r *RateLimiter) Option {
	return func(c *Client) {
		c.rateLimiter = r
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithUserAgent overrides the client identifier sent as User-Agent.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithTracerProvider sets the provider request spans are created from.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *Client) {
		c.tracer = tp.Tracer(tracerName)
	}
}

// New creates a client for the given credentials. An empty environment
// means production.
func New(creds Credentials, opts ...Option) *Client {
	if creds.Environment == "" {
		creds.Environment = Production
	}

	c := &Client{
		creds:      creds,
		baseURL:    creds.Environment.BaseURL(),
		authHeader: basicAuth(creds.APIKey, creds.APISecret),
		userAgent:  creds.SellerID + " - SelfIntegration",
		timeout:    DefaultTimeout,
		httpClient: &http.Client{},
		logger:     slog.New(slog.DiscardHandler),
		tracer:     otel.Tracer(tracerName),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func basicAuth(key, secret string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(key+":"+secret))
}

// SellerID returns the seller the client acts for.
func (c *Client) SellerID() string {
	return c.creds.SellerID
}

// Environment returns the configured environment.
func (c *Client) Environment() Environment {
	return c.creds.Environment
}

// BaseURL returns the gateway URL requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Timeout returns the per-request timeout.
func (c *Client) Timeout() time.Duration {
	return c.timeout
}
