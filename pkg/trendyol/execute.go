package trendyol

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/donaldgifford/trendyol-seller/internal/metrics"
)

// ErrTimeout marks an Outcome whose request exceeded the client timeout.
var ErrTimeout = errors.New("request timeout")

// Outcome is the raw result of one HTTP exchange. Err is set, and
// StatusCode is 0, when no HTTP status was received.
type Outcome struct {
	StatusCode int
	Body       []byte
	Err        error
}

// request describes a single call. route is the unresolved template and
// is used for metric and span labels; path is resolved and carries the
// query string.
type request struct {
	method string
	route  string
	path   string
	body   any
}

func newRequest(method, route string, params Params, query *Query) request {
	return request{
		method: method,
		route:  route,
		path:   Resolve(route, params) + query.Encode(),
	}
}

// sellerRequest builds a request for a seller-scoped route, adding the
// client's seller id to params. String identifiers in params must already
// be path-escaped.
func (c *Client) sellerRequest(method, route string, params Params, query *Query) request {
	p := Params{"sellerId": url.PathEscape(c.creds.SellerID)}
	for k, v := range params {
		p[k] = v
	}
	return newRequest(method, route, p, query)
}

func (r request) withBody(body any) request {
	r.body = body
	return r
}

// execute performs exactly one HTTP call. It never returns an error; every
// failure is carried by the Outcome.
func (c *Client) execute(ctx context.Context, req request) Outcome {
	ctx, span := c.tracer.Start(ctx, req.method+" "+req.route,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", req.method),
			attribute.String("url.template", req.route),
			attribute.String("trendyol.seller_id", c.creds.SellerID),
		),
	)
	defer span.End()

	start := time.Now()
	out := c.roundTrip(ctx, req)
	elapsed := time.Since(start)

	status := statusLabel(out.StatusCode)
	metrics.RequestsTotal.WithLabelValues(req.method, req.route, status).Inc()
	metrics.RequestDuration.WithLabelValues(req.method, req.route, status).Observe(elapsed.Seconds())

	if out.Err != nil {
		span.RecordError(out.Err)
		span.SetStatus(codes.Error, out.Err.Error())
		c.logger.WarnContext(ctx, "trendyol request failed",
			"method", req.method,
			"path", req.path,
			"duration", elapsed,
			"error", out.Err,
		)
		return out
	}

	span.SetAttributes(attribute.Int("http.response.status_code", out.StatusCode))
	if !isSuccess(out.StatusCode) {
		span.SetStatus(codes.Error, "HTTP "+strconv.Itoa(out.StatusCode))
	}
	c.logger.DebugContext(ctx, "trendyol request",
		"method", req.method,
		"path", req.path,
		"status", out.StatusCode,
		"bytes", len(out.Body),
		"duration", elapsed,
	)
	return out
}

// roundTrip runs the limiter wait and the HTTP exchange under one client
// timeout.
func (c *Client) roundTrip(parent context.Context, req request) Outcome {
	ctx, cancel := context.WithTimeout(parent, c.timeout)
	defer cancel()

	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return Outcome{Err: c.rateLimitError(parent, ctx, err)}
		}
	}

	var body io.Reader = http.NoBody
	if req.body != nil {
		b, err := json.Marshal(req.body)
		if err != nil {
			metrics.TransportFailuresTotal.WithLabelValues("encode").Inc()
			return Outcome{Err: fmt.Errorf("encoding request body: %w", err)}
		}
		body = bytes.NewReader(b)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, c.baseURL+req.path, body)
	if err != nil {
		metrics.TransportFailuresTotal.WithLabelValues("invalid_request").Inc()
		return Outcome{Err: fmt.Errorf("creating HTTP request: %w", err)}
	}

	httpReq.Header.Set("Authorization", c.authHeader)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return Outcome{Err: c.transportError(ctx, err)}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Outcome{Err: c.transportError(ctx, err)}
	}

	return Outcome{StatusCode: resp.StatusCode, Body: data}
}

// rateLimitError reports a failed limiter wait as a timeout when the client
// timeout, rather than the caller's own deadline, was the bound that cut it
// short.
func (c *Client) rateLimitError(parent, ctx context.Context, err error) error {
	metrics.RateLimitRejectionsTotal.Inc()

	if !errors.Is(err, ErrDailyLimitReached) && parent.Err() == nil && timeoutBound(parent, ctx) {
		metrics.TransportFailuresTotal.WithLabelValues("timeout").Inc()
		return fmt.Errorf("%w after %dms", ErrTimeout, c.timeout.Milliseconds())
	}

	metrics.TransportFailuresTotal.WithLabelValues("rate_limit").Inc()
	return fmt.Errorf("rate limit: %w", err)
}

// timeoutBound reports whether ctx's deadline is the client timeout rather
// than one inherited from parent.
func timeoutBound(parent, ctx context.Context) bool {
	own, ok := ctx.Deadline()
	if !ok {
		return false
	}
	inherited, ok := parent.Deadline()
	return !ok || own.Before(inherited)
}

func (c *Client) transportError(ctx context.Context, err error) error {
	var netErr net.Error
	if errors.Is(ctx.Err(), context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		metrics.TransportFailuresTotal.WithLabelValues("timeout").Inc()
		return fmt.Errorf("%w after %dms", ErrTimeout, c.timeout.Milliseconds())
	}

	metrics.TransportFailuresTotal.WithLabelValues("network").Inc()
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}
	return err
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

func statusLabel(status int) string {
	if status == 0 {
		return "error"
	}
	return strconv.Itoa(status/100) + "xx"
}
