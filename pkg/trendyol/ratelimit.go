package trendyol

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"github.com/donaldgifford/trendyol-seller/internal/metrics"
)

// ErrDailyLimitReached is returned when the optional daily cap has been exhausted.
var ErrDailyLimitReached = errors.New("daily request limit reached")

// RateLimiter paces outgoing requests. It uses a token bucket for
// per-second limiting and an optional rolling 24-hour cap. It never retries
// anything; a failed Wait turns into a failure envelope.
type RateLimiter struct {
	limiter  *rate.Limiter
	daily    atomic.Int64
	maxDaily int64
	resetAt  time.Time
	mu       sync.Mutex
	nowFunc  func() time.Time
}

// RateLimiterOption configures the RateLimiter.
type RateLimiterOption func(*RateLimiter)

// WithDailyLimit caps the number of requests per rolling 24-hour window.
// Zero or negative means unlimited.
func WithDailyLimit(n int64) RateLimiterOption {
	return func(r *RateLimiter) {
		r.maxDaily = n
	}
}

// WithRateLimiterNowFunc overrides the time function for testing.
func WithRateLimiterNowFunc(f func() time.Time) RateLimiterOption {
	return func(r *RateLimiter) {
		r.nowFunc = f
	}
}

// NewRateLimiter creates a rate limiter allowing perSecond requests with
// the given burst.
func NewRateLimiter(perSecond float64, burst int, opts ...RateLimiterOption) *RateLimiter {
	r := &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(perSecond), burst),
		nowFunc: time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.resetAt = r.nowFunc().Add(24 * time.Hour)
	return r
}

// Wait blocks until the limiter allows the call or ctx is done. A daily
// slot is reserved before waiting and given back if the wait fails.
func (r *RateLimiter) Wait(ctx context.Context) error {
	if err := r.reserveDaily(); err != nil {
		return err
	}

	start := time.Now()
	if err := r.limiter.Wait(ctx); err != nil {
		r.releaseDaily()
		return fmt.Errorf("rate limiter wait: %w", err)
	}
	metrics.RateLimitWaitDuration.Observe(time.Since(start).Seconds())
	return nil
}

// reserveDaily rolls the window over when it has expired and takes one
// slot from it. Check and increment happen under mu.
func (r *RateLimiter) reserveDaily() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.resetIfExpired()
	n := r.daily.Load()
	if r.maxDaily > 0 && n >= r.maxDaily {
		return fmt.Errorf("%w (%d/%d)", ErrDailyLimitReached, n, r.maxDaily)
	}
	metrics.DailyUsage.Set(float64(r.daily.Add(1)))
	return nil
}

// releaseDaily returns a reserved slot. A window that rolled over in the
// meantime no longer holds it.
func (r *RateLimiter) releaseDaily() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.daily.Load() > 0 {
		metrics.DailyUsage.Set(float64(r.daily.Add(-1)))
	}
}

// DailyCount returns the number of requests let through in the current window.
func (r *RateLimiter) DailyCount() int64 {
	return r.daily.Load()
}

// Remaining returns the requests left in the current window, or -1 when
// there is no daily cap.
func (r *RateLimiter) Remaining() int64 {
	if r.maxDaily <= 0 {
		return -1
	}
	return max(r.maxDaily-r.daily.Load(), 0)
}

// ResetAt returns when the current 24-hour window expires.
func (r *RateLimiter) ResetAt() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.resetAt
}

// resetIfExpired starts a new window once the current one has passed.
// Callers hold mu.
func (r *RateLimiter) resetIfExpired() {
	now := r.nowFunc()
	if now.After(r.resetAt) {
		r.daily.Store(0)
		r.resetAt = now.Add(24 * time.Hour)
	}
}
