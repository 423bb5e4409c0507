package trendyol_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/trendyol-seller/pkg/trendyol"
)

func TestRateLimiter_Wait(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rate    float64
		burst   int
		daily   int64
		calls   int
		wantErr bool
	}{
		{
			name:  "allows calls within rate",
			rate:  100,
			burst: 10,
			calls: 3,
		},
		{
			name:  "allows burst",
			rate:  100,
			burst: 5,
			calls: 5,
		},
		{
			name:    "rejects when daily limit reached",
			rate:    100,
			burst:   10,
			daily:   2,
			calls:   3,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rl := trendyol.NewRateLimiter(tt.rate, tt.burst, trendyol.WithDailyLimit(tt.daily))

			var lastErr error
			for range tt.calls {
				lastErr = rl.Wait(context.Background())
				if lastErr != nil {
					break
				}
			}

			if tt.wantErr {
				require.Error(t, lastErr)
				assert.ErrorIs(t, lastErr, trendyol.ErrDailyLimitReached)
				return
			}
			require.NoError(t, lastErr)
			assert.Equal(t, int64(tt.calls), rl.DailyCount())
		})
	}
}

func TestRateLimiter_ContextCanceled(t *testing.T) {
	t.Parallel()

	rl := trendyol.NewRateLimiter(0.001, 1)
	require.NoError(t, rl.Wait(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	require.Error(t, rl.Wait(ctx))
}

func TestRateLimiter_DailyLimitConcurrent(t *testing.T) {
	t.Parallel()

	const limit = 10
	rl := trendyol.NewRateLimiter(1000, 100, trendyol.WithDailyLimit(limit))

	var (
		wg      sync.WaitGroup
		allowed atomic.Int64
	)
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if rl.Wait(context.Background()) == nil {
				allowed.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(limit), allowed.Load())
	assert.Equal(t, int64(limit), rl.DailyCount())
	assert.Equal(t, int64(0), rl.Remaining())
}

func TestRateLimiter_FailedWaitReleasesDailySlot(t *testing.T) {
	t.Parallel()

	rl := trendyol.NewRateLimiter(0.001, 1, trendyol.WithDailyLimit(5))
	require.NoError(t, rl.Wait(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	require.Error(t, rl.Wait(ctx))
	assert.Equal(t, int64(1), rl.DailyCount())
}

func TestRateLimiter_DailyReset(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return now
	}

	rl := trendyol.NewRateLimiter(100, 10,
		trendyol.WithDailyLimit(1),
		trendyol.WithRateLimiterNowFunc(clock),
	)
	require.NoError(t, rl.Wait(context.Background()))
	require.ErrorIs(t, rl.Wait(context.Background()), trendyol.ErrDailyLimitReached)
	assert.Equal(t, int64(0), rl.Remaining())

	mu.Lock()
	now = now.Add(25 * time.Hour)
	mu.Unlock()

	require.NoError(t, rl.Wait(context.Background()))
	assert.Equal(t, int64(1), rl.DailyCount())
	assert.Equal(t, now.Add(24*time.Hour), rl.ResetAt())
}

func TestRateLimiter_Unlimited(t *testing.T) {
	t.Parallel()

	rl := trendyol.NewRateLimiter(100, 10)
	assert.Equal(t, int64(-1), rl.Remaining())
}
