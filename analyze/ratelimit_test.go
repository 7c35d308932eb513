package analyze_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/jaundice/analyze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainLimiter_Wait(t *testing.T) {
	t.Parallel()

	t.Run("allows the first request immediately", func(t *testing.T) {
		t.Parallel()

		limiter := analyze.NewDomainLimiter(1.0)

		begin := time.Now()
		err := limiter.Wait(context.Background(), "inosmi.ru")

		require.NoError(t, err)
		assert.Less(t, time.Since(begin), 100*time.Millisecond)
	})

	t.Run("paces repeated requests to the same domain", func(t *testing.T) {
		t.Parallel()

		limiter := analyze.NewDomainLimiter(20.0) // 50ms between requests

		begin := time.Now()
		require.NoError(t, limiter.Wait(context.Background(), "inosmi.ru"))
		require.NoError(t, limiter.Wait(context.Background(), "inosmi.ru"))

		assert.GreaterOrEqual(t, time.Since(begin), 40*time.Millisecond)
	})

	t.Run("domains are limited independently", func(t *testing.T) {
		t.Parallel()

		limiter := analyze.NewDomainLimiter(1.0)

		begin := time.Now()
		require.NoError(t, limiter.Wait(context.Background(), "inosmi.ru"))
		require.NoError(t, limiter.Wait(context.Background(), "ria.ru"))

		assert.Less(t, time.Since(begin), 500*time.Millisecond)
	})

	t.Run("returns error when context is canceled", func(t *testing.T) {
		t.Parallel()

		limiter := analyze.NewDomainLimiter(0.1) // 10s between requests

		require.NoError(t, limiter.Wait(context.Background(), "inosmi.ru"))

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		err := limiter.Wait(ctx, "inosmi.ru")

		assert.Error(t, err)
	})
}
