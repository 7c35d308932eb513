package analyze_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/jaundice"
	"github.com/fwojciec/jaundice/analyze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchWithRetryDelays(t *testing.T) {
	t.Parallel()

	t.Run("returns first successful result", func(t *testing.T) {
		t.Parallel()

		attempts := 0
		fetch := func(_ context.Context, _ string) (string, error) {
			attempts++
			return "<html></html>", nil
		}

		html, err := analyze.FetchWithRetryDelays(context.Background(), "https://inosmi.ru/a", fetch, []time.Duration{0, 0})

		require.NoError(t, err)
		assert.Equal(t, "<html></html>", html)
		assert.Equal(t, 1, attempts)
	})

	t.Run("retries transient failures", func(t *testing.T) {
		t.Parallel()

		attempts := 0
		fetch := func(_ context.Context, _ string) (string, error) {
			attempts++
			if attempts < 3 {
				return "", jaundice.Errorf(jaundice.EUNAVAILABLE, "connection refused")
			}
			return "<html></html>", nil
		}

		html, err := analyze.FetchWithRetryDelays(context.Background(), "https://inosmi.ru/a", fetch, []time.Duration{0, 0})

		require.NoError(t, err)
		assert.Equal(t, "<html></html>", html)
		assert.Equal(t, 3, attempts)
	})

	t.Run("gives up after exhausting delays", func(t *testing.T) {
		t.Parallel()

		attempts := 0
		fetch := func(_ context.Context, _ string) (string, error) {
			attempts++
			return "", jaundice.Errorf(jaundice.EUNAVAILABLE, "connection refused")
		}

		_, err := analyze.FetchWithRetryDelays(context.Background(), "https://inosmi.ru/a", fetch, []time.Duration{0, 0})

		require.Error(t, err)
		assert.Equal(t, jaundice.EUNAVAILABLE, jaundice.ErrorCode(err))
		assert.Equal(t, 3, attempts)
	})

	t.Run("does not retry timeouts", func(t *testing.T) {
		t.Parallel()

		attempts := 0
		fetch := func(_ context.Context, _ string) (string, error) {
			attempts++
			return "", jaundice.Errorf(jaundice.ETIMEOUT, "budget exceeded")
		}

		_, err := analyze.FetchWithRetryDelays(context.Background(), "https://inosmi.ru/a", fetch, []time.Duration{0, 0})

		require.Error(t, err)
		assert.Equal(t, jaundice.ETIMEOUT, jaundice.ErrorCode(err))
		assert.Equal(t, 1, attempts)
	})

	t.Run("stops waiting when context is canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		fetch := func(_ context.Context, _ string) (string, error) {
			return "", jaundice.Errorf(jaundice.EUNAVAILABLE, "connection refused")
		}

		_, err := analyze.FetchWithRetryDelays(ctx, "https://inosmi.ru/a", fetch, []time.Duration{time.Hour})

		require.Error(t, err)
	})
}
