package analyze

import (
	"context"
	"time"

	"github.com/fwojciec/jaundice"
)

// FetchFunc is the signature of a single fetch attempt.
type FetchFunc func(ctx context.Context, url string) (string, error)

// FetchWithRetryDelays retries transient fetch failures with the given
// backoff delays (len(delays) retries after the initial attempt). Only
// EUNAVAILABLE failures are retried: timeouts already consumed their
// budget and every other code reports a condition a retry cannot fix.
// Retry is deliberately a caller policy here rather than Fetcher behavior.
func FetchWithRetryDelays(ctx context.Context, url string, fetch FetchFunc, delays []time.Duration) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= len(delays); attempt++ {
		html, err := fetch(ctx, url)
		if err == nil {
			return html, nil
		}
		lastErr = err

		if jaundice.ErrorCode(err) != jaundice.EUNAVAILABLE {
			return "", err
		}
		if attempt == len(delays) {
			break
		}

		select {
		case <-ctx.Done():
			return "", jaundice.Errorf(jaundice.EUNAVAILABLE, "fetch of %s aborted: %v", url, ctx.Err())
		case <-time.After(delays[attempt]):
		}
	}
	return "", lastErr
}
