// Package http provides the HTTP implementation of jaundice.Fetcher used
// to retrieve raw article markup.
package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/jaundice"
)

// DefaultFetchTimeout is the default per-request time budget.
const DefaultFetchTimeout = 3 * time.Second

// Ensure Fetcher implements jaundice.Fetcher at compile time.
var _ jaundice.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves raw markup with a single bounded GET per call. It
// never retries; a failed fetch is reported so the orchestrator can
// attribute it to the right URL.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-request time budget.
// Defaults to DefaultFetchTimeout (3s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new HTTP Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	// The budget is enforced per call via the request context rather than
	// http.Client.Timeout so deadline exhaustion is distinguishable from
	// other transport failures.
	f.client = &http.Client{}

	return f
}

// Fetch retrieves the raw markup at url. Deadline exhaustion surfaces as
// an ETIMEOUT error, any other request failure as EUNAVAILABLE.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", jaundice.Errorf(jaundice.EUNAVAILABLE, "invalid request for %q: %v", url, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", f.classify(url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", jaundice.Errorf(jaundice.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", f.classify(url, err)
	}

	return string(body), nil
}

// classify maps a transport error to an application error code.
func (f *Fetcher) classify(url string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return jaundice.Errorf(jaundice.ETIMEOUT, "fetch of %s exceeded %s budget", url, f.timeout)
	}
	return jaundice.Errorf(jaundice.EUNAVAILABLE, "fetch of %s failed: %v", url, err)
}
