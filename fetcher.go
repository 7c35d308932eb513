package jaundice

import "context"

// Fetcher retrieves raw article markup from URLs.
type Fetcher interface {
	// Fetch makes a single bounded request for the URL and returns the raw
	// markup. Implementations apply their own timeout budget and report
	// deadline exhaustion as an ETIMEOUT error and other network or
	// protocol failures as EUNAVAILABLE. Fetch never retries; retry is a
	// caller policy. The context controls cancellation.
	Fetch(ctx context.Context, url string) (string, error)
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
