package jaundice

import "context"

// Status classifies the outcome of a single article analysis.
type Status string

// Per-URL analysis statuses.
const (
	StatusOK                Status = "OK"
	StatusFetchError        Status = "FETCH_ERROR"
	StatusUnsupportedSource Status = "UNSUPPORTED_SOURCE"
	StatusParseError        Status = "PARSE_ERROR"
	StatusTimeout           Status = "TIMEOUT"
)

// StatusFromError maps a pipeline error to the analysis status it
// represents. Errors without a more specific classification count as
// fetch failures.
func StatusFromError(err error) Status {
	switch ErrorCode(err) {
	case EUNSUPPORTED:
		return StatusUnsupportedSource
	case ETIMEOUT:
		return StatusTimeout
	case EPARSE:
		return StatusParseError
	default:
		return StatusFetchError
	}
}

// Analysis is the per-URL result of a batch run. Exactly one Analysis
// exists per input URL. The score fields are populated only when Status is
// StatusOK; a failed pipeline never carries partial score data.
type Analysis struct {
	URL    string `json:"url"`
	Status Status `json:"status"`

	// Rate is the charge rate in [0, 100].
	Rate *float64 `json:"rate,omitempty"`

	// WordCount is the total number of lemmas used as the scoring
	// denominator.
	WordCount *int `json:"words_count,omitempty"`

	// ProcessingTimeMS is the wall-clock cost of normalizing the article
	// text, in milliseconds.
	ProcessingTimeMS *float64 `json:"processing_time_ms,omitempty"`
}

// BatchAnalyzer rates a batch of article URLs.
type BatchAnalyzer interface {
	// AnalyzeBatch runs the analysis pipeline for every URL and returns
	// one Analysis per input URL, in input order regardless of completion
	// order. Per-URL failures populate that URL's status and never affect
	// other URLs. A non-nil error is returned only when the batch itself
	// is canceled via ctx.
	AnalyzeBatch(ctx context.Context, urls []string) ([]Analysis, error)
}
