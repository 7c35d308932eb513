// Package analyze orchestrates concurrent per-URL analysis pipelines:
// fetch, extract, normalize, score. Pipelines run under a fixed
// concurrency cap and fail independently; results come back in input
// order regardless of completion order.
package analyze

import (
	"context"
	"time"

	"github.com/fwojciec/jaundice"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds simultaneously running pipelines when the
// Analyzer is not configured with an explicit cap.
const DefaultConcurrency = 10

// Stage identifies a pipeline phase for progress reporting. Every pipeline
// moves forward through the stages and terminates in StageDone or
// StageFailed; it never revisits an earlier stage.
type Stage string

// Pipeline stages.
const (
	StagePending     Stage = "pending"
	StageFetching    Stage = "fetching"
	StageExtracting  Stage = "extracting"
	StageNormalizing Stage = "normalizing"
	StageScoring     Stage = "scoring"
	StageDone        Stage = "done"
	StageFailed      Stage = "failed"
)

// ProgressEvent reports a single pipeline stage transition.
type ProgressEvent struct {
	BatchID string
	URL     string
	Stage   Stage
	Status  jaundice.Status // set when Stage is StageDone or StageFailed
	Err     error           // set when Stage is StageFailed
}

// ProgressFunc observes pipeline stage transitions. It may be called
// concurrently from multiple pipelines.
type ProgressFunc func(event ProgressEvent)

// Ensure Analyzer implements jaundice.BatchAnalyzer at compile time.
var _ jaundice.BatchAnalyzer = (*Analyzer)(nil)

// Analyzer runs the analysis pipeline for batches of article URLs.
type Analyzer struct {
	Fetcher    jaundice.Fetcher
	Extractors jaundice.ExtractorRegistry
	Normalizer jaundice.Normalizer
	Lexicon    *jaundice.Lexicon

	// RateLimiter, when set, paces fetches per source host.
	RateLimiter jaundice.DomainLimiter

	// Concurrency caps simultaneously running pipelines.
	// Defaults to DefaultConcurrency when <= 0.
	Concurrency int

	// RetryDelays, when set, enables backoff retry of transient fetch
	// failures. The Fetcher itself never retries; this is the caller
	// policy layered on top of it. Nil means a single attempt.
	RetryDelays []time.Duration

	// Progress, when set, receives pipeline stage transitions.
	Progress ProgressFunc
}

// AnalyzeBatch runs the pipeline for every URL and returns one Analysis
// per input URL, in input order. A per-URL failure populates that URL's
// status and never aborts, delays, or alters any other pipeline. The
// returned error is non-nil only when ctx is canceled; the partially
// computed results are discarded in that case since the caller is gone.
func (a *Analyzer) AnalyzeBatch(ctx context.Context, urls []string) ([]jaundice.Analysis, error) {
	concurrency := a.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	batchID := uuid.NewString()
	results := make([]jaundice.Analysis, len(urls))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, url := range urls {
		i, url := i, url
		g.Go(func() error {
			// Each pipeline writes only its own slot, so results line up
			// with the input regardless of completion order.
			results[i] = a.processURL(gctx, batchID, url)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// processURL runs a single pipeline to a terminal state. All failures are
// captured in the returned Analysis; nothing escapes as an error.
func (a *Analyzer) processURL(ctx context.Context, batchID, url string) jaundice.Analysis {
	result := jaundice.Analysis{URL: url}

	a.progress(batchID, url, StagePending, "", nil)

	source, err := jaundice.SourceFromURL(url)
	if err != nil {
		return a.fail(&result, batchID, err)
	}

	extractor, err := a.Extractors.ExtractorFor(source)
	if err != nil {
		return a.fail(&result, batchID, err)
	}

	if a.RateLimiter != nil {
		if err := a.RateLimiter.Wait(ctx, string(source)); err != nil {
			return a.fail(&result, batchID, err)
		}
	}

	a.progress(batchID, url, StageFetching, "", nil)
	html, err := a.fetch(ctx, url)
	if err != nil {
		return a.fail(&result, batchID, err)
	}

	a.progress(batchID, url, StageExtracting, "", nil)
	text, err := extractor.Extract(html)
	if err != nil {
		return a.fail(&result, batchID, err)
	}

	a.progress(batchID, url, StageNormalizing, "", nil)
	lemmas, elapsed := a.Normalizer.Normalize(text)

	a.progress(batchID, url, StageScoring, "", nil)
	score := jaundice.Score(lemmas, a.Lexicon)

	rate := score.Rate
	wordCount := len(lemmas)
	processingMS := float64(elapsed) / float64(time.Millisecond)

	result.Status = jaundice.StatusOK
	result.Rate = &rate
	result.WordCount = &wordCount
	result.ProcessingTimeMS = &processingMS

	a.progress(batchID, url, StageDone, jaundice.StatusOK, nil)
	return result
}

// fetch applies the retry policy, if any, around the Fetcher.
func (a *Analyzer) fetch(ctx context.Context, url string) (string, error) {
	if len(a.RetryDelays) == 0 {
		return a.Fetcher.Fetch(ctx, url)
	}
	return FetchWithRetryDelays(ctx, url, a.Fetcher.Fetch, a.RetryDelays)
}

func (a *Analyzer) fail(result *jaundice.Analysis, batchID string, err error) jaundice.Analysis {
	result.Status = jaundice.StatusFromError(err)
	a.progress(batchID, result.URL, StageFailed, result.Status, err)
	return *result
}

func (a *Analyzer) progress(batchID, url string, stage Stage, status jaundice.Status, err error) {
	if a.Progress == nil {
		return
	}
	a.Progress(ProgressEvent{
		BatchID: batchID,
		URL:     url,
		Stage:   stage,
		Status:  status,
		Err:     err,
	})
}
