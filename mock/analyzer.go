package mock

import (
	"context"

	"github.com/fwojciec/jaundice"
)

var _ jaundice.BatchAnalyzer = (*BatchAnalyzer)(nil)

// BatchAnalyzer is a mock implementation of jaundice.BatchAnalyzer.
type BatchAnalyzer struct {
	AnalyzeBatchFn func(ctx context.Context, urls []string) ([]jaundice.Analysis, error)
}

func (a *BatchAnalyzer) AnalyzeBatch(ctx context.Context, urls []string) ([]jaundice.Analysis, error) {
	return a.AnalyzeBatchFn(ctx, urls)
}
