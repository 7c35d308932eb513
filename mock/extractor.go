package mock

import "github.com/fwojciec/jaundice"

var _ jaundice.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of jaundice.Extractor.
type Extractor struct {
	ExtractFn func(html string) (string, error)
}

func (e *Extractor) Extract(html string) (string, error) {
	return e.ExtractFn(html)
}
