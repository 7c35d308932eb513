package mock

import (
	"time"

	"github.com/fwojciec/jaundice"
)

var _ jaundice.Normalizer = (*Normalizer)(nil)

// Normalizer is a mock implementation of jaundice.Normalizer.
type Normalizer struct {
	NormalizeFn func(text string) ([]string, time.Duration)
}

func (n *Normalizer) Normalize(text string) ([]string, time.Duration) {
	return n.NormalizeFn(text)
}
