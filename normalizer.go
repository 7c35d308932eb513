package jaundice

import "time"

// Normalizer reduces article text to a sequence of canonical lemmas.
type Normalizer interface {
	// Normalize splits text into words, drops tokens that contain no
	// letter, and maps each remaining token to its canonical lemma,
	// preserving input order. Resolution must be deterministic: the same
	// text always yields the same lemma sequence. The returned duration is
	// the wall-clock cost of the call, since lemmatization is the
	// CPU-bound hot path and its cost should be observable per document.
	Normalize(text string) (lemmas []string, elapsed time.Duration)
}
