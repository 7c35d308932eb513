// Package morph normalizes Russian article text into canonical lemma
// sequences.
//
// Tokens come from Unicode UAX #29 word segmentation and are case-folded.
// Lemma resolution is dictionary-based: an embedded surface-form dictionary
// maps inflected forms to their lemma, and out-of-dictionary forms fall
// back to the snowball Russian stemmer. The first dictionary entry for a
// form wins and stemming is a pure function of the token, so the same text
// always normalizes to the same lemma sequence. Charged-word lexicons must
// be loaded through the same Normalizer so their entries live in the same
// lemma space as article text.
package morph

import (
	"bufio"
	_ "embed"
	"io"
	"strings"
	"time"
	"unicode"

	"github.com/clipperhouse/uax29/v2/words"
	"github.com/fwojciec/jaundice"
	"github.com/kljensen/snowball/russian"
	"golang.org/x/text/cases"
)

//go:embed dict.tsv
var embeddedDict string

// Ensure Normalizer implements jaundice.Normalizer at compile time.
var _ jaundice.Normalizer = (*Normalizer)(nil)

// Normalizer implements jaundice.Normalizer for Russian text. It is
// immutable after construction and safe for concurrent use.
type Normalizer struct {
	lemmas map[string]string
}

// Option configures a Normalizer.
type Option func(*Normalizer) error

// WithDictionary loads additional form-to-lemma pairs from r, one
// tab-separated pair per line. Blank lines and lines starting with '#' are
// skipped. Entries never override forms loaded earlier.
func WithDictionary(r io.Reader) Option {
	return func(n *Normalizer) error {
		return n.loadDictionary(r)
	}
}

// NewNormalizer creates a Normalizer seeded with the embedded dictionary.
func NewNormalizer(opts ...Option) (*Normalizer, error) {
	n := &Normalizer{lemmas: make(map[string]string)}

	if err := n.loadDictionary(strings.NewReader(embeddedDict)); err != nil {
		return nil, err
	}
	for _, opt := range opts {
		if err := opt(n); err != nil {
			return nil, err
		}
	}

	return n, nil
}

// Normalize implements jaundice.Normalizer.
func (n *Normalizer) Normalize(text string) ([]string, time.Duration) {
	begin := time.Now()
	folder := cases.Fold()

	var lemmas []string
	tokens := words.FromString(text)
	for tokens.Next() {
		token := tokens.Value()
		if !hasLetter(token) {
			continue
		}
		lemmas = append(lemmas, n.lemma(folder.String(token)))
	}

	return lemmas, time.Since(begin)
}

// lemma resolves a case-folded surface form to its canonical lemma.
func (n *Normalizer) lemma(form string) string {
	if lemma, ok := n.lemmas[form]; ok {
		return lemma
	}
	return russian.Stem(form, false)
}

func (n *Normalizer) loadDictionary(r io.Reader) error {
	folder := cases.Fold()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		form, lemma, ok := strings.Cut(line, "\t")
		if !ok {
			return jaundice.Errorf(jaundice.EINVALID, "malformed dictionary line %q", line)
		}
		form = folder.String(strings.TrimSpace(form))
		lemma = folder.String(strings.TrimSpace(lemma))
		if _, exists := n.lemmas[form]; !exists {
			n.lemmas[form] = lemma
		}
	}

	return scanner.Err()
}

// hasLetter reports whether the token contains at least one letter.
// Punctuation-only and numeric tokens are discarded by Normalize.
func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
