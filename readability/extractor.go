// Package readability provides a go-readability backed extractor for
// registered sites whose layout the generic readability heuristics handle
// well, so they don't need a hand-written adapter.
package readability

import (
	"strings"

	"github.com/fwojciec/jaundice"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements jaundice.Extractor at compile time.
var _ jaundice.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract plain article text from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the article body as plain text.
func (e *Extractor) Extract(rawHTML string) (string, error) {
	if rawHTML == "" {
		return "", jaundice.Errorf(jaundice.EPARSE, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return "", jaundice.Errorf(jaundice.EPARSE, "readability: %v", err)
	}

	text := strings.TrimSpace(article.TextContent)
	if text == "" {
		return "", jaundice.Errorf(jaundice.EPARSE, "no article content found")
	}

	return text, nil
}
