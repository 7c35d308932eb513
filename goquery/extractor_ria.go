package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/jaundice"
)

var _ jaundice.Extractor = (*RiaExtractor)(nil)

// RiaExtractor extracts article text from ria.ru pages.
//
// ria.ru wraps each paragraph in div.article__block[data-type=text] with
// the actual text in a nested div.article__text; the headline is
// div.article__title.
type RiaExtractor struct{}

// NewRiaExtractor creates a new RiaExtractor.
func NewRiaExtractor() *RiaExtractor {
	return &RiaExtractor{}
}

// Extract returns the article body as plain text.
func (e *RiaExtractor) Extract(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", jaundice.Errorf(jaundice.EPARSE, "failed to parse HTML: %v", err)
	}

	blocks := doc.Find("div.article__block[data-type=text] div.article__text")
	if blocks.Length() == 0 {
		return "", jaundice.Errorf(jaundice.EPARSE, "article text blocks not found")
	}

	var parts []string
	if title := strings.TrimSpace(doc.Find("div.article__title").First().Text()); title != "" {
		parts = append(parts, title)
	}
	blocks.Each(func(_ int, sel *goquery.Selection) {
		if text := strings.TrimSpace(sel.Text()); text != "" {
			parts = append(parts, text)
		}
	})

	return strings.Join(parts, "\n\n"), nil
}
