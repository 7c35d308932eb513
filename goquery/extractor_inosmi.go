package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/jaundice"
)

var _ jaundice.Extractor = (*InosmiExtractor)(nil)

// InosmiExtractor extracts article text from inosmi.ru pages.
//
// inosmi.ru renders the headline as h1.article-header__title and the body
// as div.article__text blocks inside div.article__body. Scripts, figures
// and embedded media inside the body are discarded.
type InosmiExtractor struct{}

// NewInosmiExtractor creates a new InosmiExtractor.
func NewInosmiExtractor() *InosmiExtractor {
	return &InosmiExtractor{}
}

// Extract returns the article body as plain text.
func (e *InosmiExtractor) Extract(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", jaundice.Errorf(jaundice.EPARSE, "failed to parse HTML: %v", err)
	}

	body := doc.Find("div.article__body")
	if body.Length() == 0 {
		return "", jaundice.Errorf(jaundice.EPARSE, "article body not found")
	}

	blocks := body.Find("div.article__text")
	if blocks.Length() == 0 {
		return "", jaundice.Errorf(jaundice.EPARSE, "article text blocks not found")
	}

	body.Find("script, style, figure, iframe").Remove()

	var parts []string
	if title := strings.TrimSpace(doc.Find("h1.article-header__title").First().Text()); title != "" {
		parts = append(parts, title)
	}
	blocks.Each(func(_ int, sel *goquery.Selection) {
		if text := strings.TrimSpace(sel.Text()); text != "" {
			parts = append(parts, text)
		}
	})

	return strings.Join(parts, "\n\n"), nil
}
