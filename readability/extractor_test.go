package readability_test

import (
	"testing"

	"github.com/fwojciec/jaundice"
	"github.com/fwojciec/jaundice/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_RejectsEmptyInput(t *testing.T) {
	t.Parallel()

	ext := readability.NewExtractor()

	_, err := ext.Extract("")

	require.Error(t, err)
	assert.Equal(t, jaundice.EPARSE, jaundice.ErrorCode(err))
}

func TestExtractor_ExtractsArticleText(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Название статьи</title></head>
<body>
<nav><a href="/news">Все новости</a></nav>
<article>
<p>Это основной текст статьи, который должен сохраниться в результате извлечения.</p>
<p>Второй абзац с дополнительными подробностями о произошедших событиях.</p>
</article>
<footer><p>Копирайт 2024</p></footer>
</body>
</html>`

	ext := readability.NewExtractor()

	text, err := ext.Extract(html)

	require.NoError(t, err)
	assert.Contains(t, text, "основной текст статьи")
	assert.Contains(t, text, "Второй абзац")
	assert.NotContains(t, text, "<p>")
}

func TestExtractor_RejectsContentFreePage(t *testing.T) {
	t.Parallel()

	ext := readability.NewExtractor()

	_, err := ext.Extract("<html><head></head><body></body></html>")

	require.Error(t, err)
	assert.Equal(t, jaundice.EPARSE, jaundice.ErrorCode(err))
}
