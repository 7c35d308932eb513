package goquery_test

import (
	"testing"

	"github.com/fwojciec/jaundice"
	"github.com/fwojciec/jaundice/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const riaArticle = `<!DOCTYPE html>
<html>
<body>
<div class="article">
<div class="article__title">Скандал в правительстве</div>
<div class="article__block" data-type="text"><div class="article__text">Первый абзац статьи.</div></div>
<div class="article__block" data-type="media"><img src="photo.jpg"></div>
<div class="article__block" data-type="text"><div class="article__text">Второй абзац статьи.</div></div>
</div>
</body>
</html>`

func TestRiaExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts title and text blocks in order", func(t *testing.T) {
		t.Parallel()

		ext := goquery.NewRiaExtractor()

		text, err := ext.Extract(riaArticle)

		require.NoError(t, err)
		assert.Equal(t, "Скандал в правительстве\n\nПервый абзац статьи.\n\nВторой абзац статьи.", text)
	})

	t.Run("returns EPARSE when text blocks are missing", func(t *testing.T) {
		t.Parallel()

		ext := goquery.NewRiaExtractor()

		_, err := ext.Extract("<html><body><main>front page</main></body></html>")

		require.Error(t, err)
		assert.Equal(t, jaundice.EPARSE, jaundice.ErrorCode(err))
	})
}
