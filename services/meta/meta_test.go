package meta

import (
	"strings"
	"testing"

	"Cheongcheop/services/i18n"

	"github.com/stretchr/testify/assert"
)

const sampleDocument = `<!DOCTYPE html>
<html lang="ko">
<head>
  <meta charset="utf-8" />
  <title>Stale Title</title>
  <meta name="description" content="stale description" />
  <meta property="og:title" content="stale og title" />
  <meta property="og:image" content="https://old.example.com/x.jpg" />
  <meta name="twitter:card" content="summary" />
</head>
<body>
  <div id="root"></div>
</body>
</html>`

func TestInjectKorean(t *testing.T) {
	out := Inject(sampleDocument, i18n.Korean, "https://example.com")

	assert.Contains(t, out, "<title>조준용 ❤️ 허다영 결혼합니다</title>")
	assert.Contains(t, out, `<meta property="og:image" content="https://example.com/couple.jpg" />`)
	assert.Contains(t, out, `<meta property="og:url" content="https://example.com/ko" />`)
	assert.Contains(t, out, `<meta property="og:locale" content="ko_KR" />`)
	assert.Contains(t, out, `<meta name="twitter:card" content="summary_large_image" />`)
	assert.NotContains(t, out, "Stale Title")
	assert.NotContains(t, out, "stale description")
	assert.NotContains(t, out, "stale og title")
	assert.NotContains(t, out, "old.example.com")
}

func TestInjectEnglish(t *testing.T) {
	out := Inject(sampleDocument, i18n.English, "https://example.com")

	assert.Contains(t, out, "<title>Daniel ❤️ Aria Wedding</title>")
	assert.Contains(t, out, `<meta property="og:locale" content="en_US" />`)
	assert.Contains(t, out, `<meta property="og:url" content="https://example.com/en" />`)
}

func TestInjectDeterministic(t *testing.T) {
	a := Inject(sampleDocument, i18n.Korean, "https://example.com")
	b := Inject(sampleDocument, i18n.Korean, "https://example.com")

	assert.Equal(t, a, b)
}

func TestStripIdempotent(t *testing.T) {
	once := strip(sampleDocument)
	twice := strip(once)

	assert.Equal(t, once, twice)
}

func TestInjectTwiceNoDuplicateTags(t *testing.T) {
	out := Inject(sampleDocument, i18n.Korean, "https://example.com")
	out = Inject(out, i18n.Korean, "https://example.com")

	assert.Equal(t, 1, strings.Count(out, `property="og:title"`))
	assert.Equal(t, 1, strings.Count(out, `name="description"`))
	assert.Equal(t, 1, strings.Count(out, "<title>"))
}

func TestInjectWithoutTitleAnchorsInHead(t *testing.T) {
	doc := `<!DOCTYPE html><html><head><meta charset="utf-8" /></head><body></body></html>`

	out := Inject(doc, i18n.Korean, "https://example.com")

	assert.Contains(t, out, "<title>조준용 ❤️ 허다영 결혼합니다</title>")
	assert.Contains(t, out, `property="og:title"`)
}
