package meta

import (
	"fmt"
	"regexp"
	"strings"

	wedding "Cheongcheop/constants/wedding"
	"Cheongcheop/services/i18n"
)

// Patterns for the tags owned by this injector. Stripping removes every
// description, og:* and twitter:* meta tag; the title is replaced in place,
// so running Inject on its own output yields the same document again.
var (
	descriptionTag = regexp.MustCompile(`(?i)<meta[^>]*name=["']description["'][^>]*>`)
	openGraphTag   = regexp.MustCompile(`(?i)<meta[^>]*property=["']og:[^"']*["'][^>]*>`)
	twitterTag     = regexp.MustCompile(`(?i)<meta[^>]*name=["']twitter:[^"']*["'][^>]*>`)
	titleTag       = regexp.MustCompile(`(?is)<title>.*?</title>`)
)

// Inject rewrites the document's title and social-preview meta tags with
// locale-specific copy and an absolute image URL derived from baseURL.
// Pure string transform: same input and locale always yields the same output.
func Inject(html string, lang i18n.Lang, baseURL string) string {
	t := i18n.Get(lang).Meta
	imageURL := baseURL + wedding.CoupleImagePath

	tags := fmt.Sprintf(`
  <meta name="description" content="%s" />
  <meta property="og:type" content="website" />
  <meta property="og:url" content="%s/%s" />
  <meta property="og:title" content="%s" />
  <meta property="og:description" content="%s" />
  <meta property="og:image" content="%s" />
  <meta property="og:image:width" content="1200" />
  <meta property="og:image:height" content="630" />
  <meta property="og:locale" content="%s" />
  <meta property="og:site_name" content="%s" />
  <meta name="twitter:card" content="summary_large_image" />
  <meta name="twitter:title" content="%s" />
  <meta name="twitter:description" content="%s" />
  <meta name="twitter:image" content="%s" />`,
		t.Description,
		baseURL, lang,
		t.Title,
		t.Description,
		imageURL,
		t.Locale,
		t.Title,
		t.Title,
		t.Description,
		imageURL,
	)

	html = strip(html)

	title := "<title>" + t.Title + "</title>" + tags
	if loc := titleTag.FindStringIndex(html); loc != nil {
		html = html[:loc[0]] + title + html[loc[1]:]
	} else if head := strings.Index(html, "<head>"); head >= 0 {
		// No title in the source document: anchor the block inside <head>.
		at := head + len("<head>")
		html = html[:at] + "\n  " + title + html[at:]
	}

	return html
}

// strip removes every pre-existing description, og:* and twitter:* meta tag.
// Idempotent: a second pass finds nothing left to remove.
func strip(html string) string {
	html = descriptionTag.ReplaceAllString(html, "")
	html = openGraphTag.ReplaceAllString(html, "")
	html = twitterTag.ReplaceAllString(html, "")
	return html
}
