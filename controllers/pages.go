package controllers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"Cheongcheop/services/i18n"
	"Cheongcheop/services/meta"
	"Cheongcheop/utils"

	"github.com/gin-gonic/gin"
)

// ServePage responds to any inbound path with the invitation document,
// rewriting the title and social-preview meta tags for the locale implied by
// the path prefix. The built frontend is read per request from BUILD_DIR so
// a redeploy of the static bundle needs no server restart.
func ServePage() gin.HandlerFunc {
	buildDir := os.Getenv("BUILD_DIR")
	if buildDir == "" {
		buildDir = "build"
	}
	indexPath := filepath.Join(buildDir, "index.html")

	return func(c *gin.Context) {
		lang := utils.Lang(c)
		baseURL := utils.BaseURL(c)

		var html string
		if b, err := os.ReadFile(indexPath); err == nil {
			html = string(b)
		} else {
			html = fallbackShell(lang, baseURL)
		}

		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(meta.Inject(html, lang, baseURL)))
	}
}

// fallbackShell is the minimal document served when the static build is not
// present (e.g. the API deployed without the frontend bundle).
func fallbackShell(lang i18n.Lang, baseURL string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="%s">
<head>
  <meta charset="utf-8" />
  <link rel="icon" type="image/svg+xml" href="%s/favicon.svg" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>%s</title>
</head>
<body>
  <div id="root"></div>
</body>
</html>`, lang, baseURL, i18n.Get(lang).Meta.Title)
}
