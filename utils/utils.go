package utils

import (
	"strings"

	"Cheongcheop/services/i18n"

	"github.com/gin-gonic/gin"
)

// Lang resolves the UI language from the request path prefix: /en serves
// English, anything else serves Korean.
func Lang(c *gin.Context) i18n.Lang {
	if strings.HasPrefix(c.Request.URL.Path, "/en") {
		return i18n.English
	}
	return i18n.Korean
}

// BaseURL derives the absolute site URL from the inbound request's host
// header. Behind the Vercel/ingress proxy the scheme arrives in
// X-Forwarded-Proto; default to https like the production deployment.
func BaseURL(c *gin.Context) string {
	scheme := c.GetHeader("X-Forwarded-Proto")
	if scheme == "" {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host
}
