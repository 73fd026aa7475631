package controllers

import (
	"net/http"

	"Cheongcheop/services/i18n"

	"github.com/gin-gonic/gin"
)

// @Summary Localized copy bundle
// @Description Returns the UI copy for the given language; unknown tags fall back to Korean
// @Tags i18n
// @Produce json
// @Param lang path string true "Language tag (ko or en)"
// @Success 200 {object} i18n.Bundle
// @Router /api/translations/{lang} [get]
func GetTranslations(c *gin.Context) {
	lang := i18n.Parse(c.Param("lang"))
	c.JSON(http.StatusOK, i18n.Get(lang))
}
