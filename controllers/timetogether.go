package controllers

import (
	"net/http"
	"time"

	wedding "Cheongcheop/constants/wedding"
	"Cheongcheop/services/timetogether"

	"github.com/gin-gonic/gin"
)

// @Summary Time together
// @Description Returns the elapsed time since the couple's anchor date, broken into display units
// @Tags timetogether
// @Produce json
// @Success 200 {object} timetogether.Breakdown
// @Router /api/time-together [get]
func GetTimeTogether() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, timetogether.Since(wedding.CoupleSince))
	}
}

// @Summary Time together stream
// @Description Server-Sent Events stream emitting the breakdown once per second until the client disconnects
// @Tags timetogether
// @Produce text/event-stream
// @Success 200 {object} timetogether.Breakdown
// @Router /api/time-together/stream [get]
func StreamTimeTogether() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-cache")

		// The per-second ticker lives exactly as long as this request: the
		// client going away cancels the request context, which closes the
		// channel and stops the ticker.
		updates := timetogether.Stream(c.Request.Context(), wedding.CoupleSince, time.Second)
		for breakdown := range updates {
			c.SSEvent("time-together", breakdown)
			c.Writer.Flush()
		}
	}
}
