package controllers

import (
	"log"
	"net/http"

	models "Cheongcheop/models/postgres"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// @Summary Datastore keepalive
// @Description Performs a trivial one-row read against rsvp_responses so the hosted datastore project is not paused for inactivity. Called daily by the scheduler, never by guests.
// @Tags health
// @Produce json
// @Success 200 {object} object{ok=bool,message=string}
// @Failure 500 {object} object{ok=bool,error=string}
// @Router /api/keepalive [get]
func Keepalive(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db == nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"ok":    false,
				"error": "Datastore env not configured",
			})
			return
		}

		// An empty table is fine; only a transport/backend error counts.
		var id int64
		err := db.WithContext(c.Request.Context()).
			Model(&models.RsvpResponse{}).
			Select("id").
			Limit(1).
			Scan(&id).Error

		if err != nil {
			log.Printf("Keepalive error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"ok":    false,
				"error": err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"ok":      true,
			"message": "Keepalive success",
		})
	}
}
