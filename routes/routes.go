package routes

import (
	"Cheongcheop/controllers"
	"Cheongcheop/services/sheets"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, db *gorm.DB, sheetsClient *sheets.Client) {
	// Create controllers
	rsvpController := &controllers.RsvpController{DB: db, Sheets: sheetsClient}

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes group
	api := router.Group("/api")

	api.POST("/rsvp", rsvpController.SubmitRsvp)

	api.GET("/keepalive", controllers.Keepalive(db))

	api.GET("/time-together", controllers.GetTimeTogether())

	api.GET("/time-together/stream", controllers.StreamTimeTogether())

	api.GET("/translations/:lang", controllers.GetTranslations)

	// Every other path serves the invitation page with locale-aware meta tags
	router.NoRoute(controllers.ServePage())
}
