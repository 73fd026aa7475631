package main

import (
	"Cheongcheop/config"
	_ "Cheongcheop/config/swagger"
	"Cheongcheop/middleware"
	"Cheongcheop/routes"
	"Cheongcheop/services/sheets"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

// @title Cheongcheop API
// @version 1.0
// @description Gin-Gonic server for the bilingual wedding invitation site
// @BasePath /
func main() {
	godotenv.Load()
	log.Println("Setting up server...")

	if os.Getenv("PROD") == "true" {
		gin.SetMode(gin.ReleaseMode)
	}

	// The invitation page must come up even without a datastore; RSVP
	// writes fail-soft until one is configured.
	gormDB, err := config.ConnectGORM()
	if err != nil {
		log.Printf("Warning: PostgreSQL unavailable, RSVP submissions will fail: %v", err)
		gormDB = nil
	} else {
		log.Println("GORM Connected")

		if os.Getenv("MIGRATE_POSTGRES") == "true" {
			log.Println("Migrating PostgreSQL database...")
			if err := config.MigrateDatabase(gormDB); err != nil {
				log.Printf("Warning: Database migration failed: %v", err)
				// Continue execution even if migration fails
			} else {
				log.Println("Database migrated successfully")
			}
		}

		sqlDB, err := gormDB.DB()
		if err != nil {
			log.Fatalf("Error reading GORM PostgreSQL instance: %v", err)
		}
		defer sqlDB.Close()
	}

	sheetsClient := sheets.NewClient(os.Getenv("GOOGLE_SHEETS_WEB_APP_URL"))
	if !sheetsClient.Enabled() {
		log.Println("Google Sheets webhook URL not set, secondary RSVP writes disabled")
	}

	r := gin.Default()

	middleware.SetUpMiddleware(r)

	routes.SetupRoutes(r, gormDB, sheetsClient)

	// Configure port
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
