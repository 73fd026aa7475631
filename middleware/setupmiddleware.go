package middleware

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetUpMiddleware(r *gin.Engine) {
	// The invitation frontend may be served from a different origin during
	// development, and the Vercel cron hits the keepalive cross-origin.
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"*"},
		AllowHeaders: []string{"*"},
	}))
}
