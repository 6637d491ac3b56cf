package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORSMiddleware allows the configured origins. Credentials are only
// allowed for an explicit origin list.
func CORSMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	for _, origin := range origins {
		if origin == "*" {
			cfg.AllowAllOrigins = true
			cfg.AllowCredentials = false
			break
		}
	}
	if !cfg.AllowAllOrigins {
		cfg.AllowOrigins = origins
	}

	return cors.New(cfg)
}
