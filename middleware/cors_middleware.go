package middleware

import (
	"time"

	"github.com/muratbgul/AI-Powered-Crypto-Signal-Project/model"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS allows the configured dashboard origins to call the gateway.
func CORS(cfg *model.EnvConfig) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins: cfg.FrontendUrls,
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
			"Authorization",
			"X-Requested-With",
		},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
