package http

import (
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"go.ngs.io/solar-api/internal/metrics"
	"go.ngs.io/solar-api/internal/usecase"
)

// SetupRouter creates and configures the Gin router.
func SetupRouter(solarUC *usecase.SolarUseCase) *gin.Engine {

	router := gin.Default()

	// Setup CORS middleware.
	corsConfig := cors.DefaultConfig()

	// Get allowed origins from environment variable.
	// Default to allow all origins if not specified.
	allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
	if allowedOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(allowedOrigins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}

	router.Use(cors.New(corsConfig))
	router.Use(metrics.Middleware())

	// Create handler.
	handler := NewHandler(solarUC)

	// API v1 routes.
	v1 := router.Group("/v1")
	solar := v1.Group("/solar")
	solar.GET("/position", handler.GetPosition)
	solar.GET("/events", handler.GetEvents)

	// Health check and metrics.
	router.GET("/health", handler.HealthCheck)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	return router
}
