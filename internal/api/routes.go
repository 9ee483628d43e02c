package api

import (
	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up the page and API routes
func SetupRoutes(handler *Handler, logger *log.Logger) *gin.Engine {
	router := gin.New()

	// Middleware
	router.Use(Recovery())
	router.Use(CORS())
	router.Use(Logger(logger))

	// Health check
	router.GET("/health", handler.HealthCheck)

	// Finder page
	router.GET("/", handler.Index)
	router.POST("/", handler.Submit)

	// API v1
	v1 := router.Group("/api/v1")
	{
		v1.GET("/users/:user", handler.GetUser)
		v1.GET("/history", handler.GetHistory)
	}

	return router
}
