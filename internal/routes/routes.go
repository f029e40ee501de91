package routes

import (
	ginlogger "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"

	"analytics_backend/internal/config"
	"analytics_backend/internal/controllers"
	"analytics_backend/internal/middleware"
)

// SetupRouter wires shared middleware and every route group.
func SetupRouter(cfg config.Config, ctl *controllers.DrivingDistanceController) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// Request logging middleware
	r.Use(ginlogger.SetLogger())
	r.Use(middleware.RequestID())

	// Status route, no auth
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "OK",
			"service": "Analytics Backend",
		})
	})

	DrivingDistanceRoutes(r, cfg, ctl)

	return r
}
