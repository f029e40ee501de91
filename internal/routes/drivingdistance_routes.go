package routes

import (
	"github.com/gin-gonic/gin"

	"analytics_backend/internal/config"
	"analytics_backend/internal/controllers"
	"analytics_backend/internal/middleware"
)

func DrivingDistanceRoutes(r *gin.Engine, cfg config.Config, ctl *controllers.DrivingDistanceController) {
	records := r.Group("/drivingdistance")
	records.Use(middleware.RequireToken(cfg.APIToken))
	{
		records.POST("/bulk", ctl.BulkCreate)
		records.POST("/filter", ctl.Filter)
		records.GET("", ctl.List)
		records.POST("/sumdistance", ctl.SumDistance)
		records.GET("/platenumber", ctl.UniquePlates)
	}
}
