package routes

import (
	"github.com/gin-gonic/gin"

	"gearguard/internal/interfaces/http/handlers"
)

type DashboardRouteConfig struct {
	DashboardHandler *handlers.DashboardHandler
}

func SetupDashboardRoutes(api *gin.RouterGroup, config *DashboardRouteConfig) {
	dashboard := api.Group("/dashboard")
	{
		dashboard.GET("/stats", config.DashboardHandler.GetStats)
		dashboard.GET("/requests-by-team", config.DashboardHandler.RequestsByTeam)
		dashboard.GET("/equipment-by-category", config.DashboardHandler.EquipmentByCategory)
		dashboard.GET("/recent-activity", config.DashboardHandler.RecentActivity)
	}

	api.GET("/activity", config.DashboardHandler.RecentActivity)
}
