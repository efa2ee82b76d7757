package routes

import (
	"github.com/gin-gonic/gin"

	equipmenthandlers "gearguard/internal/interfaces/http/handlers/equipment"
)

type EquipmentRouteConfig struct {
	EquipmentHandler *equipmenthandlers.Handler
}

func SetupEquipmentRoutes(api *gin.RouterGroup, config *EquipmentRouteConfig) {
	equipment := api.Group("/equipment")
	{
		equipment.GET("", config.EquipmentHandler.ListEquipment)
		equipment.POST("", config.EquipmentHandler.CreateEquipment)

		// Must come before /:id
		equipment.GET("/export", config.EquipmentHandler.ExportEquipment)

		equipment.GET("/:id/requests", config.EquipmentHandler.ListEquipmentRequests)

		equipment.GET("/:id", config.EquipmentHandler.GetEquipment)
		equipment.PUT("/:id", config.EquipmentHandler.UpdateEquipment)
		equipment.DELETE("/:id", config.EquipmentHandler.DeleteEquipment)
	}
}
