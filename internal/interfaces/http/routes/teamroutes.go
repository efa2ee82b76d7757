package routes

import (
	"github.com/gin-gonic/gin"

	teamhandlers "gearguard/internal/interfaces/http/handlers/teams"
)

type TeamRouteConfig struct {
	TeamHandler *teamhandlers.Handler
}

func SetupTeamRoutes(api *gin.RouterGroup, config *TeamRouteConfig) {
	teams := api.Group("/teams")
	{
		teams.GET("", config.TeamHandler.ListTeams)
		teams.POST("", config.TeamHandler.CreateTeam)

		// Member paths must be registered before /:id
		teams.GET("/members", config.TeamHandler.ListAllMembers)
		teams.POST("/members", config.TeamHandler.CreateMember)
		teams.PUT("/members/:id", config.TeamHandler.UpdateMember)
		teams.DELETE("/members/:id", config.TeamHandler.DeleteMember)

		teams.GET("/:id/members", config.TeamHandler.ListTeamMembers)

		teams.GET("/:id", config.TeamHandler.GetTeam)
		teams.PUT("/:id", config.TeamHandler.UpdateTeam)
		teams.DELETE("/:id", config.TeamHandler.DeleteTeam)
	}
}
