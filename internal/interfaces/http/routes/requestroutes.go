package routes

import (
	"github.com/gin-gonic/gin"

	requesthandlers "gearguard/internal/interfaces/http/handlers/requests"
)

type RequestRouteConfig struct {
	RequestHandler *requesthandlers.Handler
}

func SetupRequestRoutes(api *gin.RouterGroup, config *RequestRouteConfig) {
	requests := api.Group("/requests")
	{
		requests.GET("", config.RequestHandler.ListRequests)
		requests.POST("", config.RequestHandler.CreateRequest)

		// Board views must come before /:id
		requests.GET("/kanban", config.RequestHandler.Kanban)
		requests.GET("/calendar", config.RequestHandler.Calendar)

		requests.PATCH("/:id/stage", config.RequestHandler.UpdateStage)

		requests.GET("/:id", config.RequestHandler.GetRequest)
		requests.PUT("/:id", config.RequestHandler.UpdateRequest)
		requests.DELETE("/:id", config.RequestHandler.DeleteRequest)
	}
}
