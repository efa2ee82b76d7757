package http

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"gearguard/internal/infrastructure/config"
	"gearguard/internal/interfaces/http/middleware"
	"gearguard/internal/interfaces/http/routes"
	"gearguard/internal/shared/logger"

	_ "gearguard/docs"
)

// Router represents the HTTP router configuration
type Router struct {
	*Container
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Router, error) {
	c, err := NewContainer(db, cfg, log)
	if err != nil {
		return nil, err
	}
	return &Router{Container: c}, nil
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.Recovery(r.log))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.engine.GET("/health", r.hdlrs.healthHandler.HealthCheck)
	r.engine.GET("/version", r.hdlrs.healthHandler.Version)

	api := r.engine.Group("/api")

	routes.SetupTeamRoutes(api, &routes.TeamRouteConfig{
		TeamHandler: r.hdlrs.teamHandler,
	})
	routes.SetupEquipmentRoutes(api, &routes.EquipmentRouteConfig{
		EquipmentHandler: r.hdlrs.equipmentHandler,
	})
	routes.SetupRequestRoutes(api, &routes.RequestRouteConfig{
		RequestHandler: r.hdlrs.requestHandler,
	})
	routes.SetupDashboardRoutes(api, &routes.DashboardRouteConfig{
		DashboardHandler: r.hdlrs.dashboardHandler,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
