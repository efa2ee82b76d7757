package http

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	equipmentUsecases "gearguard/internal/application/equipment/usecases"
	"gearguard/internal/infrastructure/config"
	"gearguard/internal/interfaces/http/handlers"
	"gearguard/internal/shared/db"
	"gearguard/internal/shared/logger"
	"gearguard/internal/shared/services/markdown"
)

// Container holds the repositories, use cases and handlers of the HTTP
// surface, wired together over one database handle.
type Container struct {
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers
}

// NewContainer wires every dependency. All writes share one transaction
// manager so use cases can span repositories atomically.
func NewContainer(gdb *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}

	c := &Container{
		engine: gin.New(),
		db:     gdb,
		cfg:    cfg,
		log:    log,
	}

	c.repos = newRepositories(gdb)
	c.ucs = newUseCases(c.repos, db.NewTransactionManager(gdb), markdown.NewRenderer(), log)
	c.hdlrs = newHandlers(c.ucs, handlers.NewHealthHandler(sqlDB, log), log)

	return c, nil
}

// EquipmentExporter exposes the spreadsheet export to the CLI.
func (c *Container) EquipmentExporter() *equipmentUsecases.ExportEquipmentUseCase {
	return c.ucs.exportEquipmentUC
}
