// Package bootstrap loads configuration and opens the database for the
// CLI commands.
package bootstrap

import (
	"fmt"

	"gorm.io/gorm"

	"gearguard/internal/infrastructure/config"
	"gearguard/internal/infrastructure/database"
	"gearguard/internal/shared/biztime"
	"gearguard/internal/shared/logger"
)

// Env is what every command needs before it can touch the store.
type Env struct {
	Config *config.Config
	DB     *gorm.DB
	Log    logger.Interface
}

// Setup loads config, installs the logger and business timezone, and
// opens the database. The caller must Close the returned Env.
func Setup(env string) (*Env, error) {
	cfg, err := LoadConfig(env)
	if err != nil {
		return nil, err
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return &Env{Config: cfg, DB: db, Log: logger.NewLogger()}, nil
}

// LoadConfig performs the part of Setup that needs no database.
func LoadConfig(env string) (*config.Config, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(cfg.Logger, MapEnvToGinMode(cfg.Server.Mode) == "debug"); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := biztime.Init(cfg.Business.Timezone); err != nil {
		return nil, fmt.Errorf("failed to initialize business timezone: %w", err)
	}
	return cfg, nil
}

func (e *Env) Close() {
	if err := database.Close(e.DB); err != nil {
		e.Log.Errorw("failed to close database", "error", err)
	}
}

// MapEnvToGinMode accepts environment names as well as gin modes.
func MapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return "release"
	case "test", "testing":
		return "test"
	default:
		return "debug"
	}
}
