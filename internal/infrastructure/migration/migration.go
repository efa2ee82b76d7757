// Package migration creates and evolves the store's schema.
package migration

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"gearguard/internal/shared/logger"
)

const (
	StrategyGoose       = "goose"
	StrategyAutoMigrate = "auto"
)

// Manager runs one migration strategy.
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager selects a strategy by name. Versioned goose scripts are the
// default; "auto" derives the schema from models for throwaway databases.
func NewManager(strategyName, driver string) (*Manager, error) {
	var strategy Strategy
	switch strings.ToLower(strategyName) {
	case "", StrategyGoose:
		strategy = NewGooseStrategy(driver)
	case StrategyAutoMigrate:
		strategy = NewAutoMigrateStrategy()
	default:
		return nil, fmt.Errorf("unknown migration strategy %q", strategyName)
	}
	return NewManagerWithStrategy(strategy), nil
}

func NewManagerWithStrategy(strategy Strategy) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   logger.NewLogger().Named("migration.manager"),
	}
}

func (m *Manager) Migrate(db *gorm.DB) error {
	m.logger.Infow("starting database migration", "strategy", m.strategy.GetName())

	if err := m.strategy.Migrate(db); err != nil {
		m.logger.Errorw("migration failed", "strategy", m.strategy.GetName(), "error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}
	return nil
}

func (m *Manager) GetStrategy() Strategy {
	return m.strategy
}
