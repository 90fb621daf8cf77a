package migration

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/kolhub/kolhub/internal/shared/constants"
	"github.com/kolhub/kolhub/internal/shared/logger"
)

// Manager handles database migrations with different strategies
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager chooses gorm auto migration for development and the goose
// scripts everywhere else.
func NewManager(environment, driver string, log logger.Interface) (*Manager, error) {
	var strategy Strategy

	switch strings.ToLower(environment) {
	case constants.EnvDevelopment:
		strategy = NewGormAutoMigrateStrategy(log)
	default:
		gooseStrategy, err := NewGooseStrategy(driver, log)
		if err != nil {
			return nil, err
		}
		strategy = gooseStrategy
	}

	return NewManagerWithStrategy(strategy, log), nil
}

// NewManagerWithStrategy creates a new migration manager with a specific strategy
func NewManagerWithStrategy(strategy Strategy, log logger.Interface) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   log.With("component", "migration.manager"),
	}
}

// Migrate executes the configured migration strategy
func (m *Manager) Migrate(ctx context.Context, db *gorm.DB) error {
	m.logger.Infow("starting database migration", "strategy", m.strategy.GetName())

	if err := m.strategy.Migrate(ctx, db); err != nil {
		m.logger.Errorw("migration failed",
			"strategy", m.strategy.GetName(),
			"error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	m.logger.Infow("database migration completed successfully", "strategy", m.strategy.GetName())
	return nil
}

// GetStrategy returns the current migration strategy
func (m *Manager) GetStrategy() Strategy {
	return m.strategy
}
