// Package common holds start-up steps shared by the CLI commands.
package common

import (
	"fmt"
	"os"

	"github.com/kolhub/kolhub/internal/infrastructure/config"
	"github.com/kolhub/kolhub/internal/infrastructure/database"
	"github.com/kolhub/kolhub/internal/shared/biztime"
	"github.com/kolhub/kolhub/internal/shared/logger"
)

// ResolveEnv lets the ENV variable override the --env flag.
func ResolveEnv(flagValue string) string {
	if envVar := os.Getenv("ENV"); envVar != "" {
		return envVar
	}
	return flagValue
}

// Init loads configuration and initializes the logger and the business
// timezone. It does not touch the database.
func Init(env string) (*config.Config, logger.Interface, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, isDevelopment(env)); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := biztime.Init(cfg.Subscription.Timezone); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	return cfg, logger.NewLogger(), nil
}

// InitWithDatabase is Init followed by database.Init. Callers defer
// database.Close.
func InitWithDatabase(env string) (*config.Config, logger.Interface, error) {
	cfg, log, err := Init(env)
	if err != nil {
		return nil, nil, err
	}
	if err := database.Init(&cfg.Database); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return cfg, log, nil
}

func isDevelopment(env string) bool {
	switch env {
	case "development", "dev", "debug":
		return true
	default:
		return false
	}
}

// GinMode maps an environment name to a gin mode.
func GinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return "release"
	case "test", "testing":
		return "test"
	default:
		return "debug"
	}
}
