package migration

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"github.com/kolhub/kolhub/internal/shared/logger"
)

//go:embed scripts/mysql/*.sql scripts/sqlite/*.sql
var scriptsFS embed.FS

// Strategy defines the interface for different migration strategies
type Strategy interface {
	// Migrate executes the migration strategy
	Migrate(ctx context.Context, db *gorm.DB) error
	// GetName returns the strategy name
	GetName() string
}

// GormAutoMigrateStrategy migrates from the model structs. Development only.
type GormAutoMigrateStrategy struct {
	models []interface{}
	logger logger.Interface
}

func NewGormAutoMigrateStrategy(log logger.Interface) Strategy {
	return &GormAutoMigrateStrategy{
		models: AutoMigrateModels(),
		logger: log.With("component", "migration.gorm"),
	}
}

func (s *GormAutoMigrateStrategy) Migrate(ctx context.Context, db *gorm.DB) error {
	s.logger.Infow("starting gorm auto migration", "models_count", len(s.models))

	if err := db.WithContext(ctx).AutoMigrate(s.models...); err != nil {
		return fmt.Errorf("failed to auto migrate: %w", err)
	}
	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}

// GooseStrategy runs the embedded SQL scripts for one dialect.
type GooseStrategy struct {
	dialect goose.Dialect
	dir     string
	logger  logger.Interface
}

// NewGooseStrategy picks the script set for the database driver
// ("mysql" or "sqlite").
func NewGooseStrategy(driver string, log logger.Interface) (*GooseStrategy, error) {
	s := &GooseStrategy{logger: log.With("component", "migration.goose")}

	switch driver {
	case "", "mysql":
		s.dialect, s.dir = goose.DialectMySQL, "scripts/mysql"
	case "sqlite":
		s.dialect, s.dir = goose.DialectSQLite3, "scripts/sqlite"
	default:
		return nil, fmt.Errorf("unsupported migration driver: %s", driver)
	}
	return s, nil
}

func (s *GooseStrategy) provider(db *gorm.DB) (*goose.Provider, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	scripts, err := fs.Sub(scriptsFS, s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open migration scripts: %w", err)
	}

	provider, err := goose.NewProvider(s.dialect, sqlDB, scripts)
	if err != nil {
		return nil, fmt.Errorf("failed to create goose provider: %w", err)
	}
	return provider, nil
}

func (s *GooseStrategy) Migrate(ctx context.Context, db *gorm.DB) error {
	s.logger.Infow("starting goose migration", "dialect", s.dialect)

	provider, err := s.provider(db)
	if err != nil {
		return err
	}

	results, err := provider.Up(ctx)
	if err != nil {
		s.logger.Errorw("migration failed", "error", err)
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	for _, r := range results {
		s.logger.Infow("migration applied",
			"version", r.Source.Version,
			"path", r.Source.Path,
			"duration", r.Duration,
		)
	}

	finalVersion, err := provider.GetDBVersion(ctx)
	if err != nil {
		return fmt.Errorf("failed to get final version: %w", err)
	}

	s.logger.Infow("migration completed successfully",
		"applied", len(results),
		"version", finalVersion)
	return nil
}

func (s *GooseStrategy) GetName() string {
	return "goose"
}

// MigrateDown rolls back the given number of migrations.
func (s *GooseStrategy) MigrateDown(ctx context.Context, db *gorm.DB, steps int) error {
	s.logger.Infow("starting down migration", "steps", steps)

	provider, err := s.provider(db)
	if err != nil {
		return err
	}

	for i := 0; i < steps; i++ {
		if _, err := provider.Down(ctx); err != nil {
			s.logger.Errorw("down migration failed", "error", err)
			return fmt.Errorf("failed to run down migration: %w", err)
		}
	}

	s.logger.Infow("down migration completed successfully")
	return nil
}

// GetVersion returns the current migration version
func (s *GooseStrategy) GetVersion(ctx context.Context, db *gorm.DB) (int64, error) {
	provider, err := s.provider(db)
	if err != nil {
		return 0, err
	}

	version, err := provider.GetDBVersion(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get version: %w", err)
	}
	return version, nil
}

// MigrationStatus is one row of the status report.
type MigrationStatus struct {
	Version int64
	Path    string
	Applied bool
}

func (s *GooseStrategy) Status(ctx context.Context, db *gorm.DB) ([]MigrationStatus, error) {
	provider, err := s.provider(db)
	if err != nil {
		return nil, err
	}

	statuses, err := provider.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get status: %w", err)
	}

	out := make([]MigrationStatus, 0, len(statuses))
	for _, st := range statuses {
		out = append(out, MigrationStatus{
			Version: st.Source.Version,
			Path:    st.Source.Path,
			Applied: st.State == goose.StateApplied,
		})
	}
	return out, nil
}
