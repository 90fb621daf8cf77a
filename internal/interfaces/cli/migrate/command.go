package migrate

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kolhub/kolhub/internal/infrastructure/database"
	"github.com/kolhub/kolhub/internal/infrastructure/migration"
	"github.com/kolhub/kolhub/internal/interfaces/cli/common"
	"github.com/kolhub/kolhub/internal/shared/logger"
)

var (
	env   string
	steps int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Apply, roll back and inspect the embedded goose migrations.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE:  runStatus,
	}
}

func initEnv() (*migration.GooseStrategy, logger.Interface, error) {
	env = common.ResolveEnv(env)

	cfg, log, err := common.InitWithDatabase(env)
	if err != nil {
		return nil, nil, err
	}

	strategy, err := migration.NewGooseStrategy(cfg.Database.Driver, log)
	if err != nil {
		_ = database.Close()
		return nil, nil, err
	}
	return strategy, log, nil
}

func runUp(cmd *cobra.Command, args []string) error {
	strategy, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("running up migrations", "environment", env)

	if err := strategy.Migrate(cmd.Context(), database.Get()); err != nil {
		log.Errorw("migration failed", "error", err)
		return fmt.Errorf("migration failed: %w", err)
	}

	log.Infow("migrations completed successfully")
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	if steps < 1 {
		return fmt.Errorf("--steps must be at least 1")
	}

	strategy, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("running down migrations", "environment", env, "steps", steps)

	if err := strategy.MigrateDown(cmd.Context(), database.Get(), steps); err != nil {
		log.Errorw("down migration failed", "error", err)
		return fmt.Errorf("down migration failed: %w", err)
	}

	log.Infow("down migration completed successfully")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	strategy, _, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	version, err := strategy.GetVersion(cmd.Context(), database.Get())
	if err != nil {
		return fmt.Errorf("failed to get migration version: %w", err)
	}
	statuses, err := strategy.Status(cmd.Context(), database.Get())
	if err != nil {
		return fmt.Errorf("failed to get detailed status: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Environment:     %s\n", env)
	fmt.Fprintf(out, "Current Version: %d\n\n", version)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "VERSION\tAPPLIED\tSCRIPT")
	for _, s := range statuses {
		fmt.Fprintf(w, "%d\t%t\t%s\n", s.Version, s.Applied, s.Path)
	}
	return w.Flush()
}

