package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/kolhub/kolhub/internal/infrastructure/database"
	"github.com/kolhub/kolhub/internal/infrastructure/migration"
	httpRouter "github.com/kolhub/kolhub/internal/interfaces/http"
	"github.com/kolhub/kolhub/internal/interfaces/cli/common"
	"github.com/kolhub/kolhub/internal/shared/goroutine"
	"github.com/kolhub/kolhub/internal/shared/logger"
)

var (
	env                string
	autoMigrate        bool
	skipMigrationCheck bool
	noScheduler        bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the KOLHub HTTP server together with the subscription lifecycle scheduler.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Automatically run database migrations on startup (not recommended for production)")
	cmd.Flags().BoolVar(&skipMigrationCheck, "skip-migration-check", false, "Skip migration status check on startup")
	cmd.Flags().BoolVar(&noScheduler, "no-scheduler", false, "Do not run the lock sweep and reminder jobs in this process")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	env = common.ResolveEnv(env)

	cfg, log, err := common.InitWithDatabase(env)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(); err != nil {
			log.Errorw("failed to close database", "error", err)
		}
	}()

	cfg.Server.Mode = common.GinMode(env)
	log.Infow("starting server",
		"environment", env,
		"auto_migrate", autoMigrate,
		"timezone", cfg.Subscription.Timezone)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := handleMigrations(ctx, env, cfg.Database.Driver, log); err != nil {
		return fmt.Errorf("migration handling failed: %w", err)
	}

	container, err := httpRouter.NewContainer(ctx, database.Get(), cfg, log)
	if err != nil {
		return fmt.Errorf("failed to build application: %w", err)
	}
	defer container.Shutdown()

	container.SetupRoutes()
	if !noScheduler {
		container.StartScheduler()
	}

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      container.Engine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	stopped := goroutine.Go(log, "http-server", func() {
		log.Infow("server listening", "address", cfg.Server.GetAddr(), "mode", cfg.Server.Mode)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	})

	select {
	case <-stopped:
		select {
		case err := <-serverErr:
			return fmt.Errorf("failed to start server: %w", err)
		default:
			return errors.New("server stopped unexpectedly")
		}
	case <-ctx.Done():
	}

	log.Infow("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return err
	}

	log.Infow("server exited gracefully")
	return nil
}

func handleMigrations(ctx context.Context, environment, driver string, log logger.Interface) error {
	if skipMigrationCheck {
		log.Infow("skipping migration check")
		return nil
	}

	if autoMigrate {
		if environment == "production" {
			log.Warnw("auto-migration is enabled in production environment - this is not recommended!")
		}

		manager, err := migration.NewManager(environment, driver, log)
		if err != nil {
			return err
		}
		log.Infow("running auto-migration", "strategy", manager.GetStrategy().GetName())
		if err := manager.Migrate(ctx, database.Get()); err != nil {
			return fmt.Errorf("auto-migration failed: %w", err)
		}
		log.Infow("auto-migration completed successfully")
		return nil
	}

	strategy, err := migration.NewGooseStrategy(driver, log)
	if err != nil {
		return err
	}
	version, err := strategy.GetVersion(ctx, database.Get())
	if err != nil {
		log.Warnw("failed to check migration status", "error", err)
		return nil
	}
	log.Infow("current migration version", "version", version)
	return nil
}
