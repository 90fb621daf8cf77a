// Package sweep runs the subscription lifecycle jobs once, outside the server.
package sweep

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kolhub/kolhub/internal/infrastructure/database"
	"github.com/kolhub/kolhub/internal/infrastructure/scheduler"
	httpRouter "github.com/kolhub/kolhub/internal/interfaces/http"
	"github.com/kolhub/kolhub/internal/interfaces/cli/common"
)

var (
	env       string
	reminders bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Lock expired brands now",
		Long: `Run the expired-brand lock sweep once. With --reminders the expiry
reminder e-mails are sent afterwards. Both jobs take the same lease as the
scheduler, so a run is skipped while a server instance is executing it.`,
		RunE: run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&reminders, "reminders", false, "Also send expiry reminder e-mails")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	env = common.ResolveEnv(env)

	cfg, log, err := common.InitWithDatabase(env)
	if err != nil {
		return err
	}
	defer database.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Subscription.JobTimeout())
	defer cancel()

	container, err := httpRouter.NewContainer(ctx, database.Get(), cfg, log)
	if err != nil {
		return fmt.Errorf("failed to build application: %w", err)
	}
	defer container.Shutdown()

	jobs := []string{scheduler.JobLockSweep}
	if reminders {
		jobs = append(jobs, scheduler.JobExpiryReminders)
	}

	for _, job := range jobs {
		ran, err := container.RunJob(ctx, job)
		if err != nil {
			return err
		}
		if !ran {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: skipped, lease held by another instance\n", job)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: done\n", job)
	}
	return nil
}
