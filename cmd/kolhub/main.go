package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/kolhub/kolhub/internal/interfaces/cli/migrate"
	"github.com/kolhub/kolhub/internal/interfaces/cli/server"
	"github.com/kolhub/kolhub/internal/interfaces/cli/sweep"
	"github.com/kolhub/kolhub/internal/interfaces/cli/token"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "kolhub",
		Short:        "KOLHub brand workspace backend",
		Long:         `KOLHub serves staff permission templates and brand subscription lifecycle APIs.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		sweep.NewCommand(),
		token.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
