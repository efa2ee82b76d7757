package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gearguard/internal/interfaces/cli/export"
	"gearguard/internal/interfaces/cli/migrate"
	"gearguard/internal/interfaces/cli/seed"
	"gearguard/internal/interfaces/cli/server"
	"gearguard/internal/shared/version"
)

// @title GearGuard API
// @version 1.0
// @description Maintenance tracking for teams, equipment and maintenance requests.
// @BasePath /
func main() {
	rootCmd := &cobra.Command{
		Use:     "gearguard",
		Short:   "GearGuard - equipment maintenance tracker",
		Long:    `GearGuard tracks maintenance teams, the equipment they look after and the requests raised against it.`,
		Version: version.String(),
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
		export.NewCommand(),
		&cobra.Command{
			Use:   "version",
			Short: "Print the build version",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintln(cmd.OutOrStdout(), version.String())
			},
		},
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
