package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"gearguard/internal/infrastructure/migration"
	"gearguard/internal/interfaces/cli/bootstrap"
)

var (
	env      string
	strategy string
	name     string
	steps    int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations including running migrations, checking status, and creating new migration files.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newCreateCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		Long:  `Apply all pending database migrations to bring the database schema up to date.`,
		RunE:  runUp,
	}

	cmd.Flags().StringVar(&strategy, "strategy", migration.StrategyGoose, "Migration strategy (goose, auto)")

	return cmd
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		Long:  `Rollback a specified number of database migrations.`,
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		Long:  `Display the current migration version and status of the database.`,
		RunE:  runStatus,
	}
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new migration",
		Long:  `Create a blank SQL migration for the configured driver under the source tree.`,
		RunE:  runCreate,
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the migration (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func runUp(cmd *cobra.Command, args []string) error {
	e, err := bootstrap.Setup(env)
	if err != nil {
		return err
	}
	defer e.Close()

	e.Log.Infow("running up migrations", "environment", env, "strategy", strategy)

	manager, err := migration.NewManager(strategy, e.Config.Database.Driver)
	if err != nil {
		return err
	}
	return manager.Migrate(e.DB)
}

func runDown(cmd *cobra.Command, args []string) error {
	e, err := bootstrap.Setup(env)
	if err != nil {
		return err
	}
	defer e.Close()

	e.Log.Infow("running down migrations", "environment", env, "steps", steps)

	gooseStrategy := migration.NewGooseStrategy(e.Config.Database.Driver)
	if err := gooseStrategy.MigrateDown(e.DB, steps); err != nil {
		return fmt.Errorf("down migration failed: %w", err)
	}
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	e, err := bootstrap.Setup(env)
	if err != nil {
		return err
	}
	defer e.Close()

	gooseStrategy := migration.NewGooseStrategy(e.Config.Database.Driver)
	version, err := gooseStrategy.GetVersion(e.DB)
	if err != nil {
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\nMigration Status:\n")
	fmt.Fprintf(out, "  Environment:     %s\n", env)
	fmt.Fprintf(out, "  Driver:          %s\n", e.Config.Database.Driver)
	fmt.Fprintf(out, "  Current Version: %d\n", version)

	if err := gooseStrategy.Status(e.DB); err != nil {
		return fmt.Errorf("failed to get detailed status: %w", err)
	}
	return nil
}

func runCreate(cmd *cobra.Command, args []string) error {
	cfg, err := bootstrap.LoadConfig(env)
	if err != nil {
		return err
	}

	gooseStrategy := migration.NewGooseStrategy(cfg.Database.Driver)
	if err := gooseStrategy.Create(migration.SourceScriptsDir, name); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Migration '%s' created for %s\n", name, cfg.Database.Driver)
	return nil
}
