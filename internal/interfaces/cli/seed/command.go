package seed

import (
	"fmt"

	"github.com/spf13/cobra"

	"gearguard/internal/infrastructure/migration"
	"gearguard/internal/infrastructure/persistence/seeds"
	"gearguard/internal/interfaces/cli/bootstrap"
)

var (
	env     string
	migrate bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the sample data set",
		Long:  `Insert the bundled teams, members, equipment and requests into every table that is still empty.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&migrate, "migrate", true, "Migrate the schema before seeding")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	e, err := bootstrap.Setup(env)
	if err != nil {
		return err
	}
	defer e.Close()

	if migrate {
		manager, err := migration.NewManager(migration.StrategyGoose, e.Config.Database.Driver)
		if err != nil {
			return err
		}
		if err := manager.Migrate(e.DB); err != nil {
			return err
		}
	}

	data, err := seeds.Load()
	if err != nil {
		return err
	}
	result, err := seeds.Seed(cmd.Context(), e.DB, data)
	if err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d teams, %d members, %d equipment, %d requests\n",
		result.Teams, result.Members, result.Equipment, result.Requests)
	return nil
}
