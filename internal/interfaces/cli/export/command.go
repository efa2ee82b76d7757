package export

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gearguard/internal/domain/equipment"
	vo "gearguard/internal/domain/equipment/valueobjects"
	"gearguard/internal/interfaces/cli/bootstrap"
	httpRouter "gearguard/internal/interfaces/http"
	"gearguard/internal/shared/biztime"
	"gearguard/internal/shared/utils"
)

var (
	env    string
	output string
	status string
	teamID uint
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export data to spreadsheets",
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(newEquipmentCommand())

	return cmd
}

func newEquipmentCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "equipment",
		Short: "Export equipment to an XLSX file",
		RunE:  runEquipment,
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default equipment-YYYYMMDD.xlsx)")
	cmd.Flags().StringVar(&status, "status", "", "Only export equipment with this status")
	cmd.Flags().UintVar(&teamID, "team-id", 0, "Only export equipment maintained by this team")

	return cmd
}

func buildFilter() (equipment.Filter, error) {
	var filter equipment.Filter
	if status != "" {
		s, err := vo.NewStatus(utils.NormalizeLabel(status))
		if err != nil {
			return filter, err
		}
		filter.Status = &s
	}
	if teamID != 0 {
		id := teamID
		filter.TeamID = &id
	}
	return filter, nil
}

func runEquipment(cmd *cobra.Command, args []string) error {
	filter, err := buildFilter()
	if err != nil {
		return err
	}

	e, err := bootstrap.Setup(env)
	if err != nil {
		return err
	}
	defer e.Close()

	container, err := httpRouter.NewContainer(e.DB, e.Config, e.Log)
	if err != nil {
		return err
	}

	if output == "" {
		output = fmt.Sprintf("equipment-%s.xlsx", biztime.Today().Format("20060102"))
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", output, err)
	}

	n, err := container.EquipmentExporter().Execute(cmd.Context(), filter, f)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(output)
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d equipment rows to %s\n", n, output)
	return nil
}
