// Package export renders store data as spreadsheets.
package export

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"gearguard/internal/domain/equipment"
	"gearguard/internal/shared/biztime"
)

const EquipmentSheet = "Equipment"

var equipmentHeaders = []interface{}{
	"ID", "Name", "Serial Number", "Category", "Department", "Assigned Employee",
	"Purchase Date", "Warranty Expiry", "Location", "Status", "Team",
	"Open Requests", "Notes", "Created At",
}

// WriteEquipment writes one row per asset, in the order given, to w as an
// XLSX workbook.
func WriteEquipment(w io.Writer, listings []*equipment.Listing) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", EquipmentSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}
	if err := f.SetSheetRow(EquipmentSheet, "A1", &equipmentHeaders); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	lastCol, _ := excelize.ColumnNumberToName(len(equipmentHeaders))
	if err := f.SetCellStyle(EquipmentSheet, "A1", lastCol+"1", style); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	for i, l := range listings {
		e := l.Equipment
		row := []interface{}{
			e.ID(), e.Name(), e.SerialNumber(), e.Category(), e.Department(), e.AssignedEmployee(),
			formatOptionalDate(e.PurchaseDate()), formatOptionalDate(e.WarrantyExpiry()),
			e.Location(), e.Status().String(), l.TeamName,
			l.OpenRequestCount, e.Notes(), e.CreatedAt().UTC().Format(time.RFC3339),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(EquipmentSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	_ = f.SetColWidth(EquipmentSheet, "B", "B", 28)
	_ = f.SetColWidth(EquipmentSheet, "C", "F", 20)
	_ = f.SetColWidth(EquipmentSheet, "G", "K", 16)
	_ = f.SetColWidth(EquipmentSheet, "M", "M", 40)
	_ = f.SetColWidth(EquipmentSheet, "N", "N", 22)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func formatOptionalDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return biztime.FormatDate(*t)
}
