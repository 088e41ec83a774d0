package today

import (
	"fmt"

	"github.com/ukaji3/timesheet-go/pkg/timesheet/models"
	"github.com/ukaji3/timesheet-go/pkg/timesheet/parser"
	"github.com/xuri/excelize/v2"
)

// Rows searched for a day label when clocking into a sheet.
const (
	clockFirstRow = 3
	clockLastRow  = 9
)

// Clock writes entries into the row of the given day of a timesheet
// workbook, each into the next free triple slot, and saves the workbook.
func Clock(path string, label models.DayLabel, entries ...models.ProjectEntry) error {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return err
	}
	defer f.Close()

	sheet := parser.ActiveSheet(f)
	if sheet == "" {
		return &parser.StructuralError{Reason: "workbook has no sheets"}
	}

	table, err := parser.ReadTable(f, sheet, path)
	if err != nil {
		return err
	}
	// Old layouts carry an extra leading column.
	shift := 0
	if parser.IsLegacy(table) {
		shift = 1
	}

	row, err := findDayRow(f, sheet, label, shift)
	if err != nil {
		return err
	}

	col := parser.FirstTripleColumn + shift + 1
	for _, e := range entries {
		col, err = nextFreeSlot(f, sheet, row, col)
		if err != nil {
			return err
		}
		if err := writeTriple(f, sheet, row, col, e); err != nil {
			return err
		}
		col += parser.TripleWidth
	}

	return f.Save()
}

func findDayRow(f *excelize.File, sheet string, label models.DayLabel, shift int) (int, error) {
	for r := clockFirstRow; r <= clockLastRow; r++ {
		cell, _ := excelize.CoordinatesToCellName(1+shift, r)
		v, err := f.GetCellValue(sheet, cell)
		if err != nil {
			return 0, err
		}
		if l, ok := models.ParseDayLabel(v); ok && l == label {
			return r, nil
		}
	}
	return 0, &parser.StructuralError{Reason: fmt.Sprintf("no row for %s in rows %d-%d", label, clockFirstRow, clockLastRow)}
}

// nextFreeSlot returns the first column at or after col whose project cell
// is empty.
func nextFreeSlot(f *excelize.File, sheet string, row, col int) (int, error) {
	for {
		cell, err := excelize.CoordinatesToCellName(col, row)
		if err != nil {
			return 0, err
		}
		v, err := f.GetCellValue(sheet, cell)
		if err != nil {
			return 0, err
		}
		if v == "" {
			return col, nil
		}
		col += parser.TripleWidth
	}
}

func writeTriple(f *excelize.File, sheet string, row, col int, e models.ProjectEntry) error {
	values := []interface{}{e.Project, e.Hours}
	if e.Description != "" {
		values = append(values, e.Description)
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}
