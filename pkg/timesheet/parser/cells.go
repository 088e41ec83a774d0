// Package parser decodes timesheet spreadsheets into timesheet models.
package parser

import (
	"github.com/ukaji3/timesheet-go/pkg/timesheet/models"
	"github.com/xuri/excelize/v2"
)

// ActiveSheet returns the name of the workbook's active sheet, falling back
// to the first sheet.
func ActiveSheet(f *excelize.File) string {
	if name := f.GetSheetName(f.GetActiveSheetIndex()); name != "" {
		return name
	}
	list := f.GetSheetList()
	if len(list) == 0 {
		return ""
	}
	return list[0]
}

// ReadTable reads the raw cell grid of a sheet. Values are unformatted so
// numeric cells keep their stored precision; formulas are captured without
// the leading '='.
func ReadTable(f *excelize.File, sheetName, tableName string) (models.Table, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return models.Table{}, err
	}

	table := models.Table{Name: tableName, Rows: make([][]models.Cell, len(rows))}
	for rowIdx, row := range rows {
		cells := make([]models.Cell, len(row))
		for colIdx, value := range row {
			cells[colIdx].Value = value
		}
		table.Rows[rowIdx] = cells
	}

	// The legacy marker is a formula; fetch it even when no value is cached.
	if formula, err := f.GetCellFormula(sheetName, LegacyMarkerCell); err == nil && formula != "" {
		col, row, _ := excelize.CellNameToCoordinates(LegacyMarkerCell)
		for len(table.Rows) < row {
			table.Rows = append(table.Rows, nil)
		}
		for len(table.Rows[row-1]) < col {
			table.Rows[row-1] = append(table.Rows[row-1], models.Cell{})
		}
		table.Rows[row-1][col-1].Formula = formula
	}

	return table, nil
}

// Bounds returns the range (e.g. "A1:K9") spanning every non-empty cell,
// or "" for an empty table.
func Bounds(t models.Table) string {
	minRow, maxRow, minCol, maxCol := findDataBounds(t.Rows)
	if minRow < 0 {
		return ""
	}
	start, _ := excelize.CoordinatesToCellName(minCol+1, minRow+1)
	end, _ := excelize.CoordinatesToCellName(maxCol+1, maxRow+1)
	return start + ":" + end
}

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(rows [][]models.Cell) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell.Empty() && cell.Formula == "" {
				continue
			}
			if minRow < 0 || rowIdx < minRow {
				minRow = rowIdx
			}
			if rowIdx > maxRow {
				maxRow = rowIdx
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}
