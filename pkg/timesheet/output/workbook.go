package output

import (
	"fmt"

	"github.com/ukaji3/timesheet-go/pkg/timesheet/models"
	"github.com/xuri/excelize/v2"
)

// widthFactor scales the longest cell text of a column to a column width.
const widthFactor = 1.2

// NewWorkbook builds the report workbook with one sheet per overview. The
// default sheet of a new workbook is removed.
func NewWorkbook(ov *models.Overviews) (*excelize.File, error) {
	f := excelize.NewFile()
	defaultSheet := f.GetSheetName(0)

	views := []struct {
		name string
		rows [][]interface{}
	}{
		{ProjectSheet, ProjectRows(ov.Projects)},
		{EmployeeSheet, EmployeeRows(ov.Employees)},
		{TimelineSheet, TimelineRows(ov.Timeline)},
	}
	for _, v := range views {
		if _, err := f.NewSheet(v.name); err != nil {
			f.Close()
			return nil, err
		}
		if err := writeRows(f, v.name, v.rows); err != nil {
			f.Close()
			return nil, fmt.Errorf("sheet %q: %w", v.name, err)
		}
	}

	if err := f.DeleteSheet(defaultSheet); err != nil {
		f.Close()
		return nil, err
	}
	if idx, err := f.GetSheetIndex(ProjectSheet); err == nil && idx >= 0 {
		f.SetActiveSheet(idx)
	}
	return f, nil
}

// WriteWorkbook renders the overviews and saves them to path.
func WriteWorkbook(path string, ov *models.Overviews) error {
	f, err := NewWorkbook(ov)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.SaveAs(path)
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	var widths []int
	for r, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, r+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
		for c, v := range row {
			if c >= len(widths) {
				widths = append(widths, 0)
			}
			if n := len(fmt.Sprint(v)); n > widths[c] {
				widths[c] = n
			}
		}
	}
	return adjustColumnWidths(f, sheet, widths)
}

// adjustColumnWidths sizes each column to its longest text.
func adjustColumnWidths(f *excelize.File, sheet string, widths []int) error {
	for c, n := range widths {
		if n == 0 {
			continue
		}
		col, err := excelize.ColumnNumberToName(c + 1)
		if err != nil {
			return err
		}
		width := float64(n) * widthFactor
		if width > 255 {
			width = 255
		}
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return err
		}
	}
	return nil
}
