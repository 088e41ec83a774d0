// Package models defines data structures for timesheet ingestion and reporting.
package models

import "strings"

// Cell is a single raw spreadsheet cell.
type Cell struct {
	// Value is the raw (unformatted) cell value.
	Value string `json:"value,omitempty"`
	// Formula is the cell formula without the leading '=' (empty if none).
	Formula string `json:"formula,omitempty"`
}

// Empty reports whether the cell carries no value.
func (c Cell) Empty() bool {
	return strings.TrimSpace(c.Value) == ""
}

// Table is the raw 2-D cell grid of one sheet.
type Table struct {
	// Name is the sheet identifier (usually the source file name).
	Name string `json:"name"`
	// Rows holds cells in row-major order; rows may have differing lengths.
	Rows [][]Cell `json:"rows"`
}

// At returns the cell at the 1-based row and column, or an empty cell when
// the position lies outside the grid.
func (t Table) At(row, col int) Cell {
	if row < 1 || row > len(t.Rows) {
		return Cell{}
	}
	r := t.Rows[row-1]
	if col < 1 || col > len(r) {
		return Cell{}
	}
	return r[col-1]
}

// DropFirstColumn returns a copy of the table with column A removed from
// every row.
func (t Table) DropFirstColumn() Table {
	out := Table{Name: t.Name, Rows: make([][]Cell, len(t.Rows))}
	for i, row := range t.Rows {
		if len(row) == 0 {
			continue
		}
		out.Rows[i] = append([]Cell(nil), row[1:]...)
	}
	return out
}
