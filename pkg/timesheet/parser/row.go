package parser

import (
	"fmt"
	"time"

	"github.com/ukaji3/timesheet-go/pkg/timesheet/models"
	"github.com/xuri/excelize/v2"
)

// Column layout of a current-format day row (0-based).
const (
	LabelColumn       = 0
	FirstTripleColumn = 2
	TripleWidth       = 3
)

// Triple is one raw (project, hours, description) group of a day row.
type Triple struct {
	Project string
	Hours   string
	// Description is nil when the cell is empty or absent.
	Description *string
	// HoursCell is the cell reference of the hours value.
	HoursCell string
}

// Row is a decoded day row: the label and the triples up to the first one
// without a project.
type Row struct {
	Label   models.DayLabel
	Triples []Triple
}

// DecodeRow decodes the cells of one day row. sheetRow is the 1-based row
// number, used for error messages and cell references.
func DecodeRow(cells []models.Cell, sheetRow int) (Row, error) {
	at := func(i int) models.Cell {
		if i < len(cells) {
			return cells[i]
		}
		return models.Cell{}
	}

	raw := at(LabelColumn).Value
	label, ok := models.ParseDayLabel(raw)
	if !ok {
		return Row{}, &StructuralError{Row: sheetRow, Reason: fmt.Sprintf("unrecognized day label %q", raw)}
	}

	row := Row{Label: label}
	for i := FirstTripleColumn; i < len(cells); i += TripleWidth {
		project := at(i)
		if project.Empty() {
			break
		}
		t := Triple{
			Project:   project.Value,
			Hours:     at(i + 1).Value,
			HoursCell: cellName(i+2, sheetRow),
		}
		if desc := at(i + 2); !desc.Empty() {
			v := desc.Value
			t.Description = &v
		}
		row.Triples = append(row.Triples, t)
	}
	return row, nil
}

// Resolve turns the row into a DayRecord dated relative to weekEnding.
func (r Row) Resolve(weekEnding time.Time, policy HoursPolicy) (models.DayRecord, error) {
	rec := models.DayRecord{
		Label:   r.Label,
		Date:    r.Label.Resolve(weekEnding),
		Entries: make([]models.ProjectEntry, 0, len(r.Triples)),
	}
	for _, t := range r.Triples {
		h, err := ParseHours(t.Hours, policy)
		if err != nil {
			if pe, ok := err.(*ParseError); ok {
				pe.Cell = t.HoursCell
			}
			return models.DayRecord{}, err
		}
		entry := models.ProjectEntry{Project: t.Project, Hours: h}
		if t.Description != nil {
			entry.Description = *t.Description
		}
		rec.Entries = append(rec.Entries, entry)
	}
	return rec, nil
}

func cellName(col, row int) string {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return ""
	}
	return name
}
