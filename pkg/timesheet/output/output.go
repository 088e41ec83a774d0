// Package output renders report overviews as an xlsx workbook or JSON.
package output

import (
	"encoding/json"
	"fmt"

	"github.com/ukaji3/timesheet-go/pkg/timesheet/models"
	"github.com/ukaji3/timesheet-go/pkg/timesheet/parser"
)

// Sheet names of the report workbook.
const (
	ProjectSheet  = "Project Overview"
	EmployeeSheet = "Employee Overview"
	TimelineSheet = "Timeline Overview"
)

// ProjectRows renders project totals as (code, hours) rows.
func ProjectRows(p models.ProjectOverview) [][]interface{} {
	rows := make([][]interface{}, 0, len(p))
	for _, t := range p {
		rows = append(rows, []interface{}{t.Project, t.Hours})
	}
	return rows
}

// EmployeeRows renders one row per employee: the initials followed by one
// "<week> - <hours>" cell per week.
func EmployeeRows(e models.EmployeeOverview) [][]interface{} {
	rows := make([][]interface{}, 0, len(e))
	for _, emp := range e {
		row := []interface{}{emp.Employee}
		for _, w := range emp.Weeks {
			row = append(row, fmt.Sprintf("%s - %s", w.Week.Format(models.DateLayout), parser.FormatHours(w.Hours)))
		}
		rows = append(rows, row)
	}
	return rows
}

// TimelineRows renders one row per date: the date followed by one
// "<employee>, <project> (<hours>): <description>" cell per merged entry.
func TimelineRows(t models.TimelineOverview) [][]interface{} {
	rows := make([][]interface{}, 0, len(t))
	for _, day := range t {
		row := []interface{}{day.Date.Format(models.DateLayout)}
		for _, r := range day.Rows {
			row = append(row, TimelineCell(r))
		}
		rows = append(rows, row)
	}
	return rows
}

// TimelineCell formats one merged timeline row.
func TimelineCell(r models.TimelineRow) string {
	return fmt.Sprintf("%s, %s (%s): %s", r.Employee, r.Project, parser.FormatHours(r.Hours), r.Description)
}

// ToJSON serializes the overviews.
func ToJSON(ov *models.Overviews, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(ov, "", "  ")
	}
	return json.Marshal(ov)
}
