// Package aggregate folds decoded timesheets into report overviews.
//
// Every fold is pure: it never fails, never mutates its input, and yields
// identical results when run again over the same timesheets in the same
// order.
package aggregate

import (
	"strings"
	"time"

	"github.com/ukaji3/timesheet-go/pkg/timesheet/models"
	"github.com/ukaji3/timesheet-go/pkg/timesheet/parser"
)

// All runs the three folds.
func All(sheets []models.Timesheet) models.Overviews {
	return models.Overviews{
		Projects:  Projects(sheets),
		Employees: Employees(sheets),
		Timeline:  Timeline(sheets),
	}
}

// Projects sums hours per project code, in first-encountered order.
func Projects(sheets []models.Timesheet) models.ProjectOverview {
	overview := models.ProjectOverview{}
	index := make(map[string]int)
	for _, sheet := range sheets {
		for _, day := range sheet.Days {
			for _, e := range day.Entries {
				i, ok := index[e.Project]
				if !ok {
					i = len(overview)
					index[e.Project] = i
					overview = append(overview, models.ProjectTotal{Project: e.Project})
				}
				overview[i].Hours += e.Hours
			}
		}
	}
	return overview
}

// Employees stores each sheet's total under its employee and week-ending
// date. A later sheet for the same employee and week replaces the earlier
// total rather than adding to it.
func Employees(sheets []models.Timesheet) models.EmployeeOverview {
	overview := models.EmployeeOverview{}
	index := make(map[string]int)
	for _, sheet := range sheets {
		i, ok := index[sheet.Employee]
		if !ok {
			i = len(overview)
			index[sheet.Employee] = i
			overview = append(overview, models.EmployeeWeeks{Employee: sheet.Employee})
		}

		emp := &overview[i]
		total := sheet.TotalHours()
		replaced := false
		for w := range emp.Weeks {
			if emp.Weeks[w].Week.Equal(sheet.WeekEnding) {
				emp.Weeks[w].Hours = total
				replaced = true
				break
			}
		}
		if !replaced {
			emp.Weeks = append(emp.Weeks, models.WeekTotal{Week: sheet.WeekEnding, Hours: total})
		}
	}
	return overview
}

type mergeKey struct {
	employee string
	project  string
}

// pending collects the entries of one (employee, project) key on one date.
type pending struct {
	key     mergeKey
	entries []models.ProjectEntry
}

// Timeline builds one slot per calendar date between the earliest and the
// latest entry date, inclusive. Entries with the same employee and project
// on the same date are merged into one row.
func Timeline(sheets []models.Timesheet) models.TimelineOverview {
	first, last, ok := entryRange(sheets)
	if !ok {
		return models.TimelineOverview{}
	}

	// Bucket by date, preserving sheet order within a date.
	byDate := make(map[time.Time][]*pending)
	lookup := make(map[time.Time]map[mergeKey]*pending)
	for _, sheet := range sheets {
		for _, day := range sheet.Days {
			date := dateOnly(day.Date)
			for _, e := range day.Entries {
				key := mergeKey{employee: sheet.Employee, project: e.Project}
				keys := lookup[date]
				if keys == nil {
					keys = make(map[mergeKey]*pending)
					lookup[date] = keys
				}
				p, found := keys[key]
				if !found {
					p = &pending{key: key}
					keys[key] = p
					byDate[date] = append(byDate[date], p)
				}
				p.entries = append(p.entries, e)
			}
		}
	}

	var timeline models.TimelineOverview
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		slot := models.TimelineDay{Date: d, Rows: []models.TimelineRow{}}
		for _, p := range byDate[d] {
			slot.Rows = append(slot.Rows, p.merge())
		}
		timeline = append(timeline, slot)
	}
	return timeline
}

func (p *pending) merge() models.TimelineRow {
	row := models.TimelineRow{Employee: p.key.employee, Project: p.key.project}
	if len(p.entries) == 1 {
		row.Hours = p.entries[0].Hours
		row.Description = p.entries[0].Description
		return row
	}

	parts := make([]string, len(p.entries))
	for i, e := range p.entries {
		row.Hours += e.Hours
		parts[i] = e.Description + " (" + parser.FormatHours(e.Hours) + ")"
	}
	row.Description = strings.Join(parts, ", ")
	return row
}

// entryRange returns the earliest and latest date carrying at least one
// entry.
func entryRange(sheets []models.Timesheet) (first, last time.Time, ok bool) {
	for _, sheet := range sheets {
		for _, day := range sheet.Days {
			if len(day.Entries) == 0 {
				continue
			}
			d := dateOnly(day.Date)
			if !ok || d.Before(first) {
				first = d
			}
			if !ok || d.After(last) {
				last = d
			}
			ok = true
		}
	}
	return
}

// dateOnly truncates t to midnight UTC of its calendar date so dates from
// cached and freshly parsed sheets compare equal as map keys.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
