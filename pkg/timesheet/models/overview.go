package models

import "time"

// ProjectTotal is the cumulative hours booked on one project.
type ProjectTotal struct {
	Project string  `json:"project"`
	Hours   float64 `json:"hours"`
}

// ProjectOverview lists project totals in first-encountered order.
type ProjectOverview []ProjectTotal

// Hours returns the total for a project code.
func (p ProjectOverview) Hours(project string) (float64, bool) {
	for _, t := range p {
		if t.Project == project {
			return t.Hours, true
		}
	}
	return 0, false
}

// WeekTotal is one employee's total for one week.
type WeekTotal struct {
	Week  time.Time `json:"week"`
	Hours float64   `json:"hours"`
}

// EmployeeWeeks holds every week total of one employee.
type EmployeeWeeks struct {
	Employee string      `json:"employee"`
	Weeks    []WeekTotal `json:"weeks"`
}

// EmployeeOverview lists employees in first-encountered order.
type EmployeeOverview []EmployeeWeeks

// Week returns the total for an employee and week-ending date.
func (e EmployeeOverview) Week(employee string, week time.Time) (float64, bool) {
	for _, emp := range e {
		if emp.Employee != employee {
			continue
		}
		for _, w := range emp.Weeks {
			if w.Week.Equal(week) {
				return w.Hours, true
			}
		}
	}
	return 0, false
}

// TimelineRow is a merged (employee, project) entry on one date.
type TimelineRow struct {
	Employee    string  `json:"employee"`
	Project     string  `json:"project"`
	Hours       float64 `json:"hours"`
	Description string  `json:"description"`
}

// TimelineDay holds the merged rows of one calendar date.
type TimelineDay struct {
	Date time.Time     `json:"date"`
	Rows []TimelineRow `json:"rows"`
}

// TimelineOverview holds one slot per calendar date, ascending.
type TimelineOverview []TimelineDay

// Overviews bundles the three report views.
type Overviews struct {
	Projects  ProjectOverview  `json:"projects"`
	Employees EmployeeOverview `json:"employees"`
	Timeline  TimelineOverview `json:"timeline"`
}
