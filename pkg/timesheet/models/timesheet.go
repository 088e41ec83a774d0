package models

import "time"

// ProjectEntry is one (project, hours, description) triple.
type ProjectEntry struct {
	Project     string  `json:"project"`
	Hours       float64 `json:"hours"`
	Description string  `json:"description"`
}

// DayRecord holds the entries booked on one resolved date.
type DayRecord struct {
	Label   DayLabel       `json:"label"`
	Date    time.Time      `json:"date"`
	Entries []ProjectEntry `json:"entries"`
}

// Timesheet is one decoded weekly sheet. It is read-only once built.
type Timesheet struct {
	// Source is the identifier the sheet was loaded from.
	Source     string    `json:"source"`
	Employee   string    `json:"employee"`
	WeekEnding time.Time `json:"week_ending"`
	// Days holds one record per DayLabel, in offset order.
	Days []DayRecord `json:"days"`
}

// TotalHours sums every entry across all days.
func (t Timesheet) TotalHours() float64 {
	var sum float64
	for _, day := range t.Days {
		for _, e := range day.Entries {
			sum += e.Hours
		}
	}
	return sum
}
