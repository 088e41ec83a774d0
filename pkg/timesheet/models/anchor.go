package models

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the layout used for week keys and timeline dates.
const DateLayout = "2006-01-02"

// WeekAnchor identifies who filled a sheet and the week it covers.
type WeekAnchor struct {
	Initials   string    `json:"initials"`
	WeekEnding time.Time `json:"week_ending"`
}

// DayLabel is one of the six working days a timesheet covers. Saturday is
// not part of a timesheet week.
type DayLabel int

const (
	Friday DayLabel = iota
	Thursday
	Wednesday
	Tuesday
	Monday
	Sunday
)

// DayLabels lists every label in offset order, Friday first.
var DayLabels = []DayLabel{Friday, Thursday, Wednesday, Tuesday, Monday, Sunday}

var dayNames = [...]string{"Friday", "Thursday", "Wednesday", "Tuesday", "Monday", "Sunday"}

// Offset is the number of days the label lies before the week-ending date.
func (d DayLabel) Offset() int {
	return int(d)
}

// Valid reports whether d is one of the six known labels.
func (d DayLabel) Valid() bool {
	return d >= Friday && d <= Sunday
}

func (d DayLabel) String() string {
	if !d.Valid() {
		return fmt.Sprintf("DayLabel(%d)", int(d))
	}
	return dayNames[d]
}

// Resolve returns the calendar date of this day within the anchor's week.
func (d DayLabel) Resolve(weekEnding time.Time) time.Time {
	return weekEnding.AddDate(0, 0, -d.Offset())
}

// ParseDayLabel matches a day name case-insensitively.
func ParseDayLabel(s string) (DayLabel, bool) {
	s = strings.TrimSpace(s)
	for i, name := range dayNames {
		if strings.EqualFold(name, s) {
			return DayLabel(i), true
		}
	}
	return 0, false
}

// MarshalText implements encoding.TextMarshaler.
func (d DayLabel) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("invalid day label %d", int(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *DayLabel) UnmarshalText(b []byte) error {
	l, ok := ParseDayLabel(string(b))
	if !ok {
		return fmt.Errorf("unknown day label %q", string(b))
	}
	*d = l
	return nil
}
