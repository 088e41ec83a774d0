package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/timesheet-go/pkg/timesheet/models"
)

const (
	// FirstDayRow is the 1-based sheet row of the first day.
	FirstDayRow = 4
	// DayRows is the number of day rows in a sheet.
	DayRows = 6

	// LegacyMarkerCell holds LegacyMarkerFormula in sheets of the old
	// layout, which carry an extra leading date column.
	LegacyMarkerCell    = "A4"
	LegacyMarkerFormula = "A3+1"
)

// IsLegacy reports whether the table uses the old layout.
func IsLegacy(t models.Table) bool {
	c := t.At(FirstDayRow, 1)
	if strings.TrimPrefix(c.Formula, "=") == LegacyMarkerFormula {
		return true
	}
	return strings.TrimSpace(c.Value) == "="+LegacyMarkerFormula
}

// Normalize converts a legacy-layout table to the current layout. Tables
// already in the current layout are returned unchanged.
func Normalize(t models.Table) (models.Table, bool) {
	if !IsLegacy(t) {
		return t, false
	}
	return t.DropFirstColumn(), true
}

// DayRegion returns the six day rows of a current-layout table.
func DayRegion(t models.Table) ([][]models.Cell, error) {
	last := FirstDayRow + DayRows - 1
	if len(t.Rows) < last {
		reason := fmt.Sprintf("expected %d day rows starting at row %d, sheet has %d rows", DayRows, FirstDayRow, len(t.Rows))
		if used := Bounds(t); used != "" {
			reason += ", used range " + used
		}
		return nil, &StructuralError{Reason: reason}
	}
	return t.Rows[FirstDayRow-1 : last], nil
}
