package parser

import (
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/ukaji3/timesheet-go/pkg/timesheet/models"
)

// TitleMarker precedes the week-ending date in a sheet identifier.
const TitleMarker = "TimeSheet_w"

// DefaultExtension is the expected extension of a sheet identifier.
const DefaultExtension = ".xlsx"

// ParseTitle extracts the week anchor from an identifier of the form
// "<prefix>TimeSheet_w<YYYYMMDD>_<FL><ext>", e.g.
// "timesheets/TimeSheet_w20230106_AB.xlsx".
func ParseTitle(identifier, ext string) (models.WeekAnchor, error) {
	if ext == "" {
		ext = DefaultExtension
	}
	base := filepath.Base(identifier)
	if !strings.HasSuffix(strings.ToLower(base), strings.ToLower(ext)) {
		return models.WeekAnchor{}, &FormatError{Identifier: identifier, Reason: "expected extension " + ext}
	}
	base = base[:len(base)-len(ext)]

	idx := strings.LastIndex(base, TitleMarker)
	if idx < 0 {
		return models.WeekAnchor{}, &FormatError{Identifier: identifier, Reason: "missing " + TitleMarker}
	}
	title := base[idx+len(TitleMarker):]

	// YYYYMMDD_FL
	if len(title) != 11 || title[8] != '_' {
		return models.WeekAnchor{}, &FormatError{Identifier: identifier, Reason: "expected <YYYYMMDD>_<initials> after " + TitleMarker}
	}
	datePart, initials := title[:8], title[9:]

	for _, r := range initials {
		if !unicode.IsLetter(r) {
			return models.WeekAnchor{}, &FormatError{Identifier: identifier, Reason: "initials must be two letters"}
		}
	}

	date, err := time.Parse("20060102", datePart)
	if err != nil {
		return models.WeekAnchor{}, &ParseError{Field: "date", Value: datePart, Err: err}
	}

	return models.WeekAnchor{Initials: initials, WeekEnding: date}, nil
}
