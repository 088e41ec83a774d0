package parser

import (
	"errors"
	"testing"
	"time"
)

func TestParseTitle(t *testing.T) {
	tests := []struct {
		input    string
		initials string
		date     string
	}{
		{"TimeSheet_w20230106_AB.xlsx", "AB", "2023-01-06"},
		{"timesheets/TimeSheet_w20230113_CD.xlsx", "CD", "2023-01-13"},
		{`timesheets\TimeSheet_w20221230_EF.XLSX`, "EF", "2022-12-30"},
		{"ACME_TimeSheet_w20240105_gh.xlsx", "gh", "2024-01-05"},
	}

	for _, tt := range tests {
		got, err := ParseTitle(tt.input, "")
		if err != nil {
			t.Errorf("ParseTitle(%q) failed: %v", tt.input, err)
			continue
		}
		if got.Initials != tt.initials {
			t.Errorf("ParseTitle(%q) initials = %q, expected %q", tt.input, got.Initials, tt.initials)
		}
		if d := got.WeekEnding.Format("2006-01-02"); d != tt.date {
			t.Errorf("ParseTitle(%q) date = %s, expected %s", tt.input, d, tt.date)
		}
		if got.WeekEnding.Location() != time.UTC {
			t.Errorf("ParseTitle(%q) date not in UTC", tt.input)
		}
	}
}

func TestParseTitleErrors(t *testing.T) {
	tests := []struct {
		input       string
		formatError bool
	}{
		{"TimeSheet_w20230106_AB.xls", true},
		{"Report_w20230106_AB.xlsx", true},
		{"TimeSheet_w20230106AB.xlsx", true},
		{"TimeSheet_w2023016_AB.xlsx", true},
		{"TimeSheet_w20230106_ABC.xlsx", true},
		{"TimeSheet_w20230106_A1.xlsx", true},
		{"TimeSheet_w20231306_AB.xlsx", false},
		{"TimeSheet_wABCDEFGH_AB.xlsx", false},
	}

	for _, tt := range tests {
		_, err := ParseTitle(tt.input, ".xlsx")
		if err == nil {
			t.Errorf("ParseTitle(%q) expected error", tt.input)
			continue
		}
		var fe *FormatError
		var pe *ParseError
		switch {
		case tt.formatError && !errors.As(err, &fe):
			t.Errorf("ParseTitle(%q) = %v, expected FormatError", tt.input, err)
		case !tt.formatError && !errors.As(err, &pe):
			t.Errorf("ParseTitle(%q) = %v, expected ParseError", tt.input, err)
		}
	}
}
