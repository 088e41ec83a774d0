package output

import (
	"encoding/json"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/ukaji3/timesheet-go/pkg/timesheet/models"
	"github.com/xuri/excelize/v2"
)

func day(s string) time.Time {
	d, _ := time.Parse(models.DateLayout, s)
	return d
}

func overviews() *models.Overviews {
	return &models.Overviews{
		Projects: models.ProjectOverview{
			{Project: "PRJ1", Hours: 5},
			{Project: "PRJ2", Hours: 1.5},
		},
		Employees: models.EmployeeOverview{
			{Employee: "AB", Weeks: []models.WeekTotal{
				{Week: day("2023-01-06"), Hours: 5},
				{Week: day("2023-01-13"), Hours: 1.5},
			}},
		},
		Timeline: models.TimelineOverview{
			{Date: day("2023-01-04"), Rows: []models.TimelineRow{
				{Employee: "AB", Project: "PRJ1", Hours: 5, Description: "x (2.0), y (3.0)"},
			}},
			{Date: day("2023-01-05"), Rows: []models.TimelineRow{}},
			{Date: day("2023-01-06"), Rows: []models.TimelineRow{
				{Employee: "AB", Project: "PRJ2", Hours: 1.5, Description: "z"},
				{Employee: "CD", Project: "PRJ1", Hours: 0, Description: ""},
			}},
		},
	}
}

func TestTimelineCell(t *testing.T) {
	row := models.TimelineRow{Employee: "AB", Project: "PRJ1", Hours: 5, Description: "x (2.0), y (3.0)"}
	if got := TimelineCell(row); got != "AB, PRJ1 (5.0): x (2.0), y (3.0)" {
		t.Errorf("TimelineCell = %q", got)
	}
}

func TestRows(t *testing.T) {
	ov := overviews()

	employees := EmployeeRows(ov.Employees)
	expected := [][]interface{}{{"AB", "2023-01-06 - 5.0", "2023-01-13 - 1.5"}}
	if !reflect.DeepEqual(employees, expected) {
		t.Errorf("EmployeeRows = %v, expected %v", employees, expected)
	}

	timeline := TimelineRows(ov.Timeline)
	if len(timeline) != 3 {
		t.Fatalf("expected 3 timeline rows, got %d", len(timeline))
	}
	if !reflect.DeepEqual(timeline[1], []interface{}{"2023-01-05"}) {
		t.Errorf("empty date row = %v", timeline[1])
	}
	if timeline[2][2] != "CD, PRJ1 (0.0): " {
		t.Errorf("timeline cell = %q", timeline[2][2])
	}

	projects := ProjectRows(ov.Projects)
	if !reflect.DeepEqual(projects[1], []interface{}{"PRJ2", 1.5}) {
		t.Errorf("ProjectRows[1] = %v", projects[1])
	}
}

func TestWriteWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	if err := WriteWorkbook(path, overviews()); err != nil {
		t.Fatalf("WriteWorkbook failed: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("Failed to open report: %v", err)
	}
	defer f.Close()

	if got := f.GetSheetList(); !reflect.DeepEqual(got, []string{ProjectSheet, EmployeeSheet, TimelineSheet}) {
		t.Errorf("sheets = %v", got)
	}

	tests := []struct {
		sheet, cell, expected string
	}{
		{ProjectSheet, "A1", "PRJ1"},
		{ProjectSheet, "B1", "5"},
		{ProjectSheet, "B2", "1.5"},
		{EmployeeSheet, "A1", "AB"},
		{EmployeeSheet, "C1", "2023-01-13 - 1.5"},
		{TimelineSheet, "A2", "2023-01-05"},
		{TimelineSheet, "B2", ""},
		{TimelineSheet, "B3", "AB, PRJ2 (1.5): z"},
	}
	for _, tt := range tests {
		v, err := f.GetCellValue(tt.sheet, tt.cell)
		if err != nil {
			t.Errorf("GetCellValue(%s, %s) failed: %v", tt.sheet, tt.cell, err)
			continue
		}
		if v != tt.expected {
			t.Errorf("%s!%s = %q, expected %q", tt.sheet, tt.cell, v, tt.expected)
		}
	}

	width, err := f.GetColWidth(TimelineSheet, "B")
	if err != nil {
		t.Fatalf("GetColWidth failed: %v", err)
	}
	if want := float64(len("AB, PRJ1 (5.0): x (2.0), y (3.0)")) * widthFactor; width != want {
		t.Errorf("column B width = %v, expected %v", width, want)
	}
}

func TestWriteWorkbookEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	if err := WriteWorkbook(path, &models.Overviews{}); err != nil {
		t.Fatalf("WriteWorkbook failed: %v", err)
	}
}

func TestToJSON(t *testing.T) {
	data, err := ToJSON(overviews(), false)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	var back models.Overviews
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if len(back.Timeline) != 3 || back.Timeline[0].Rows[0].Hours != 5 {
		t.Errorf("unexpected round trip %+v", back)
	}
}
