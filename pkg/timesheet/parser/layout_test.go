package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/ukaji3/timesheet-go/pkg/timesheet/models"
)

func TestIsLegacy(t *testing.T) {
	withA4 := func(c models.Cell) models.Table {
		rows := make([][]models.Cell, 9)
		rows[3] = []models.Cell{c, {Value: "Friday"}}
		return models.Table{Rows: rows}
	}

	tests := []struct {
		name     string
		table    models.Table
		expected bool
	}{
		{"formula", withA4(models.Cell{Value: "44932", Formula: "A3+1"}), true},
		{"formula with equals", withA4(models.Cell{Formula: "=A3+1"}), true},
		{"formula text", withA4(models.Cell{Value: "=A3+1"}), true},
		{"day label", withA4(models.Cell{Value: "Friday"}), false},
		{"other formula", withA4(models.Cell{Formula: "A3+2"}), false},
		{"empty table", models.Table{}, false},
	}
	for _, tt := range tests {
		if got := IsLegacy(tt.table); got != tt.expected {
			t.Errorf("%s: IsLegacy = %v, expected %v", tt.name, got, tt.expected)
		}
	}
}

func TestNormalize(t *testing.T) {
	rows := make([][]models.Cell, 9)
	rows[3] = []models.Cell{{Formula: "A3+1"}, {Value: "Friday"}, {}, {Value: "P1"}}
	out, legacy := Normalize(models.Table{Rows: rows})
	if !legacy {
		t.Fatal("expected legacy layout")
	}
	if got := out.At(4, 1).Value; got != "Friday" {
		t.Errorf("A4 after normalize = %q, expected Friday", got)
	}
	if got := out.At(4, 3).Value; got != "P1" {
		t.Errorf("C4 after normalize = %q, expected P1", got)
	}

	current := models.Table{Rows: [][]models.Cell{{{Value: "x"}}}}
	if _, legacy := Normalize(current); legacy {
		t.Error("current layout reported as legacy")
	}
}

func TestDayRegion(t *testing.T) {
	short := models.Table{Rows: make([][]models.Cell, 8)}
	short.Rows[1] = []models.Cell{{}, {Value: "AB"}}
	short.Rows[7] = []models.Cell{{}, {}, {}, {}, {Value: "x"}}
	_, err := DayRegion(short)
	var se *StructuralError
	if !errors.As(err, &se) {
		t.Fatalf("expected StructuralError, got %v", err)
	}
	if !strings.Contains(se.Reason, "used range B2:E8") {
		t.Errorf("reason %q lacks the used range", se.Reason)
	}

	region, err := DayRegion(models.Table{Rows: make([][]models.Cell, 12)})
	if err != nil {
		t.Fatalf("DayRegion failed: %v", err)
	}
	if len(region) != DayRows {
		t.Errorf("expected %d rows, got %d", DayRows, len(region))
	}
}
