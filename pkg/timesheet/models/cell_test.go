package models

import "testing"

func TestTableAt(t *testing.T) {
	table := Table{Rows: [][]Cell{
		{{Value: "a"}, {Value: "b"}},
		{},
		{{Value: "c"}},
	}}

	tests := []struct {
		row, col int
		expected string
	}{
		{1, 1, "a"},
		{1, 2, "b"},
		{1, 3, ""},
		{2, 1, ""},
		{3, 1, "c"},
		{4, 1, ""},
		{0, 1, ""},
	}
	for _, tt := range tests {
		if got := table.At(tt.row, tt.col).Value; got != tt.expected {
			t.Errorf("At(%d, %d) = %q, expected %q", tt.row, tt.col, got, tt.expected)
		}
	}
}

func TestDropFirstColumn(t *testing.T) {
	table := Table{Name: "x", Rows: [][]Cell{
		{{Value: "1"}, {Value: "2"}, {Value: "3"}},
		{},
		{{Value: "only"}},
	}}
	out := table.DropFirstColumn()

	if out.Name != "x" || len(out.Rows) != 3 {
		t.Fatalf("unexpected table %+v", out)
	}
	if len(out.Rows[0]) != 2 || out.Rows[0][0].Value != "2" {
		t.Errorf("row 1 = %+v", out.Rows[0])
	}
	if len(out.Rows[2]) != 0 {
		t.Errorf("row 3 = %+v", out.Rows[2])
	}
	if table.Rows[0][0].Value != "1" {
		t.Error("source table was modified")
	}
}
