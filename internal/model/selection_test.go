package model

import "testing"

func TestParseAggMethod(t *testing.T) {
	cases := []struct {
		in      string
		want    AggMethod
		wantErr bool
	}{
		{"", Average, false},
		{"average", Average, false},
		{"AVG", Average, false},
		{"mean", Average, false},
		{"sum", Sum, false},
		{"Total", Sum, false},
		{"max", Max, false},
		{"MAXIMUM", Max, false},
		{" sum ", Sum, false},
		{"median", "", true},
	}
	for _, tc := range cases {
		got, err := ParseAggMethod(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseAggMethod(%q): err = %v, wantErr = %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseAggMethod(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestAggMethodLabel(t *testing.T) {
	if got := Average.Label(); got != "Average" {
		t.Errorf("got %q, want Average", got)
	}
	if got := Max.Label(); got != "Max" {
		t.Errorf("got %q, want Max", got)
	}
}

func TestSelectionIsEmpty(t *testing.T) {
	if !(Selection{}).IsEmpty() {
		t.Errorf("zero selection should be empty")
	}
	if (Selection{Zones: []string{"North"}}).IsEmpty() {
		t.Errorf("selection with a zone should not be empty")
	}
}
