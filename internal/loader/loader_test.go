package loader

import (
	"errors"
	"reflect"
	"testing"

	"go-freight-dashboard/internal/engine"
	"go-freight-dashboard/internal/model"
)

func sampleValues() [][]string {
	return [][]string{
		{"ZONE", "Vehicle Type Corrected", "Month", "Freight Value", "TAT Value"},
		{"North", "Truck", "Jan", "100", "5"},
		{"South", "Van", "Jan", "200.5", "7"},
	}
}

func TestBuildTable(t *testing.T) {
	table, err := BuildTable(sampleValues())
	if err != nil {
		t.Fatalf("BuildTable: %v", err)
	}
	if table.Len() != 2 {
		t.Fatalf("got %d rows, want 2", table.Len())
	}
	if v, ok := table.Rows[1].Measure(model.ColFreight); !ok || v != 200.5 {
		t.Errorf("got freight %v (ok=%v), want 200.5", v, ok)
	}
	if table.Rows[0].Cells[model.ColZone] != "North" {
		t.Errorf("got zone %q, want North", table.Rows[0].Cells[model.ColZone])
	}
}

func TestBuildTableTrimsHeadersAndCells(t *testing.T) {
	values := sampleValues()
	values[0][0] = " ZONE "
	values[1][0] = " North "
	values[1][3] = " 100 "
	table, err := BuildTable(values)
	if err != nil {
		t.Fatalf("BuildTable: %v", err)
	}
	if !table.HasColumn(model.ColZone) {
		t.Errorf("padded header was not trimmed: columns %v", table.Columns)
	}
	if table.Rows[0].Cells[model.ColZone] != "North" {
		t.Errorf("got zone %q, want North", table.Rows[0].Cells[model.ColZone])
	}
}

func TestBuildTableDropsExtraCells(t *testing.T) {
	values := append(sampleValues(), []string{"East", "Truck", "Feb", "300", "9", "stray"})
	table, err := BuildTable(values)
	if err != nil {
		t.Fatalf("BuildTable: %v", err)
	}
	last := table.Rows[table.Len()-1]
	if got := len(last.Cells); got != len(table.Columns) {
		t.Errorf("got %d cells, want %d", got, len(table.Columns))
	}
}

func TestBuildTablePadsShortRows(t *testing.T) {
	values := [][]string{
		{"ZONE", "Vehicle Type Corrected", "Month", "Freight Value", "TAT Value", "Remarks"},
		{"North", "Truck", "Jan", "100", "5"},
	}
	table, err := BuildTable(values)
	if err != nil {
		t.Fatalf("BuildTable: %v", err)
	}
	if got := table.Rows[0].Cells["Remarks"]; got != "" {
		t.Errorf("got remarks %q, want empty", got)
	}
}

func TestBuildTableBadNumericCell(t *testing.T) {
	values := sampleValues()
	values[1][3] = "abc"
	table, err := BuildTable(values)
	if table != nil {
		t.Fatalf("a bad cell must fail the whole load, got a table")
	}
	var dfe *DataFormatError
	if !errors.As(err, &dfe) {
		t.Fatalf("got %T, want *DataFormatError", err)
	}
	if dfe.Column != model.ColFreight || dfe.Row != 1 {
		t.Errorf("got column %q row %d, want %q row 1", dfe.Column, dfe.Row, model.ColFreight)
	}
}

func TestBuildTableMissingHeader(t *testing.T) {
	values := [][]string{
		{"ZONE", "Month", "Freight Value", "TAT Value"},
		{"North", "Jan", "100", "5"},
	}
	_, err := BuildTable(values)
	var dfe *DataFormatError
	if !errors.As(err, &dfe) {
		t.Fatalf("got %T, want *DataFormatError", err)
	}
	if dfe.Column != model.ColVehicle {
		t.Errorf("got column %q, want %q", dfe.Column, model.ColVehicle)
	}
}

func TestBuildTableEmptyInput(t *testing.T) {
	if _, err := BuildTable(nil); err == nil {
		t.Errorf("empty input should fail")
	}
}

func TestLoadThenEmptyFilterRoundTrip(t *testing.T) {
	table, err := BuildTable(sampleValues())
	if err != nil {
		t.Fatalf("BuildTable: %v", err)
	}
	filtered := engine.ApplyFilter(table, model.Selection{})
	if !reflect.DeepEqual(filtered.Rows, table.Rows) {
		t.Errorf("empty-selection filter changed the loaded table")
	}
}
