package engine

import (
	"reflect"
	"testing"

	"go-freight-dashboard/internal/model"
)

func TestAggregateAverageAfterFilter(t *testing.T) {
	in := &model.Table{
		Columns: []string{model.ColZone, model.ColVehicle, model.ColMonth, model.ColFreight, model.ColTAT},
		Rows: []model.Row{
			row("North", "Truck", "Jan", 100, 5),
			row("South", "Van", "Jan", 200, 7),
		},
	}
	filtered := ApplyFilter(in, model.Selection{Zones: []string{"North"}})
	got := Aggregate(filtered, model.Average)

	if got.Len() != 1 {
		t.Fatalf("got %d groups, want 1", got.Len())
	}
	g := got.Rows[0]
	if g.Cells[model.ColMonth] != "Jan" {
		t.Errorf("got month %q, want Jan", g.Cells[model.ColMonth])
	}
	if v, _ := g.Measure(model.ColFreight); v != 100 {
		t.Errorf("got freight %v, want 100", v)
	}
	if v, _ := g.Measure(model.ColTAT); v != 5 {
		t.Errorf("got tat %v, want 5", v)
	}
}

func TestAggregateReducers(t *testing.T) {
	in := &model.Table{
		Columns: []string{model.ColMonth, model.ColFreight, model.ColTAT},
		Rows: []model.Row{
			row("", "", "Jan", 100, 5),
			row("", "", "Jan", 200, 7),
			row("", "", "Feb", 50, 3),
		},
	}

	cases := []struct {
		method   model.AggMethod
		wantJanF float64
		wantJanT float64
		wantFebF float64
	}{
		{model.Average, 150, 6, 50},
		{model.Sum, 300, 12, 50},
		{model.Max, 200, 7, 50},
	}
	for _, tc := range cases {
		got := Aggregate(in, tc.method)
		if got.Len() != 2 {
			t.Fatalf("%s: got %d groups, want 2", tc.method, got.Len())
		}
		if v, _ := got.Rows[0].Measure(model.ColFreight); v != tc.wantJanF {
			t.Errorf("%s: Jan freight = %v, want %v", tc.method, v, tc.wantJanF)
		}
		if v, _ := got.Rows[0].Measure(model.ColTAT); v != tc.wantJanT {
			t.Errorf("%s: Jan tat = %v, want %v", tc.method, v, tc.wantJanT)
		}
		if v, _ := got.Rows[1].Measure(model.ColFreight); v != tc.wantFebF {
			t.Errorf("%s: Feb freight = %v, want %v", tc.method, v, tc.wantFebF)
		}
	}
}

func TestAggregateSingleRowIdentity(t *testing.T) {
	in := &model.Table{
		Columns: []string{model.ColMonth, model.ColFreight, model.ColTAT},
		Rows:    []model.Row{row("", "", "Mar", 42, 3.5)},
	}
	for _, method := range model.Methods {
		got := Aggregate(in, method)
		if v, _ := got.Rows[0].Measure(model.ColFreight); v != 42 {
			t.Errorf("%s on a single row: freight = %v, want 42", method, v)
		}
	}
}

func TestAggregateMaxNeverDecreasesWhenRowsAreAdded(t *testing.T) {
	base := &model.Table{
		Columns: []string{model.ColMonth, model.ColFreight, model.ColTAT},
		Rows: []model.Row{
			row("", "", "Jan", 100, 5),
			row("", "", "Jan", 80, 9),
		},
	}
	before := Aggregate(base, model.Max)

	grown := &model.Table{Columns: base.Columns, Rows: append(append([]model.Row{}, base.Rows...),
		row("", "", "Jan", 60, 2))}
	after := Aggregate(grown, model.Max)

	for _, col := range []string{model.ColFreight, model.ColTAT} {
		b, _ := before.Rows[0].Measure(col)
		a, _ := after.Rows[0].Measure(col)
		if a < b {
			t.Errorf("%s: max dropped from %v to %v after adding a row", col, b, a)
		}
	}
}

func TestAggregateGroupsInFirstSeenOrder(t *testing.T) {
	in := &model.Table{
		Columns: []string{model.ColMonth, model.ColFreight, model.ColTAT},
		Rows: []model.Row{
			row("", "", "Mar", 1, 1),
			row("", "", "Jan", 2, 2),
			row("", "", "Mar", 3, 3),
			row("", "", "Feb", 4, 4),
		},
	}
	got := Aggregate(in, model.Sum)
	want := []string{"Mar", "Jan", "Feb"}
	if !reflect.DeepEqual(months(got), want) {
		t.Errorf("got group order %v, want %v", months(got), want)
	}
}

func TestAggregateDropsTextColumns(t *testing.T) {
	got := Aggregate(sampleTable(), model.Sum)
	want := []string{model.ColMonth, model.ColFreight, model.ColTAT}
	if !reflect.DeepEqual(got.Columns, want) {
		t.Errorf("got columns %v, want %v", got.Columns, want)
	}
}

func TestAggregateOmitsEmptyMeasures(t *testing.T) {
	in := &model.Table{
		Columns: []string{model.ColMonth, model.ColFreight, model.ColTAT},
		Rows: []model.Row{
			{
				Cells:    map[string]string{model.ColMonth: "Jan"},
				Measures: map[string]float64{model.ColFreight: 10},
			},
		},
	}
	got := Aggregate(in, model.Average)
	if _, ok := got.Rows[0].Measure(model.ColTAT); ok {
		t.Errorf("group with no tat values produced a tat measure")
	}
	if v, _ := got.Rows[0].Measure(model.ColFreight); v != 10 {
		t.Errorf("got freight %v, want 10", v)
	}
}

func TestAggregateEmptyTable(t *testing.T) {
	in := &model.Table{Columns: []string{model.ColMonth, model.ColFreight, model.ColTAT}}
	got := Aggregate(in, model.Average)
	if got.Len() != 0 {
		t.Errorf("got %d groups from an empty table, want 0", got.Len())
	}
}
