package engine

import "go-freight-dashboard/internal/model"

// ApplyFilter keeps the rows whose ZONE and vehicle-type cells are members of
// the selection's inclusion sets. An empty set places no constraint on its
// column; the two constraints combine with AND. Row order is preserved and
// the input table is never mutated.
func ApplyFilter(t *model.Table, sel model.Selection) *model.Table {
	if t == nil {
		return nil
	}
	if sel.IsEmpty() {
		out := &model.Table{Columns: t.Columns, Rows: make([]model.Row, len(t.Rows))}
		copy(out.Rows, t.Rows)
		return out
	}

	zones := toSet(sel.Zones)
	vehicles := toSet(sel.Vehicles)

	out := &model.Table{Columns: t.Columns}
	for _, row := range t.Rows {
		if !member(zones, row.Cells[model.ColZone]) {
			continue
		}
		if !member(vehicles, row.Cells[model.ColVehicle]) {
			continue
		}
		out.Rows = append(out.Rows, row)
	}
	return out
}

func toSet(values []string) map[string]bool {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

// member treats a nil set as "matches everything".
func member(set map[string]bool, v string) bool {
	return set == nil || set[v]
}
