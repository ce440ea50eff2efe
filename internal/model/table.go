package model

// Well-known column names of the freight/TAT sheet. Columns are addressed by
// header text, exactly as they appear in the first row of the range.
const (
	ColZone    = "ZONE"
	ColVehicle = "Vehicle Type Corrected"
	ColMonth   = "Month"
	ColFreight = "Freight Value"
	ColTAT     = "TAT Value"
)

// NumericColumns lists the columns the loader coerces to float64. Every other
// column is carried through as plain text.
var NumericColumns = []string{ColFreight, ColTAT}

// RequiredColumns must all be present in the header row for a load to succeed.
var RequiredColumns = []string{ColZone, ColVehicle, ColMonth, ColFreight, ColTAT}

// Row is a single record. Cells holds the raw text of every column keyed by
// header name; Measures holds the coerced value for each numeric column.
type Row struct {
	Cells    map[string]string  `json:"cells"`
	Measures map[string]float64 `json:"measures,omitempty"`
}

// Measure returns the coerced value for a numeric column, with ok=false when
// the row carries no value for it.
func (r Row) Measure(column string) (float64, bool) {
	v, ok := r.Measures[column]
	return v, ok
}

// Table is an ordered set of rows sharing one column set. Columns preserves
// the header order of the source range.
type Table struct {
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// HasColumn reports whether the table carries the named column.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// UniqueValues returns the distinct values of a column in first-seen order.
// Empty cells are skipped.
func (t *Table) UniqueValues(column string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, row := range t.Rows {
		v := row.Cells[column]
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
