package loader

import (
	"fmt"
	"strings"

	"go-freight-dashboard/internal/model"
	"go-freight-dashboard/pkg/utils"
)

// DataFormatError reports a table that cannot be loaded: a missing required
// header or a cell in a numeric column that does not parse as a number.
// The whole load fails; no partial table is ever produced.
type DataFormatError struct {
	Column string
	Row    int // 1-based data row index, 0 when the header itself is bad
	Msg    string
}

func (e *DataFormatError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("data format: column %q row %d: %s", e.Column, e.Row, e.Msg)
	}
	if e.Column != "" {
		return fmt.Sprintf("data format: column %q: %s", e.Column, e.Msg)
	}
	return "data format: " + e.Msg
}

// BuildTable converts the raw 2D value array (header row first) into a typed
// Table. Header names are trimmed; data rows shorter than the header are
// padded with empty cells and extra cells are dropped. The schema's numeric
// columns are coerced with standard decimal parsing.
func BuildTable(values [][]string) (*model.Table, error) {
	if len(values) == 0 {
		return nil, &DataFormatError{Msg: "empty range: no header row"}
	}

	columns := make([]string, len(values[0]))
	index := make(map[string]int, len(values[0]))
	for i, h := range values[0] {
		name := strings.TrimSpace(h)
		columns[i] = name
		index[name] = i
	}

	for _, required := range model.RequiredColumns {
		if _, ok := index[required]; !ok {
			return nil, &DataFormatError{Column: required, Msg: "missing header"}
		}
	}

	rows := make([]model.Row, 0, len(values)-1)
	for n, raw := range values[1:] {
		row := model.Row{
			Cells:    make(map[string]string, len(columns)),
			Measures: make(map[string]float64, len(model.NumericColumns)),
		}
		for i, col := range columns {
			if i < len(raw) {
				row.Cells[col] = strings.TrimSpace(raw[i])
			} else {
				row.Cells[col] = ""
			}
		}
		for _, col := range model.NumericColumns {
			v, err := utils.ParseNumber(row.Cells[col])
			if err != nil {
				return nil, &DataFormatError{Column: col, Row: n + 1, Msg: err.Error()}
			}
			row.Measures[col] = v
		}
		rows = append(rows, row)
	}

	return &model.Table{Columns: columns, Rows: rows}, nil
}
