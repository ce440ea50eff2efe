package engine

import "go-freight-dashboard/internal/model"

// Aggregate groups the table by Month and reduces each numeric column within
// each group using the chosen method. Groups appear in the order their Month
// value was first seen; only the schema's numeric columns survive into the
// output, in the input's header order. A group with no values at all for a
// column gets no entry for it.
func Aggregate(t *model.Table, method model.AggMethod) *model.Table {
	if t == nil {
		return nil
	}

	measureCols := make([]string, 0, len(model.NumericColumns))
	for _, c := range t.Columns {
		if isNumericColumn(c) {
			measureCols = append(measureCols, c)
		}
	}

	type group struct {
		month  string
		values map[string][]float64
	}
	var order []string
	groups := make(map[string]*group)

	for _, row := range t.Rows {
		month := row.Cells[model.ColMonth]
		g, ok := groups[month]
		if !ok {
			g = &group{month: month, values: make(map[string][]float64, len(measureCols))}
			groups[month] = g
			order = append(order, month)
		}
		for _, col := range measureCols {
			if v, ok := row.Measure(col); ok {
				g.values[col] = append(g.values[col], v)
			}
		}
	}

	out := &model.Table{Columns: append([]string{model.ColMonth}, measureCols...)}
	for _, month := range order {
		g := groups[month]
		row := model.Row{
			Cells:    map[string]string{model.ColMonth: month},
			Measures: make(map[string]float64, len(measureCols)),
		}
		for _, col := range measureCols {
			vs := g.values[col]
			if len(vs) == 0 {
				continue
			}
			row.Measures[col] = reduce(vs, method)
		}
		out.Rows = append(out.Rows, row)
	}
	return out
}

func isNumericColumn(name string) bool {
	for _, c := range model.NumericColumns {
		if c == name {
			return true
		}
	}
	return false
}

func reduce(vs []float64, method model.AggMethod) float64 {
	switch method {
	case model.Sum:
		return sum(vs)
	case model.Max:
		max := vs[0]
		for _, v := range vs[1:] {
			if v > max {
				max = v
			}
		}
		return max
	default: // Average
		return sum(vs) / float64(len(vs))
	}
}

func sum(vs []float64) float64 {
	var total float64
	for _, v := range vs {
		total += v
	}
	return total
}
