package engine

import (
	"fmt"

	"go-freight-dashboard/internal/model"
)

// Chart kinds understood by the front end.
const (
	KindBar  = "bar"
	KindLine = "line"
	KindArea = "area"
)

// freightColor is the fill used for the freight bar chart.
const freightColor = "#4CAF50"

// ChartPoint is one category/value pair on a series.
type ChartPoint struct {
	X string  `json:"x"`
	Y float64 `json:"y"`
}

// ChartSeries is one named line/bar/band of points.
type ChartSeries struct {
	Name    string       `json:"name"`
	Color   string       `json:"color,omitempty"`
	Markers bool         `json:"markers,omitempty"`
	Points  []ChartPoint `json:"points"`
}

// ChartConfig is a render-ready chart description: the front end draws it
// without re-deriving anything from the table.
type ChartConfig struct {
	Kind   string        `json:"kind"`
	Title  string        `json:"title"`
	XLabel string        `json:"xLabel"`
	YLabel string        `json:"yLabel"`
	Series []ChartSeries `json:"series"`
}

// BuildFreightChart renders the aggregated table as a freight-per-month bar
// chart. Months missing a freight value contribute no bar.
func BuildFreightChart(agg *model.Table, method model.AggMethod) ChartConfig {
	return ChartConfig{
		Kind:   KindBar,
		Title:  fmt.Sprintf("%s Freight Value", method.Label()),
		XLabel: model.ColMonth,
		YLabel: model.ColFreight,
		Series: []ChartSeries{{
			Name:   model.ColFreight,
			Color:  freightColor,
			Points: seriesPoints(agg, model.ColFreight),
		}},
	}
}

// BuildTATChart renders turnaround time per month as a marked line.
func BuildTATChart(agg *model.Table, method model.AggMethod) ChartConfig {
	return ChartConfig{
		Kind:   KindLine,
		Title:  fmt.Sprintf("%s TAT Over Time", method.Label()),
		XLabel: model.ColMonth,
		YLabel: model.ColTAT,
		Series: []ChartSeries{{
			Name:    model.ColTAT,
			Markers: true,
			Points:  seriesPoints(agg, model.ColTAT),
		}},
	}
}

// BuildTrendsChart overlays freight and TAT as stacked area bands.
func BuildTrendsChart(agg *model.Table, method model.AggMethod) ChartConfig {
	return ChartConfig{
		Kind:   KindArea,
		Title:  "Freight vs TAT Trend",
		XLabel: model.ColMonth,
		YLabel: "Value",
		Series: []ChartSeries{
			{Name: model.ColFreight, Points: seriesPoints(agg, model.ColFreight)},
			{Name: model.ColTAT, Points: seriesPoints(agg, model.ColTAT)},
		},
	}
}

func seriesPoints(agg *model.Table, column string) []ChartPoint {
	if agg == nil {
		return nil
	}
	points := make([]ChartPoint, 0, agg.Len())
	for _, row := range agg.Rows {
		v, ok := row.Measure(column)
		if !ok {
			continue
		}
		points = append(points, ChartPoint{X: row.Cells[model.ColMonth], Y: v})
	}
	return points
}
