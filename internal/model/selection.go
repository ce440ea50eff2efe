package model

import (
	"fmt"
	"strings"
)

// Selection is the user's filter choice from the dashboard sidebar.
// An empty slice means "no filter on that column" and matches every row.
type Selection struct {
	Zones    []string `json:"zones"`
	Vehicles []string `json:"vehicles"`
}

// IsEmpty reports whether no filter is applied at all.
func (s Selection) IsEmpty() bool {
	return len(s.Zones) == 0 && len(s.Vehicles) == 0
}

// AggMethod selects the reducer applied per numeric column within a Month group.
type AggMethod string

const (
	Average AggMethod = "average"
	Sum     AggMethod = "sum"
	Max     AggMethod = "max"
)

// Methods lists the selectable aggregation methods in display order.
var Methods = []AggMethod{Average, Sum, Max}

// Label returns the display name used in chart titles ("Average Freight Value").
func (m AggMethod) Label() string {
	switch m {
	case Average:
		return "Average"
	case Sum:
		return "Sum"
	case Max:
		return "Max"
	default:
		return string(m)
	}
}

// ParseAggMethod resolves a query-parameter value to an AggMethod.
// Accepts the display names and common short forms, case-insensitively.
// An empty string defaults to Average, matching the sidebar default.
func ParseAggMethod(s string) (AggMethod, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "average", "avg", "mean":
		return Average, nil
	case "sum", "total":
		return Sum, nil
	case "max", "maximum":
		return Max, nil
	default:
		return "", fmt.Errorf("unknown aggregation method %q (want one of average, sum, max)", s)
	}
}
