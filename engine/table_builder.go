package engine

import "fmt"

// ============================================================================
// TABLE BUILDER — Produces TableData from Query + Groups
// ============================================================================

// BuildTable produces a summary table from aggregated groups: one row per
// group plus a totals summary.
func BuildTable(query Query, groups []Group, currency string) *TableData {
	if len(groups) == 0 {
		return &TableData{
			Title:   query.Title,
			Columns: []Column{},
			Rows:    [][]string{},
		}
	}

	groupLabel := "Group"
	if len(query.GroupBy) > 0 {
		groupLabel = LabelForDimension(query.GroupBy[0])
	}
	valueLabel := LabelForAggregation(query.Aggregation)

	columns := []Column{
		{Key: "group", Label: groupLabel, Align: "left"},
		{Key: "value", Label: valueLabel, Align: "right"},
		{Key: "count", Label: "Count", Align: "center"},
	}

	rows := make([][]string, 0, len(groups))
	var totalValue float64
	var totalCount int

	for _, g := range groups {
		rows = append(rows, []string{
			g.Label,
			fmt.Sprintf("%.2f", g.Value),
			fmt.Sprintf("%d", g.Count),
		})
		totalValue += g.Value
		totalCount += g.Count
	}

	return &TableData{
		Title:   query.Title,
		Columns: columns,
		Rows:    rows,
		Summary: &Summary{
			Label: "Total",
			Values: map[string]string{
				"value": FormatCurrency(totalValue, currency),
				"count": fmt.Sprintf("%d", totalCount),
			},
		},
	}
}
