package engine

import "sort"

// ============================================================================
// CHART BUILDER — Produces ChartConfig from Query + Groups
// ============================================================================

// Default color palette for chart series.
var defaultColors = []string{
	"#2c3e50", "#3498db", "#2ecc71", "#e74c3c", "#9b59b6",
	"#f39c12", "#1abc9c", "#e67e22", "#34495e", "#95a5a6",
}

// BuildChart produces a ChartConfig from a Query and aggregated groups.
func BuildChart(query Query, groups []Group) *ChartConfig {
	if len(groups) == 0 {
		return nil
	}

	chartType := query.Visualize
	if chartType == "" {
		chartType = "bar"
	}

	config := &ChartConfig{
		ChartType:  chartType,
		Title:      query.Title,
		ShowLegend: true,
		ShowGrid:   chartType != "pie",
	}

	if len(query.GroupBy) > 0 {
		config.XAxis = LabelForDimension(query.GroupBy[0])
	}
	config.YAxis = LabelForAggregation(query.Aggregation)

	if len(query.GroupBy) >= 2 && hasSubGroups(groups) {
		config.Series = buildMatrixSeries(groups)
	} else {
		config.Series = buildSingleSeries(groups, query.Title)
	}

	config.Colors = assignColors(len(config.Series))
	return config
}

// ============================================================================
// SERIES BUILDERS
// ============================================================================

func buildSingleSeries(groups []Group, seriesName string) []ChartSeries {
	if seriesName == "" {
		seriesName = "Value"
	}

	points := make([]ChartPoint, 0, len(groups))
	for _, g := range groups {
		points = append(points, ChartPoint{
			Label: g.Label,
			Value: RoundTo2(g.Value),
		})
	}

	return []ChartSeries{{
		Name: seriesName,
		Data: points,
	}}
}

// buildMatrixSeries turns two-dimension groups into one series per secondary
// key: the category×region pivot. Every series carries a point for every
// primary label, zero-filled where the combination has no rows.
func buildMatrixSeries(groups []Group) []ChartSeries {
	subKeySet := make(map[string]bool)
	for _, g := range groups {
		for _, sg := range g.SubGroups {
			subKeySet[sg.Key] = true
		}
	}

	subKeys := make([]string, 0, len(subKeySet))
	for k := range subKeySet {
		subKeys = append(subKeys, k)
	}
	sort.Strings(subKeys) // deterministic series order

	series := make([]ChartSeries, 0, len(subKeys))
	for i, key := range subKeys {
		points := make([]ChartPoint, 0, len(groups))
		for _, g := range groups {
			var value float64
			for _, sg := range g.SubGroups {
				if sg.Key == key {
					value = sg.Value
					break
				}
			}
			points = append(points, ChartPoint{
				Label: g.Label,
				Value: RoundTo2(value),
			})
		}
		series = append(series, ChartSeries{
			Name:  key,
			Data:  points,
			Color: defaultColors[i%len(defaultColors)],
		})
	}
	return series
}

func hasSubGroups(groups []Group) bool {
	for _, g := range groups {
		if len(g.SubGroups) > 0 {
			return true
		}
	}
	return false
}

func assignColors(count int) []string {
	colors := make([]string, count)
	for i := 0; i < count; i++ {
		colors[i] = defaultColors[i%len(defaultColors)]
	}
	return colors
}
