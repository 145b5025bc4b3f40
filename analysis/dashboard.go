package analysis

import "github.com/salescope-io/salescope/engine"

// ============================================================================
// DASHBOARD — The six fixed charts of a run
// ============================================================================
// Each chart is a declarative engine.Query; the engine aggregates and the
// render package rasterizes. Filenames are stable so every run overwrites
// the previous dashboard.
// ============================================================================

// Chart pairs a render-ready config with its output filename.
type Chart struct {
	Filename string
	Config   *engine.ChartConfig
}

var dashboardQueries = []struct {
	filename string
	query    engine.Query
}{
	{"monthly_revenue_trend.png", engine.Query{
		Title:       "Monthly Revenue Trend",
		GroupBy:     []string{"month"},
		Measure:     "revenue",
		Aggregation: "sum",
		SortBy:      "date_asc",
		Visualize:   "line",
	}},
	{"revenue_by_category.png", engine.Query{
		Title:       "Revenue by Product Category",
		GroupBy:     []string{"category"},
		Measure:     "revenue",
		Aggregation: "sum",
		SortBy:      "value_asc",
		Visualize:   "hbar",
	}},
	{"revenue_by_segment.png", engine.Query{
		Title:       "Revenue Distribution by Customer Segment",
		GroupBy:     []string{"segment"},
		Measure:     "revenue",
		Aggregation: "sum",
		SortBy:      "value_desc",
		Visualize:   "pie",
	}},
	{"revenue_by_region.png", engine.Query{
		Title:       "Revenue by Region",
		GroupBy:     []string{"region"},
		Measure:     "revenue",
		Aggregation: "sum",
		SortBy:      "label_asc",
		Visualize:   "bar",
	}},
	{"category_region_heatmap.png", engine.Query{
		Title:       "Revenue Heatmap: Category vs Region",
		GroupBy:     []string{"category", "region"},
		Measure:     "revenue",
		Aggregation: "sum",
		SortBy:      "label_asc",
		Visualize:   "heatmap",
	}},
	{"quarterly_revenue.png", engine.Query{
		Title:       "Quarterly Revenue",
		GroupBy:     []string{"quarter"},
		Measure:     "revenue",
		Aggregation: "sum",
		SortBy:      "label_asc",
		Visualize:   "area",
	}},
}

// DashboardCharts aggregates the view into the six chart configs.
// Charts whose query matches no data are skipped.
func DashboardCharts(view engine.RecordView) []Chart {
	charts := make([]Chart, 0, len(dashboardQueries))
	for _, dq := range dashboardQueries {
		groups := engine.GroupAndAggregate(view, dq.query.GroupBy, dq.query.Measure,
			dq.query.Aggregation, dq.query.SortBy, dq.query.Limit)
		config := engine.BuildChart(dq.query, groups)
		if config == nil {
			continue
		}
		charts = append(charts, Chart{Filename: dq.filename, Config: config})
	}
	return charts
}

// CategoryTable builds the category performance summary printed in the report.
func CategoryTable(view engine.RecordView) *engine.TableData {
	query := engine.Query{
		Title:       "Category Performance",
		GroupBy:     []string{"category"},
		Measure:     "revenue",
		Aggregation: "sum",
		SortBy:      "value_desc",
	}
	groups := engine.GroupAndAggregate(view, query.GroupBy, query.Measure,
		query.Aggregation, query.SortBy, query.Limit)
	return engine.BuildTable(query, groups, Currency)
}
