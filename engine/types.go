package engine

// ============================================================================
// ENGINE TYPES — Grouping queries and render-ready output
// ============================================================================

// Query defines one aggregation the engine should compute.
// The dashboard declares these statically; the engine consumes them.
type Query struct {
	Title       string   // chart/table title
	GroupBy     []string // dimension keys: ["month"], ["category", "region"]
	Measure     string   // which measure to aggregate, e.g. "revenue"
	Aggregation string   // "sum", "count", "avg", "max", "min"
	SortBy      string   // "value_desc", "value_asc", "date_asc", "alpha_asc", ...
	Limit       int      // 0 = all
	Visualize   string   // "line", "bar", "hbar", "pie", "heatmap", "area"
}

// ============================================================================
// GROUP — Intermediate computation result
// ============================================================================

// Group represents a grouped/aggregated result.
// Builders convert these into ChartConfig or TableData.
type Group struct {
	Key       string
	Label     string
	Value     float64
	Count     int
	SubGroups []Group
	View      RecordView // sub-view for records in this group (zero-copy)
}

// ============================================================================
// CHART TYPES
// ============================================================================

// ChartConfig defines how to render a chart.
type ChartConfig struct {
	ChartType  string
	Title      string
	XAxis      string
	YAxis      string
	Series     []ChartSeries
	Colors     []string
	ShowLegend bool
	ShowGrid   bool
}

// ChartSeries represents a data series in a chart.
type ChartSeries struct {
	Name  string
	Data  []ChartPoint
	Color string
}

// ChartPoint represents a single data point.
type ChartPoint struct {
	Label string
	Value float64
}

// ============================================================================
// TABLE TYPES
// ============================================================================

// TableData defines how to render a table.
type TableData struct {
	Title   string
	Columns []Column
	Rows    [][]string
	Summary *Summary
}

// Column defines a table column.
type Column struct {
	Key   string
	Label string
	Align string // "left", "center", "right"
}

// Summary provides totals for a table.
type Summary struct {
	Label  string
	Values map[string]string
}
