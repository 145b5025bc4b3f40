package engine

import "testing"

func TestBuildChart_SingleSeries(t *testing.T) {
	view := orderAdapter.Bind(fixture)
	query := Query{
		Title:       "Revenue by Category",
		GroupBy:     []string{"category"},
		Measure:     "amount",
		Aggregation: "sum",
		SortBy:      "value_desc",
		Visualize:   "bar",
	}
	groups := GroupAndAggregate(view, query.GroupBy, query.Measure, query.Aggregation, query.SortBy, 0)

	cfg := BuildChart(query, groups)
	if cfg == nil {
		t.Fatal("got nil config")
	}
	if cfg.ChartType != "bar" {
		t.Errorf("ChartType = %q, want bar", cfg.ChartType)
	}
	if cfg.XAxis != "Category" || cfg.YAxis != "Revenue" {
		t.Errorf("axes = %q/%q, want Category/Revenue", cfg.XAxis, cfg.YAxis)
	}
	if len(cfg.Series) != 1 {
		t.Fatalf("got %d series, want 1", len(cfg.Series))
	}

	data := cfg.Series[0].Data
	if len(data) != 3 {
		t.Fatalf("got %d points, want 3", len(data))
	}
	// Sort order of the groups must survive into the series.
	if data[0].Label != "Electronics" || data[0].Value != 1500 {
		t.Errorf("point[0] = %s/%.0f, want Electronics/1500", data[0].Label, data[0].Value)
	}
	if data[2].Label != "Books" {
		t.Errorf("point[2] = %q, want Books", data[2].Label)
	}
}

func TestBuildChart_MatrixSeries(t *testing.T) {
	view := orderAdapter.Bind(fixture)
	query := Query{
		Title:       "Category by Region",
		GroupBy:     []string{"category", "region"},
		Measure:     "amount",
		Aggregation: "sum",
		SortBy:      "label_asc",
		Visualize:   "heatmap",
	}
	groups := GroupAndAggregate(view, query.GroupBy, query.Measure, query.Aggregation, query.SortBy, 0)

	cfg := BuildChart(query, groups)
	if cfg == nil {
		t.Fatal("got nil config")
	}
	if len(cfg.Series) != 2 {
		t.Fatalf("got %d series, want 2", len(cfg.Series))
	}
	// One series per secondary key, sorted.
	if cfg.Series[0].Name != "North" || cfg.Series[1].Name != "South" {
		t.Errorf("series = %q, %q; want North, South", cfg.Series[0].Name, cfg.Series[1].Name)
	}

	// Every series has a point for every primary label, zero-filled.
	for _, s := range cfg.Series {
		if len(s.Data) != 3 {
			t.Fatalf("series %q has %d points, want 3", s.Name, len(s.Data))
		}
	}
	// Clothing has no North rows.
	north := cfg.Series[0]
	for _, p := range north.Data {
		if p.Label == "Clothing" && p.Value != 0 {
			t.Errorf("North×Clothing = %.2f, want 0", p.Value)
		}
	}
}

func TestBuildChart_EmptyGroups(t *testing.T) {
	if cfg := BuildChart(Query{Title: "x"}, nil); cfg != nil {
		t.Errorf("got %+v, want nil", cfg)
	}
}

func TestBuildChart_Defaults(t *testing.T) {
	groups := []Group{{Key: "a", Label: "a", Value: 1, Count: 1}}
	cfg := BuildChart(Query{Title: "t"}, groups)
	if cfg.ChartType != "bar" {
		t.Errorf("default ChartType = %q, want bar", cfg.ChartType)
	}
	if !cfg.ShowGrid {
		t.Error("ShowGrid should default on for non-pie charts")
	}
	if len(cfg.Colors) != len(cfg.Series) {
		t.Errorf("got %d colors for %d series", len(cfg.Colors), len(cfg.Series))
	}
}

func TestBuildChart_PieDisablesGrid(t *testing.T) {
	groups := []Group{{Key: "a", Label: "a", Value: 1, Count: 1}}
	cfg := BuildChart(Query{Title: "t", Visualize: "pie"}, groups)
	if cfg.ShowGrid {
		t.Error("pie charts should not show a grid")
	}
}
