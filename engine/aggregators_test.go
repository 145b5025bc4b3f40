package engine

import (
	"math"
	"testing"
)

// order is the typed fixture row for engine tests.
type order struct {
	Category string
	Region   string
	Month    string
	Amount   float64
}

var orderAdapter = NewDomainAdapter[order]().
	Dimension("category", func(o order) string { return o.Category }).
	Dimension("region", func(o order) string { return o.Region }).
	Dimension("month", func(o order) string { return o.Month }).
	Measure("amount", func(o order) float64 { return o.Amount })

var fixture = []order{
	{"Electronics", "North", "2026-01", 1000},
	{"Electronics", "South", "2026-02", 500},
	{"Books", "North", "2026-01", 40},
	{"Books", "North", "2026-03", 60},
	{"Clothing", "South", "2026-02", 200},
}

func TestGroupAndAggregate_Sum(t *testing.T) {
	view := orderAdapter.Bind(fixture)
	groups := GroupAndAggregate(view, []string{"category"}, "amount", "sum", "value_desc", 0)

	if len(groups) != 3 {
		t.Fatalf("got %d groups, want 3", len(groups))
	}
	if groups[0].Key != "Electronics" || groups[0].Value != 1500 {
		t.Errorf("top group = %s/%.0f, want Electronics/1500", groups[0].Key, groups[0].Value)
	}
	if groups[0].Count != 2 {
		t.Errorf("Electronics count = %d, want 2", groups[0].Count)
	}

	// Per-group sums must add up to the total fold over the same view.
	var groupTotal float64
	for _, g := range groups {
		groupTotal += g.Value
	}
	if total := SumMeasure(view, "amount"); math.Abs(groupTotal-total) > 1e-9 {
		t.Errorf("group sums %.2f != view total %.2f", groupTotal, total)
	}
}

func TestGroupAndAggregate_Aggregations(t *testing.T) {
	view := orderAdapter.Bind(fixture)

	tests := []struct {
		aggregation string
		want        float64 // value of the "Books" group
	}{
		{"sum", 100},
		{"count", 2},
		{"avg", 50},
		{"max", 60},
		{"min", 40},
	}
	for _, tt := range tests {
		t.Run(tt.aggregation, func(t *testing.T) {
			groups := GroupAndAggregate(view, []string{"category"}, "amount", tt.aggregation, "label_asc", 0)
			if groups[0].Key != "Books" {
				t.Fatalf("first group = %q, want Books", groups[0].Key)
			}
			if groups[0].Value != tt.want {
				t.Errorf("Books %s = %.2f, want %.2f", tt.aggregation, groups[0].Value, tt.want)
			}
		})
	}
}

func TestGroupAndAggregate_TwoDimensions(t *testing.T) {
	view := orderAdapter.Bind(fixture)
	groups := GroupAndAggregate(view, []string{"category", "region"}, "amount", "sum", "label_asc", 0)

	if len(groups) != 3 {
		t.Fatalf("got %d primary groups, want 3", len(groups))
	}

	var electronics *Group
	for i := range groups {
		if groups[i].Key == "Electronics" {
			electronics = &groups[i]
		}
	}
	if electronics == nil {
		t.Fatal("no Electronics group")
	}
	if len(electronics.SubGroups) != 2 {
		t.Fatalf("Electronics has %d subgroups, want 2", len(electronics.SubGroups))
	}

	sub := map[string]float64{}
	for _, sg := range electronics.SubGroups {
		sub[sg.Key] = sg.Value
	}
	if sub["North"] != 1000 || sub["South"] != 500 {
		t.Errorf("Electronics subgroups = %v, want North=1000 South=500", sub)
	}
}

func TestGroupAndAggregate_Limit(t *testing.T) {
	view := orderAdapter.Bind(fixture)
	groups := GroupAndAggregate(view, []string{"category"}, "amount", "sum", "value_desc", 2)
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	if groups[0].Key != "Electronics" || groups[1].Key != "Clothing" {
		t.Errorf("limited groups = %s, %s; want Electronics, Clothing", groups[0].Key, groups[1].Key)
	}
}

func TestGroupAndAggregate_EmptyView(t *testing.T) {
	view := orderAdapter.Bind(nil)
	if groups := GroupAndAggregate(view, []string{"category"}, "amount", "sum", "", 0); groups != nil {
		t.Errorf("got %v, want nil", groups)
	}
}

func TestSortGroups_Chronological(t *testing.T) {
	view := orderAdapter.Bind(fixture)
	groups := GroupAndAggregate(view, []string{"month"}, "amount", "sum", "date_asc", 0)

	want := []string{"2026-01", "2026-02", "2026-03"}
	for i, key := range want {
		if groups[i].Key != key {
			t.Errorf("groups[%d] = %q, want %q", i, groups[i].Key, key)
		}
	}
}

func TestParseMonthOrder(t *testing.T) {
	tests := []struct {
		key  string
		want int
	}{
		{"2026-08", 202608},
		{"2025-01", 202501},
		{"2026", 202600},
		{"Q3", 0},
		{"garbage", 0},
	}
	for _, tt := range tests {
		if got := ParseMonthOrder(tt.key); got != tt.want {
			t.Errorf("ParseMonthOrder(%q) = %d, want %d", tt.key, got, tt.want)
		}
	}
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{1234567.891, "₹1,234,567.89"},
		{0, "₹0.00"},
		{999.999, "₹1,000.00"},
		{-5.5, "-₹5.50"},
	}
	for _, tt := range tests {
		if got := FormatCurrency(tt.amount, "₹"); got != tt.want {
			t.Errorf("FormatCurrency(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestFormatInt(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-50000, "-50,000"},
	}
	for _, tt := range tests {
		if got := FormatInt(tt.n); got != tt.want {
			t.Errorf("FormatInt(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestUniqueValues(t *testing.T) {
	view := orderAdapter.Bind(fixture)
	got := UniqueValues(view, "region")
	want := []string{"North", "South"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}

func TestSubView_ReadsThroughParent(t *testing.T) {
	view := orderAdapter.Bind(fixture)
	sub := newSubView(view, []int{0, 2})

	if sub.Len() != 2 {
		t.Fatalf("Len = %d, want 2", sub.Len())
	}
	if got := sub.Dimension(1, "category"); got != "Books" {
		t.Errorf("Dimension(1) = %q, want Books", got)
	}
	if got := sub.Measure(0, "amount"); got != 1000 {
		t.Errorf("Measure(0) = %v, want 1000", got)
	}
	if got := sub.Dimension(5, "category"); got != "" {
		t.Errorf("out-of-range Dimension = %q, want empty", got)
	}
}
