package analysis

import (
	"fmt"
	"sort"
	"strings"

	"github.com/salescope-io/salescope/engine"
)

// Insights are the derived headline facts printed at the end of a run.
type Insights struct {
	TopCategory          string
	TopCategoryRevenue   float64
	PeakMonth            string // "2026-08" key of the best month
	BestRegion           string
	RepeatCustomerRate   float64 // % of customers with more than one order
	RevenueConcentration float64 // % of revenue from the top 20% of customers
	TopSegment           string
}

// ComputeInsights derives the headline facts from a cleaned view.
func ComputeInsights(view engine.RecordView) (Insights, error) {
	if view.Len() == 0 {
		return Insights{}, fmt.Errorf("insights: empty view")
	}

	var ins Insights

	byCategory := engine.GroupAndAggregate(view, []string{"category"}, "revenue", "sum", "value_desc", 0)
	if len(byCategory) > 0 {
		ins.TopCategory = byCategory[0].Label
		ins.TopCategoryRevenue = byCategory[0].Value
	}

	byMonth := engine.GroupAndAggregate(view, []string{"month"}, "revenue", "sum", "value_desc", 0)
	if len(byMonth) > 0 {
		ins.PeakMonth = byMonth[0].Key
	}

	byRegion := engine.GroupAndAggregate(view, []string{"region"}, "revenue", "sum", "value_desc", 0)
	if len(byRegion) > 0 {
		ins.BestRegion = byRegion[0].Label
	}

	bySegment := engine.GroupAndAggregate(view, []string{"segment"}, "revenue", "sum", "value_desc", 0)
	if len(bySegment) > 0 {
		ins.TopSegment = bySegment[0].Label
	}

	byCustomer := engine.GroupAndAggregate(view, []string{"customer"}, "revenue", "sum", "", 0)
	ins.RepeatCustomerRate = repeatRate(byCustomer)
	ins.RevenueConcentration = concentration(byCustomer, engine.SumMeasure(view, "revenue"))

	return ins, nil
}

// repeatRate is the share of customers with more than one order.
func repeatRate(byCustomer []engine.Group) float64 {
	if len(byCustomer) == 0 {
		return 0
	}
	repeat := 0
	for _, g := range byCustomer {
		if g.Count > 1 {
			repeat++
		}
	}
	return float64(repeat) / float64(len(byCustomer)) * 100
}

// concentration is the revenue share of the top 20% of customers by spend.
func concentration(byCustomer []engine.Group, totalRevenue float64) float64 {
	if len(byCustomer) == 0 || totalRevenue <= 0 {
		return 0
	}
	sorted := make([]engine.Group, len(byCustomer))
	copy(sorted, byCustomer)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Value > sorted[j].Value })

	topN := len(sorted) / 5
	if topN == 0 {
		topN = 1
	}
	var topRevenue float64
	for _, g := range sorted[:topN] {
		topRevenue += g.Value
	}
	return topRevenue / totalRevenue * 100
}

// Recommendations renders the five action items from the computed insights.
func Recommendations(ins Insights) []string {
	return []string{
		fmt.Sprintf("Focus marketing budget on the %s category (highest revenue)", ins.TopCategory),
		"Implement retention strategies for repeat customers",
		fmt.Sprintf("Expand inventory in the %s region (best performing)", ins.BestRegion),
		"Launch targeted campaigns during Q4 (holiday season)",
		fmt.Sprintf("Develop loyalty programs for %s segment customers", strings.ToLower(ins.TopSegment)),
	}
}
