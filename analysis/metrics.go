package analysis

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"github.com/salescope-io/salescope/engine"
)

// Currency is the display currency prefix for all monetary output.
const Currency = "₹"

// KeyMetrics are the scalar business aggregates of one table.
type KeyMetrics struct {
	TotalRevenue          float64
	TotalOrders           int
	AverageOrderValue     float64
	MedianOrderValue      float64
	TotalCustomers        int
	CustomerLifetimeValue float64 // mean of per-customer revenue totals
}

// ComputeKeyMetrics folds the view into the six dashboard scalars.
func ComputeKeyMetrics(view engine.RecordView) (KeyMetrics, error) {
	if view.Len() == 0 {
		return KeyMetrics{}, fmt.Errorf("metrics: empty view")
	}

	m := KeyMetrics{
		TotalRevenue: engine.SumMeasure(view, "revenue"),
		TotalOrders:  view.Len(),
	}
	m.AverageOrderValue = m.TotalRevenue / float64(m.TotalOrders)

	revenues := make([]float64, view.Len())
	for i := 0; i < view.Len(); i++ {
		revenues[i] = view.Measure(i, "revenue")
	}
	median, err := stats.Median(revenues)
	if err != nil {
		return KeyMetrics{}, fmt.Errorf("metrics: median order value: %w", err)
	}
	m.MedianOrderValue = median

	// Per-customer revenue totals drive both customer metrics.
	byCustomer := engine.GroupAndAggregate(view, []string{"customer"}, "revenue", "sum", "", 0)
	m.TotalCustomers = len(byCustomer)
	if m.TotalCustomers > 0 {
		var total float64
		for _, g := range byCustomer {
			total += g.Value
		}
		m.CustomerLifetimeValue = total / float64(m.TotalCustomers)
	}

	return m, nil
}
