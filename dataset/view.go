package dataset

import (
	"strconv"

	"github.com/salescope-io/salescope/engine"
)

// Adapter is declared once; View binds it per table. The engine reads
// transactions through it without copying.
var adapter = engine.NewDomainAdapter[Transaction]().
	Dimension("order", func(t Transaction) string { return t.OrderID }).
	Dimension("customer", func(t Transaction) string { return t.CustomerID }).
	Dimension("category", func(t Transaction) string { return t.Category }).
	Dimension("segment", func(t Transaction) string { return t.Segment }).
	Dimension("region", func(t Transaction) string { return t.Region }).
	Dimension("month", func(t Transaction) string { return t.Month() }).
	Dimension("year", func(t Transaction) string { return strconv.Itoa(t.Year()) }).
	Dimension("quarter", func(t Transaction) string { return "Q" + strconv.Itoa(t.Quarter()) }).
	Measure("revenue", func(t Transaction) float64 { return t.Revenue }).
	Measure("price", func(t Transaction) float64 { return t.Price }).
	Measure("quantity", func(t Transaction) float64 { return float64(t.Quantity) })

// View exposes a transaction table to the analytics engine.
func View(rows []Transaction) engine.RecordView {
	return adapter.Bind(rows)
}
