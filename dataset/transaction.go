package dataset

import (
	"fmt"
	"strconv"
	"time"
)

// ============================================================================
// TRANSACTION — The one entity this program knows about
// ============================================================================
// A transaction is immutable once cleaned. Month/Year/Quarter are derived
// from Date, never stored independently.
// ============================================================================

// Transaction is a single e-commerce order row.
type Transaction struct {
	OrderID    string
	CustomerID string
	Date       time.Time
	Category   string
	Price      float64 // unit price
	Quantity   int
	Revenue    float64 // Price × Quantity
	Segment    string  // customer segment
	Region     string
}

// Month returns the year-month key, e.g. "2026-08".
func (t Transaction) Month() string {
	return t.Date.Format("2006-01")
}

// Year returns the calendar year of the order.
func (t Transaction) Year() int {
	return t.Date.Year()
}

// Quarter returns the calendar quarter (1–4) of the order.
func (t Transaction) Quarter() int {
	return (int(t.Date.Month())-1)/3 + 1
}

// dateLayout is the on-disk date format.
const dateLayout = "2006-01-02"

// Header is the CSV column set, in write order. The derived date parts are
// persisted alongside the raw fields so the dump is analysis-ready as-is.
func Header() []string {
	return []string{
		"Order_ID", "Customer_ID", "Date", "Category", "Price", "Quantity",
		"Revenue", "Customer_Segment", "Region", "Month", "Year", "Quarter",
	}
}

// record converts a transaction to a CSV row matching Header.
func (t Transaction) record() []string {
	return []string{
		t.OrderID,
		t.CustomerID,
		t.Date.Format(dateLayout),
		t.Category,
		strconv.FormatFloat(t.Price, 'f', 2, 64),
		strconv.Itoa(t.Quantity),
		strconv.FormatFloat(t.Revenue, 'f', 2, 64),
		t.Segment,
		t.Region,
		t.Month(),
		strconv.Itoa(t.Year()),
		strconv.Itoa(t.Quarter()),
	}
}

// fromRecord parses a CSV row produced by record. The derived columns are
// recomputed from Date rather than trusted.
func fromRecord(row []string) (Transaction, error) {
	if len(row) != len(Header()) {
		return Transaction{}, fmt.Errorf("row has %d columns, want %d", len(row), len(Header()))
	}

	date, err := time.Parse(dateLayout, row[2])
	if err != nil {
		return Transaction{}, fmt.Errorf("invalid date %q: %w", row[2], err)
	}
	price, err := strconv.ParseFloat(row[4], 64)
	if err != nil {
		return Transaction{}, fmt.Errorf("invalid price %q: %w", row[4], err)
	}
	quantity, err := strconv.Atoi(row[5])
	if err != nil {
		return Transaction{}, fmt.Errorf("invalid quantity %q: %w", row[5], err)
	}
	revenue, err := strconv.ParseFloat(row[6], 64)
	if err != nil {
		return Transaction{}, fmt.Errorf("invalid revenue %q: %w", row[6], err)
	}

	return Transaction{
		OrderID:    row[0],
		CustomerID: row[1],
		Date:       date,
		Category:   row[3],
		Price:      price,
		Quantity:   quantity,
		Revenue:    revenue,
		Segment:    row[7],
		Region:     row[8],
	}, nil
}
