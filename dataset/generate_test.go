package dataset

import (
	"strings"
	"testing"
	"time"
)

var testNow = time.Date(2026, time.August, 26, 0, 0, 0, 0, time.UTC)

func testConfig(records int) Config {
	cfg := DefaultConfig()
	cfg.Records = records
	cfg.Now = testNow
	return cfg
}

func TestGenerate_RowCount(t *testing.T) {
	rows := Generate(testConfig(5000))
	if len(rows) != 5000 {
		t.Fatalf("generated %d rows, want 5000", len(rows))
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a := Generate(testConfig(500))
	b := Generate(testConfig(500))
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("row %d differs between runs with the same seed: %+v vs %+v", i, a[i], b[i])
		}
	}

	cfg := testConfig(500)
	cfg.Seed = 7
	c := Generate(cfg)
	same := true
	for i := range a {
		if a[i] != c[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical tables")
	}
}

func TestGenerate_FieldDomains(t *testing.T) {
	rows := Generate(testConfig(2000))

	bands := make(map[string]priceBand, len(categories))
	for _, band := range categories {
		bands[band.Category] = band
	}
	regionSet := map[string]bool{"North": true, "South": true, "East": true, "West": true, "Central": true}
	segmentSet := map[string]bool{"Premium": true, "Regular": true, "Budget": true}

	seenOrders := make(map[string]bool, len(rows))
	start := testNow.AddDate(0, 0, -defaultDays)

	for _, tx := range rows {
		if !strings.HasPrefix(tx.OrderID, "ORD") || len(tx.OrderID) != 9 {
			t.Fatalf("bad order id %q", tx.OrderID)
		}
		if seenOrders[tx.OrderID] {
			t.Fatalf("duplicate order id %q", tx.OrderID)
		}
		seenOrders[tx.OrderID] = true

		if !strings.HasPrefix(tx.CustomerID, "CUST") || len(tx.CustomerID) != 9 {
			t.Fatalf("bad customer id %q", tx.CustomerID)
		}

		band, ok := bands[tx.Category]
		if !ok {
			t.Fatalf("unknown category %q", tx.Category)
		}
		if tx.Price < band.Min || tx.Price > band.Max*holidayPriceFactor {
			t.Fatalf("%s price %.2f outside band [%.2f, %.2f×%.1f]",
				tx.Category, tx.Price, band.Min, band.Max, holidayPriceFactor)
		}

		if tx.Quantity < 1 || tx.Quantity > 3 {
			t.Fatalf("quantity %d out of range", tx.Quantity)
		}
		if want := round2(tx.Price * float64(tx.Quantity)); tx.Revenue != want {
			t.Fatalf("revenue %.2f, want %.2f", tx.Revenue, want)
		}

		if !regionSet[tx.Region] {
			t.Fatalf("unknown region %q", tx.Region)
		}
		if !segmentSet[tx.Segment] {
			t.Fatalf("unknown segment %q", tx.Segment)
		}

		if tx.Date.Before(start) || tx.Date.After(testNow) {
			t.Fatalf("date %s outside [%s, %s]", tx.Date, start, testNow)
		}
	}
}

func TestGenerate_SeasonalPricing(t *testing.T) {
	rows := Generate(testConfig(5000))

	bands := make(map[string]priceBand, len(categories))
	for _, band := range categories {
		bands[band.Category] = band
	}

	for _, tx := range rows {
		m := tx.Date.Month()
		if m == time.November || m == time.December {
			continue
		}
		if band := bands[tx.Category]; tx.Price > band.Max {
			t.Fatalf("off-season %s order priced %.2f above band max %.2f", tx.Category, tx.Price, band.Max)
		}
	}
}

func TestGenerate_WeightedQuantities(t *testing.T) {
	rows := Generate(testConfig(20000))

	counts := map[int]int{}
	for _, tx := range rows {
		counts[tx.Quantity]++
	}
	n := float64(len(rows))

	// Loose bounds around the configured weights {1: 0.8, 2: 0.15, 3: 0.05}.
	if share := float64(counts[1]) / n; share < 0.75 || share > 0.85 {
		t.Fatalf("quantity-1 share %.3f outside [0.75, 0.85]", share)
	}
	if share := float64(counts[3]) / n; share < 0.03 || share > 0.07 {
		t.Fatalf("quantity-3 share %.3f outside [0.03, 0.07]", share)
	}
}

func TestTransaction_DerivedDateParts(t *testing.T) {
	tx := Transaction{Date: time.Date(2025, time.November, 14, 0, 0, 0, 0, time.UTC)}

	if got := tx.Month(); got != "2025-11" {
		t.Errorf("Month() = %q, want %q", got, "2025-11")
	}
	if got := tx.Year(); got != 2025 {
		t.Errorf("Year() = %d, want 2025", got)
	}
	if got := tx.Quarter(); got != 4 {
		t.Errorf("Quarter() = %d, want 4", got)
	}
}
