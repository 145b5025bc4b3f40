package dataset

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

// ============================================================================
// GENERATOR — Synthetic e-commerce transactions
// ============================================================================
// Deterministic for a given seed. The shape mirrors a real storefront:
// category price bands, a small pool of repeat customers, weighted basket
// sizes, and a holiday-season price bump in November/December.
// ============================================================================

// Config controls synthetic data generation.
type Config struct {
	Records      int       // number of rows to generate
	Seed         int64     // rand seed; same seed → same table
	Days         int       // date range: trailing N days from Now
	CustomerPool int       // number of distinct customer ids to draw from
	Now          time.Time // zero value means time.Now()
}

// Defaults matching a full dashboard run.
const (
	DefaultRecords      = 50000
	DefaultSeed         = 42
	defaultDays         = 730
	defaultCustomerPool = 10000

	holidayPriceFactor = 1.2
)

// DefaultConfig returns the standard generation parameters.
func DefaultConfig() Config {
	return Config{
		Records:      DefaultRecords,
		Seed:         DefaultSeed,
		Days:         defaultDays,
		CustomerPool: defaultCustomerPool,
	}
}

// priceBand is the uniform unit-price range for a category.
type priceBand struct {
	Category string
	Min, Max float64
}

// Catalog order is fixed so generation stays deterministic.
var categories = []priceBand{
	{"Electronics", 500, 5000},
	{"Clothing", 20, 200},
	{"Home & Kitchen", 30, 500},
	{"Books", 10, 50},
	{"Sports", 25, 300},
	{"Beauty", 15, 150},
}

var regions = []string{"North", "South", "East", "West", "Central"}

var segments = weightedStrings{
	values:  []string{"Premium", "Regular", "Budget"},
	weights: []float64{0.2, 0.5, 0.3},
}

var quantities = weightedInts{
	values:  []int{1, 2, 3},
	weights: []float64{0.8, 0.15, 0.05},
}

// Generate builds cfg.Records synthetic transactions. Order ids are
// sequential and unique; customer ids repeat across orders.
func Generate(cfg Config) []Transaction {
	if cfg.Records <= 0 {
		return nil
	}
	if cfg.Days <= 0 {
		cfg.Days = defaultDays
	}
	if cfg.CustomerPool <= 0 {
		cfg.CustomerPool = defaultCustomerPool
	}
	now := cfg.Now
	if now.IsZero() {
		now = time.Now()
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	start := now.AddDate(0, 0, -cfg.Days)

	rows := make([]Transaction, 0, cfg.Records)
	for i := 0; i < cfg.Records; i++ {
		date := start.AddDate(0, 0, rng.Intn(cfg.Days))

		band := categories[rng.Intn(len(categories))]
		price := band.Min + rng.Float64()*(band.Max-band.Min)
		if m := date.Month(); m == time.November || m == time.December {
			price *= holidayPriceFactor
		}
		price = round2(price)

		quantity := quantities.pick(rng)
		revenue := round2(price * float64(quantity))

		rows = append(rows, Transaction{
			OrderID:    fmt.Sprintf("ORD%06d", i+1),
			CustomerID: fmt.Sprintf("CUST%05d", rng.Intn(cfg.CustomerPool)+1),
			Date:       date,
			Category:   band.Category,
			Price:      price,
			Quantity:   quantity,
			Revenue:    revenue,
			Segment:    segments.pick(rng),
			Region:     regions[rng.Intn(len(regions))],
		})
	}
	return rows
}

// ============================================================================
// WEIGHTED CHOICE
// ============================================================================

type weightedStrings struct {
	values  []string
	weights []float64
}

func (w weightedStrings) pick(rng *rand.Rand) string {
	return w.values[pickIndex(rng, w.weights)]
}

type weightedInts struct {
	values  []int
	weights []float64
}

func (w weightedInts) pick(rng *rand.Rand) int {
	return w.values[pickIndex(rng, w.weights)]
}

// pickIndex draws an index proportionally to weights. Weights are assumed to
// sum to 1; the last index absorbs any float remainder.
func pickIndex(rng *rand.Rand, weights []float64) int {
	r := rng.Float64()
	var cum float64
	for i, w := range weights {
		cum += w
		if r < cum {
			return i
		}
	}
	return len(weights) - 1
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
