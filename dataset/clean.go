package dataset

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// ============================================================================
// CLEANER — Dedup + outlier trim
// ============================================================================
// Two weak invariants hold after cleaning: order ids are unique, and no
// revenue exceeds the 99th percentile of the pre-trim distribution.
// ============================================================================

// CleanReport summarizes what cleaning removed.
type CleanReport struct {
	Original      int     // rows before cleaning
	MissingValues int     // rows with an empty required field or zero date
	AfterDedup    int     // rows after dropping duplicate order ids
	AfterOutliers int     // rows after the percentile trim
	RevenueP99    float64 // trim threshold
}

// revenuePercentile is the outlier cutoff.
const revenuePercentile = 99

// Clean deduplicates by order id (first occurrence wins) and drops rows whose
// revenue exceeds the 99th percentile. The input slice is not modified.
func Clean(rows []Transaction) ([]Transaction, CleanReport, error) {
	report := CleanReport{Original: len(rows)}
	if len(rows) == 0 {
		return nil, report, fmt.Errorf("clean: empty table")
	}

	report.MissingValues = countMissing(rows)

	// Dedup, preserving input order.
	seen := make(map[string]bool, len(rows))
	deduped := make([]Transaction, 0, len(rows))
	for _, t := range rows {
		if seen[t.OrderID] {
			continue
		}
		seen[t.OrderID] = true
		deduped = append(deduped, t)
	}
	report.AfterDedup = len(deduped)

	// Outlier trim at the 99th revenue percentile.
	revenues := make([]float64, len(deduped))
	for i, t := range deduped {
		revenues[i] = t.Revenue
	}
	p99, err := stats.Percentile(revenues, revenuePercentile)
	if err != nil {
		return nil, report, fmt.Errorf("clean: revenue percentile: %w", err)
	}
	report.RevenueP99 = p99

	cleaned := make([]Transaction, 0, len(deduped))
	for _, t := range deduped {
		if t.Revenue <= p99 {
			cleaned = append(cleaned, t)
		}
	}
	report.AfterOutliers = len(cleaned)

	return cleaned, report, nil
}

// countMissing reports rows with an unset required field. Generated data
// never has any, but read-back data might.
func countMissing(rows []Transaction) int {
	missing := 0
	for _, t := range rows {
		if t.OrderID == "" || t.CustomerID == "" || t.Category == "" ||
			t.Segment == "" || t.Region == "" || t.Date.IsZero() {
			missing++
		}
	}
	return missing
}
