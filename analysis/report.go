package analysis

import (
	"fmt"
	"io"
	"strings"

	"github.com/salescope-io/salescope/dataset"
	"github.com/salescope-io/salescope/engine"
)

// ============================================================================
// REPORT — Human-readable console output
// ============================================================================

// Report is everything a run prints to stdout.
type Report struct {
	Cleaning dataset.CleanReport
	Metrics  KeyMetrics
	Table    *engine.TableData
	Insights Insights
}

// Write renders the full report to w.
func (r Report) Write(w io.Writer) error {
	var b strings.Builder

	writeCleaning(&b, r.Cleaning)
	writeMetrics(&b, r.Metrics)
	if r.Table != nil {
		writeTable(&b, r.Table)
	}
	writeInsights(&b, r.Insights)
	writeRecommendations(&b, Recommendations(r.Insights))

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func writeCleaning(b *strings.Builder, rep dataset.CleanReport) {
	fmt.Fprintln(b, "=== DATA CLEANING REPORT ===")
	fmt.Fprintf(b, "Original rows: %s\n", engine.FormatInt(rep.Original))
	fmt.Fprintf(b, "Missing values: %s\n", engine.FormatInt(rep.MissingValues))
	fmt.Fprintf(b, "After removing duplicates: %s\n", engine.FormatInt(rep.AfterDedup))
	fmt.Fprintf(b, "After removing outliers: %s (99th percentile revenue %s)\n",
		engine.FormatInt(rep.AfterOutliers), engine.FormatCurrency(rep.RevenueP99, Currency))
	fmt.Fprintln(b)
}

func writeMetrics(b *strings.Builder, m KeyMetrics) {
	fmt.Fprintln(b, "=== KEY BUSINESS METRICS ===")
	fmt.Fprintf(b, "Total Revenue: %s\n", engine.FormatCurrency(m.TotalRevenue, Currency))
	fmt.Fprintf(b, "Total Orders: %s\n", engine.FormatInt(m.TotalOrders))
	fmt.Fprintf(b, "Average Order Value: %s\n", engine.FormatCurrency(m.AverageOrderValue, Currency))
	fmt.Fprintf(b, "Median Order Value: %s\n", engine.FormatCurrency(m.MedianOrderValue, Currency))
	fmt.Fprintf(b, "Total Customers: %s\n", engine.FormatInt(m.TotalCustomers))
	fmt.Fprintf(b, "Customer Lifetime Value: %s\n", engine.FormatCurrency(m.CustomerLifetimeValue, Currency))
	fmt.Fprintln(b)
}

func writeTable(b *strings.Builder, table *engine.TableData) {
	fmt.Fprintf(b, "=== %s ===\n", strings.ToUpper(table.Title))

	widths := columnWidths(table)
	for i, col := range table.Columns {
		fmt.Fprintf(b, "%-*s", widths[i]+2, col.Label)
	}
	fmt.Fprintln(b)

	for _, row := range table.Rows {
		for i, cell := range row {
			fmt.Fprintf(b, "%-*s", widths[i]+2, cell)
		}
		fmt.Fprintln(b)
	}

	if table.Summary != nil {
		fmt.Fprintf(b, "%s: ", table.Summary.Label)
		parts := make([]string, 0, len(table.Columns))
		for _, col := range table.Columns {
			if v, ok := table.Summary.Values[col.Key]; ok {
				parts = append(parts, fmt.Sprintf("%s %s", col.Label, v))
			}
		}
		fmt.Fprintln(b, strings.Join(parts, ", "))
	}
	fmt.Fprintln(b)
}

func columnWidths(table *engine.TableData) []int {
	widths := make([]int, len(table.Columns))
	for i, col := range table.Columns {
		widths[i] = len(col.Label)
	}
	for _, row := range table.Rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}
	return widths
}

func writeInsights(b *strings.Builder, ins Insights) {
	fmt.Fprintln(b, "=== KEY INSIGHTS ===")
	fmt.Fprintf(b, "1. Top Category: %s (%s)\n",
		ins.TopCategory, engine.FormatCurrency(ins.TopCategoryRevenue, Currency))
	fmt.Fprintf(b, "2. Peak Sales Month: %s\n", ins.PeakMonth)
	fmt.Fprintf(b, "3. Best Performing Region: %s\n", ins.BestRegion)
	fmt.Fprintf(b, "4. Repeat Customer Rate: %.1f%%\n", ins.RepeatCustomerRate)
	fmt.Fprintf(b, "5. Top 20%% customers generate %.1f%% of revenue\n", ins.RevenueConcentration)
	fmt.Fprintln(b)
}

func writeRecommendations(b *strings.Builder, recs []string) {
	fmt.Fprintln(b, "=== RECOMMENDATIONS ===")
	for i, rec := range recs {
		fmt.Fprintf(b, "%d. %s\n", i+1, rec)
	}
}
