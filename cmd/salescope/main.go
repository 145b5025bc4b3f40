package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/salescope-io/salescope/analysis"
	"github.com/salescope-io/salescope/dataset"
	"github.com/salescope-io/salescope/engine"
	"github.com/salescope-io/salescope/logger"
	"github.com/salescope-io/salescope/render"
)

// ============================================================================
// SALESCOPE CLI — one-shot sales analytics dashboard
// ============================================================================
// generate → clean → dump CSV → metrics → charts → report
// ============================================================================

const version = "0.1.0"

func main() {
	records := flag.Int("records", dataset.DefaultRecords, "Number of transactions to generate")
	seed := flag.Int64("seed", dataset.DefaultSeed, "Random seed for data generation")
	out := flag.String("out", "ecommerce_sales_data.csv", "Path of the CSV dump (overwritten each run)")
	chartsDir := flag.String("charts-dir", "charts", "Directory for chart PNGs")
	showVersion := flag.Bool("version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Salescope — e-commerce sales analytics dashboard

Usage:
  salescope
  salescope -records 50000 -seed 42 -out ecommerce_sales_data.csv -charts-dir charts

Flags:
`)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Printf("salescope %s\n", version)
		os.Exit(0)
	}

	log := logger.New().With().Str("run_id", uuid.NewString()).Logger()

	if err := run(log, *records, *seed, *out, *chartsDir); err != nil {
		log.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}
}

func run(log zerolog.Logger, records int, seed int64, out, chartsDir string) error {
	// 1. Generate.
	rows := dataset.Generate(dataset.Config{
		Records: records,
		Seed:    seed,
	})
	log.Info().Int("rows", len(rows)).Int64("seed", seed).Msg("generated transactions")

	// 2. Clean.
	cleaned, cleanReport, err := dataset.Clean(rows)
	if err != nil {
		return fmt.Errorf("clean: %w", err)
	}
	log.Info().
		Int("after_dedup", cleanReport.AfterDedup).
		Int("after_outliers", cleanReport.AfterOutliers).
		Float64("revenue_p99", engine.RoundTo2(cleanReport.RevenueP99)).
		Msg("cleaned table")

	// 3. Dump CSV.
	if err := dataset.WriteCSV(out, cleaned); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	log.Info().Str("path", out).Int("rows", len(cleaned)).Msg("wrote CSV dump")

	view := dataset.View(cleaned)

	// 4. Metrics & insights.
	metrics, err := analysis.ComputeKeyMetrics(view)
	if err != nil {
		return fmt.Errorf("metrics: %w", err)
	}
	insights, err := analysis.ComputeInsights(view)
	if err != nil {
		return fmt.Errorf("insights: %w", err)
	}

	// 5. Charts.
	if err := os.MkdirAll(chartsDir, 0o750); err != nil {
		return fmt.Errorf("create charts dir: %w", err)
	}
	for _, chart := range analysis.DashboardCharts(view) {
		path := filepath.Join(chartsDir, chart.Filename)
		if err := render.Render(chart.Config, path); err != nil {
			return err
		}
		log.Info().Str("chart", chart.Config.ChartType).Str("path", path).Msg("rendered chart")
	}

	// 6. Report.
	report := analysis.Report{
		Cleaning: cleanReport,
		Metrics:  metrics,
		Table:    analysis.CategoryTable(view),
		Insights: insights,
	}
	if err := report.Write(os.Stdout); err != nil {
		return err
	}

	log.Info().Msg("analysis complete")
	return nil
}
