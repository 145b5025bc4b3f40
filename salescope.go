// Package salescope synthesizes an e-commerce transaction table and turns it
// into a sales analytics dashboard: cleaned CSV dump, key business metrics,
// chart PNGs, and a textual insight report.
//
// Usage:
//
//	salescope -records 50000 -seed 42 -out ecommerce_sales_data.csv
//
// The pipeline is linear: generate → clean → dump → aggregate → render →
// report. The dataset package owns the table, the engine package owns
// grouping and aggregation, analysis derives metrics and insights, and
// render rasterizes charts. Nothing calls an external service — all
// computation is local.
package salescope
