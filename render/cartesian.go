package render

import (
	"github.com/fogleman/gg"

	"github.com/salescope-io/salescope/engine"
)

// ============================================================================
// CARTESIAN CHARTS — line, area, bar, hbar
// ============================================================================
// All four draw a single series against a value axis. Multi-series data is
// rendered by the heatmap instead.
// ============================================================================

func renderLine(cfg *engine.ChartConfig) *gg.Context {
	return renderTrend(cfg, false)
}

func renderArea(cfg *engine.ChartConfig) *gg.Context {
	return renderTrend(cfg, true)
}

// renderTrend draws points connected left to right, optionally filling the
// area down to the baseline.
func renderTrend(cfg *engine.ChartConfig, filled bool) *gg.Context {
	dc := newCanvas(chartWidth, chartHeight, cfg.Title)
	plot := defaultPlotArea(chartWidth, chartHeight)
	series := cfg.Series[0]
	niceMax := drawValueAxis(dc, plot, maxPointValue(series), cfg.YAxis, cfg.ShowGrid)

	n := len(series.Data)
	xAt := func(i int) float64 {
		if n == 1 {
			return (plot.x0 + plot.x1) / 2
		}
		return plot.x0 + plot.width()*float64(i)/float64(n-1)
	}
	yAt := func(v float64) float64 {
		return plot.y1 - plot.height()*v/niceMax
	}

	if filled {
		dc.MoveTo(xAt(0), plot.y1)
		for i, p := range series.Data {
			dc.LineTo(xAt(i), yAt(p.Value))
		}
		dc.LineTo(xAt(n-1), plot.y1)
		dc.ClosePath()
		dc.SetRGBA(0.204, 0.596, 0.859, 0.35) // translucent fill under the line
		dc.Fill()
	}

	dc.SetHexColor(seriesColor(cfg, 0))
	dc.SetLineWidth(2.5)
	for i, p := range series.Data {
		if i == 0 {
			dc.MoveTo(xAt(i), yAt(p.Value))
		} else {
			dc.LineTo(xAt(i), yAt(p.Value))
		}
	}
	dc.Stroke()

	for i, p := range series.Data {
		dc.DrawCircle(xAt(i), yAt(p.Value), 3)
		dc.Fill()
	}

	labels := pointLabels(series)
	drawCategoryLabels(dc, plot, labels, xAt, cfg.XAxis)
	return dc
}

func renderBar(cfg *engine.ChartConfig) *gg.Context {
	dc := newCanvas(chartWidth, chartHeight, cfg.Title)
	plot := defaultPlotArea(chartWidth, chartHeight)
	series := cfg.Series[0]
	niceMax := drawValueAxis(dc, plot, maxPointValue(series), cfg.YAxis, cfg.ShowGrid)

	n := len(series.Data)
	slot := plot.width() / float64(n)
	barWidth := slot * 0.6
	xAt := func(i int) float64 {
		return plot.x0 + slot*(float64(i)+0.5)
	}

	dc.SetHexColor(seriesColor(cfg, 0))
	for i, p := range series.Data {
		h := plot.height() * p.Value / niceMax
		dc.DrawRectangle(xAt(i)-barWidth/2, plot.y1-h, barWidth, h)
		dc.Fill()
	}

	// Value labels above each bar.
	dc.SetRGB(0.2, 0.2, 0.2)
	for i, p := range series.Data {
		h := plot.height() * p.Value / niceMax
		dc.DrawStringAnchored(formatTick(p.Value), xAt(i), plot.y1-h-10, 0.5, 0.5)
	}

	drawCategoryLabels(dc, plot, pointLabels(series), xAt, cfg.XAxis)
	return dc
}

func renderHBar(cfg *engine.ChartConfig) *gg.Context {
	dc := newCanvas(chartWidth, chartHeight, cfg.Title)
	// Wider left margin for category names.
	plot := plotArea{
		x0: 190,
		y0: marginTop,
		x1: chartWidth - marginRight,
		y1: chartHeight - marginBottom,
	}
	series := cfg.Series[0]
	niceMax := niceCeil(maxPointValue(series))

	n := len(series.Data)
	slot := plot.height() / float64(n)
	barHeight := slot * 0.6

	// Bottom value scale.
	const ticks = 5
	dc.SetLineWidth(1)
	for i := 0; i <= ticks; i++ {
		v := niceMax * float64(i) / ticks
		x := plot.x0 + plot.width()*float64(i)/ticks
		if cfg.ShowGrid && i > 0 {
			dc.SetRGBA(0, 0, 0, 0.08)
			dc.DrawLine(x, plot.y0, x, plot.y1)
			dc.Stroke()
		}
		dc.SetRGB(0.25, 0.25, 0.25)
		dc.DrawStringAnchored(formatTick(v), x, plot.y1+14, 0.5, 0.5)
	}
	dc.SetRGB(0.35, 0.35, 0.35)
	dc.DrawLine(plot.x0, plot.y0, plot.x0, plot.y1)
	dc.DrawLine(plot.x0, plot.y1, plot.x1, plot.y1)
	dc.Stroke()

	for i, p := range series.Data {
		yCenter := plot.y0 + slot*(float64(i)+0.5)
		w := plot.width() * p.Value / niceMax

		dc.SetHexColor(seriesColor(cfg, 0))
		dc.DrawRectangle(plot.x0, yCenter-barHeight/2, w, barHeight)
		dc.Fill()

		dc.SetRGB(0.25, 0.25, 0.25)
		dc.DrawStringAnchored(p.Label, plot.x0-8, yCenter, 1, 0.5)
		dc.DrawStringAnchored(formatTick(p.Value), plot.x0+w+8, yCenter, 0, 0.5)
	}

	if cfg.YAxis != "" {
		dc.SetRGB(0.25, 0.25, 0.25)
		dc.DrawStringAnchored(cfg.YAxis, (plot.x0+plot.x1)/2, plot.y1+40, 0.5, 0.5)
	}
	return dc
}

func pointLabels(series engine.ChartSeries) []string {
	labels := make([]string, len(series.Data))
	for i, p := range series.Data {
		labels[i] = p.Label
	}
	return labels
}
