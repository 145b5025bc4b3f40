package render

import (
	"fmt"
	"math"

	"github.com/fogleman/gg"

	"github.com/salescope-io/salescope/engine"
)

// Slice palette; assigned per point, not per series.
var pieColors = []string{
	"#e74c3c", "#3498db", "#2ecc71", "#9b59b6", "#f39c12",
	"#1abc9c", "#e67e22", "#34495e", "#95a5a6", "#2c3e50",
}

// renderPie draws the single series as a pie with percentage labels inside
// the slices and a legend on the right.
func renderPie(cfg *engine.ChartConfig) *gg.Context {
	dc := newCanvas(chartWidth, chartHeight, cfg.Title)
	series := cfg.Series[0]

	var total float64
	for _, p := range series.Data {
		total += p.Value
	}
	if total <= 0 {
		return dc
	}

	cx := float64(chartWidth) * 0.4
	cy := float64(chartHeight)/2 + 20
	radius := 190.0

	angle := -math.Pi / 2 // start at 12 o'clock
	for i, p := range series.Data {
		sweep := 2 * math.Pi * p.Value / total

		dc.SetHexColor(pieColors[i%len(pieColors)])
		dc.MoveTo(cx, cy)
		dc.DrawArc(cx, cy, radius, angle, angle+sweep)
		dc.ClosePath()
		dc.Fill()

		// Percentage label at the slice midpoint.
		mid := angle + sweep/2
		lx := cx + math.Cos(mid)*radius*0.6
		ly := cy + math.Sin(mid)*radius*0.6
		dc.SetRGB(1, 1, 1)
		dc.DrawStringAnchored(fmt.Sprintf("%.1f%%", p.Value/total*100), lx, ly, 0.5, 0.5)

		angle += sweep
	}

	if cfg.ShowLegend {
		drawPieLegend(dc, series, total)
	}
	return dc
}

func drawPieLegend(dc *gg.Context, series engine.ChartSeries, total float64) {
	x := float64(chartWidth) * 0.68
	y := float64(chartHeight)/2 - float64(len(series.Data))*14

	for i, p := range series.Data {
		dc.SetHexColor(pieColors[i%len(pieColors)])
		dc.DrawRectangle(x, y-6, 12, 12)
		dc.Fill()

		dc.SetRGB(0.2, 0.2, 0.2)
		label := fmt.Sprintf("%s — %s (%.1f%%)", p.Label, formatTick(p.Value), p.Value/total*100)
		dc.DrawStringAnchored(label, x+20, y, 0, 0.5)
		y += 28
	}
}
