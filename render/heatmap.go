package render

import (
	"github.com/fogleman/gg"

	"github.com/salescope-io/salescope/engine"
)

// ============================================================================
// HEATMAP — two-dimension pivot as an annotated grid
// ============================================================================
// Rows come from the point labels of the first series (primary dimension),
// columns from the series themselves (secondary dimension). Cell intensity
// ramps white → red against the matrix maximum.
// ============================================================================

// Ramp endpoint, matching the palette's red.
var heatR, heatG, heatB = 0.906, 0.298, 0.235 // #e74c3c

func renderHeatmap(cfg *engine.ChartConfig) *gg.Context {
	dc := newCanvas(heatmapWidth, heatmapHeight, cfg.Title)

	rows := pointLabels(cfg.Series[0])
	cols := make([]string, len(cfg.Series))
	for i, s := range cfg.Series {
		cols[i] = s.Name
	}

	// Matrix max for the color ramp.
	var maxVal float64
	for _, s := range cfg.Series {
		if m := maxPointValue(s); m > maxVal {
			maxVal = m
		}
	}
	if maxVal <= 0 || len(rows) == 0 {
		return dc
	}

	grid := plotArea{
		x0: 190,
		y0: marginTop + 20,
		x1: heatmapWidth - marginRight,
		y1: heatmapHeight - 60,
	}
	cellW := grid.width() / float64(len(cols))
	cellH := grid.height() / float64(len(rows))

	// Column headers.
	dc.SetRGB(0.2, 0.2, 0.2)
	for c, name := range cols {
		x := grid.x0 + cellW*(float64(c)+0.5)
		dc.DrawStringAnchored(name, x, grid.y0-14, 0.5, 0.5)
	}

	for r, rowLabel := range rows {
		yCenter := grid.y0 + cellH*(float64(r)+0.5)

		dc.SetRGB(0.2, 0.2, 0.2)
		dc.DrawStringAnchored(rowLabel, grid.x0-10, yCenter, 1, 0.5)

		for c := range cols {
			value := cellValue(cfg.Series[c], r)
			x := grid.x0 + cellW*float64(c)
			y := grid.y0 + cellH*float64(r)

			t := value / maxVal
			dc.SetRGB(1-(1-heatR)*t, 1-(1-heatG)*t, 1-(1-heatB)*t)
			dc.DrawRectangle(x, y, cellW, cellH)
			dc.Fill()

			dc.SetRGBA(1, 1, 1, 0.9)
			dc.DrawRectangle(x, y, cellW, cellH)
			dc.SetLineWidth(1.5)
			dc.Stroke()

			// Annotation stays readable on both ends of the ramp.
			if t > 0.55 {
				dc.SetRGB(1, 1, 1)
			} else {
				dc.SetRGB(0.15, 0.15, 0.15)
			}
			dc.DrawStringAnchored(formatTick(value), x+cellW/2, y+cellH/2, 0.5, 0.5)
		}
	}

	if cfg.XAxis != "" {
		dc.SetRGB(0.25, 0.25, 0.25)
		dc.DrawStringAnchored(cfg.XAxis, grid.x0-10, grid.y0-14, 1, 0.5)
	}
	return dc
}

// cellValue reads the r-th point of a series, zero when the pivot is ragged.
func cellValue(series engine.ChartSeries, r int) float64 {
	if r < 0 || r >= len(series.Data) {
		return 0
	}
	return series.Data[r].Value
}
