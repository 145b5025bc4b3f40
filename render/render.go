// Package render rasterizes engine chart configs into PNG files.
package render

import (
	"fmt"
	"math"

	"github.com/fogleman/gg"

	"github.com/salescope-io/salescope/engine"
)

// Canvas sizes. The heatmap is narrower because it has no y axis scale.
const (
	chartWidth  = 1200
	chartHeight = 600

	heatmapWidth  = 1000
	heatmapHeight = 600
)

// Plot margins inside the canvas.
const (
	marginLeft   = 90.0
	marginRight  = 50.0
	marginTop    = 70.0
	marginBottom = 90.0
)

// Render rasterizes a chart config to a PNG at path.
func Render(cfg *engine.ChartConfig, path string) error {
	if cfg == nil || len(cfg.Series) == 0 {
		return fmt.Errorf("render %s: empty chart", path)
	}

	var dc *gg.Context
	switch cfg.ChartType {
	case "line":
		dc = renderLine(cfg)
	case "bar":
		dc = renderBar(cfg)
	case "hbar":
		dc = renderHBar(cfg)
	case "area":
		dc = renderArea(cfg)
	case "pie":
		dc = renderPie(cfg)
	case "heatmap":
		dc = renderHeatmap(cfg)
	default:
		return fmt.Errorf("render %s: unknown chart type %q", path, cfg.ChartType)
	}

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}
	return nil
}

// ============================================================================
// CANVAS & AXES
// ============================================================================

type plotArea struct {
	x0, y0, x1, y1 float64
}

func (p plotArea) width() float64  { return p.x1 - p.x0 }
func (p plotArea) height() float64 { return p.y1 - p.y0 }

// newCanvas creates a white canvas with the title drawn top-center.
func newCanvas(w, h int, title string) *gg.Context {
	dc := gg.NewContext(w, h)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetRGB(0.1, 0.1, 0.1)
	dc.DrawStringAnchored(title, float64(w)/2, 28, 0.5, 0.5)
	return dc
}

func defaultPlotArea(w, h int) plotArea {
	return plotArea{
		x0: marginLeft,
		y0: marginTop,
		x1: float64(w) - marginRight,
		y1: float64(h) - marginBottom,
	}
}

// drawValueAxis draws the y axis with tick labels, grid lines, and the axis
// caption. Returns the nice maximum the plot should scale against.
func drawValueAxis(dc *gg.Context, plot plotArea, maxValue float64, caption string, grid bool) float64 {
	niceMax := niceCeil(maxValue)
	const ticks = 5

	dc.SetLineWidth(1)
	for i := 0; i <= ticks; i++ {
		v := niceMax * float64(i) / ticks
		y := plot.y1 - plot.height()*float64(i)/ticks

		if grid && i > 0 {
			dc.SetRGBA(0, 0, 0, 0.08)
			dc.DrawLine(plot.x0, y, plot.x1, y)
			dc.Stroke()
		}

		dc.SetRGB(0.25, 0.25, 0.25)
		dc.DrawStringAnchored(formatTick(v), plot.x0-8, y, 1, 0.5)
	}

	// Axis lines.
	dc.SetRGB(0.35, 0.35, 0.35)
	dc.DrawLine(plot.x0, plot.y0, plot.x0, plot.y1)
	dc.DrawLine(plot.x0, plot.y1, plot.x1, plot.y1)
	dc.Stroke()

	if caption != "" {
		dc.Push()
		dc.RotateAbout(gg.Radians(-90), 24, (plot.y0+plot.y1)/2)
		dc.DrawStringAnchored(caption, 24, (plot.y0+plot.y1)/2, 0.5, 0.5)
		dc.Pop()
	}

	return niceMax
}

// drawCategoryLabels writes the x labels under the plot, rotated when they
// would collide.
func drawCategoryLabels(dc *gg.Context, plot plotArea, labels []string, xAt func(i int) float64, caption string) {
	rotate := needsRotation(dc, plot, labels)
	dc.SetRGB(0.25, 0.25, 0.25)
	for i, label := range labels {
		x := xAt(i)
		y := plot.y1 + 12
		if rotate {
			dc.Push()
			dc.RotateAbout(gg.Radians(-45), x, y)
			dc.DrawStringAnchored(label, x, y, 1, 0.5)
			dc.Pop()
		} else {
			dc.DrawStringAnchored(label, x, y, 0.5, 0.5)
		}
	}
	if caption != "" {
		dc.DrawStringAnchored(caption, (plot.x0+plot.x1)/2, plot.y1+60, 0.5, 0.5)
	}
}

func needsRotation(dc *gg.Context, plot plotArea, labels []string) bool {
	if len(labels) == 0 {
		return false
	}
	slot := plot.width() / float64(len(labels))
	for _, label := range labels {
		if w, _ := dc.MeasureString(label); w+6 > slot {
			return true
		}
	}
	return false
}

// ============================================================================
// SCALE HELPERS
// ============================================================================

// niceCeil rounds v up to a 1/2/2.5/5 × 10^k boundary so axis ticks land on
// round numbers.
func niceCeil(v float64) float64 {
	if v <= 0 {
		return 1
	}
	pow := math.Pow(10, math.Floor(math.Log10(v)))
	frac := v / pow
	var nice float64
	switch {
	case frac <= 1:
		nice = 1
	case frac <= 2:
		nice = 2
	case frac <= 2.5:
		nice = 2.5
	case frac <= 5:
		nice = 5
	default:
		nice = 10
	}
	return nice * pow
}

// formatTick renders an axis value compactly: 1.2M, 340K, 87.
func formatTick(v float64) string {
	switch {
	case v >= 1e6:
		return fmt.Sprintf("%.1fM", v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("%.0fK", v/1e3)
	default:
		return fmt.Sprintf("%.0f", v)
	}
}

func maxPointValue(series engine.ChartSeries) float64 {
	var m float64
	for _, p := range series.Data {
		if p.Value > m {
			m = p.Value
		}
	}
	return m
}

func seriesColor(cfg *engine.ChartConfig, i int) string {
	if i < len(cfg.Series) && cfg.Series[i].Color != "" {
		return cfg.Series[i].Color
	}
	if i < len(cfg.Colors) {
		return cfg.Colors[i]
	}
	return "#3498db"
}
