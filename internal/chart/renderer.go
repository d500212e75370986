package chart

import (
	"context"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"gdplens/internal/analysis"
	"gdplens/internal/dataset"
	apperrors "gdplens/internal/errors"
	"gdplens/internal/stats"
)

// Chart file names, one per view.
const (
	FileGDPLine       = "gdp_evolution.png"
	FileGrowthBars    = "gdp_growth_bars.png"
	FileDistribution  = "gdp_distribution.png"
	FileBoxplot       = "gdp_boxplot.png"
	FileGrowthScatter = "gdp_growth_scatter.png"
)

// Renderer draws the five chart views of a report as PNG files.
type Renderer struct {
	logger *slog.Logger
	outDir string
}

// NewRenderer creates a renderer writing into outDir. A nil logger
// falls back to slog.Default().
func NewRenderer(logger *slog.Logger, outDir string) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{logger: logger, outDir: outDir}
}

// RenderAll renders every chart that has enough data and returns the
// written paths. Charts without usable data are skipped with a warning
// rather than failing the run.
func (r *Renderer) RenderAll(ctx context.Context, report *analysis.Report) ([]string, error) {
	if err := os.MkdirAll(r.outDir, 0755); err != nil {
		return nil, apperrors.NewStorageError("failed to create charts directory", err)
	}

	charts := []struct {
		name  string
		build func(*analysis.Report) (*plot.Plot, bool, error)
	}{
		{FileGDPLine, r.buildGDPLine},
		{FileGrowthBars, r.buildGrowthBars},
		{FileDistribution, r.buildDistribution},
		{FileBoxplot, r.buildBoxplot},
		{FileGrowthScatter, r.buildGrowthScatter},
	}

	var written []string
	for _, c := range charts {
		p, ok, err := c.build(report)
		if err != nil {
			return written, apperrors.NewStorageError(
				fmt.Sprintf("failed to build chart %s", c.name), err)
		}
		if !ok {
			r.logger.WarnContext(ctx, "skipping chart without data",
				slog.String("chart", c.name),
				slog.String("country", report.Country))
			continue
		}

		path := filepath.Join(r.outDir, c.name)
		if err := p.Save(10*vg.Inch, 5*vg.Inch, path); err != nil {
			return written, apperrors.NewStorageError(
				fmt.Sprintf("failed to save chart %s", c.name), err).
				WithContext("path", path)
		}

		r.logger.InfoContext(ctx, "chart written", slog.String("path", path))
		written = append(written, path)
	}

	return written, nil
}

// buildGDPLine is the GDP-vs-year line chart with point markers.
func (r *Renderer) buildGDPLine(report *analysis.Report) (*plot.Plot, bool, error) {
	pts := make(plotter.XYs, 0, report.Series.Len())
	for _, obs := range report.Series.Observations {
		if obs.Year.Valid && obs.GDP.Valid {
			pts = append(pts, plotter.XY{X: obs.Year.Float64, Y: obs.GDP.Float64})
		}
	}
	if len(pts) == 0 {
		return nil, false, nil
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("GDP Evolution of %s", report.Country)
	p.X.Label.Text = "Year"
	p.Y.Label.Text = "Nominal GDP (USD)"
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, false, err
	}
	line.Width = vg.Points(2)
	line.Color = color.RGBA{R: 0, G: 109, B: 91, A: 255}

	markers, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, false, err
	}
	markers.GlyphStyle.Shape = draw.CircleGlyph{}
	markers.GlyphStyle.Radius = vg.Points(2)
	markers.GlyphStyle.Color = line.Color

	p.Add(line, markers)
	return p, true, nil
}

// buildGrowthBars is the year-over-year growth bar chart. Rows without
// a growth value are left out.
func (r *Renderer) buildGrowthBars(report *analysis.Report) (*plot.Plot, bool, error) {
	var values plotter.Values
	var labels []string
	for _, obs := range report.Series.Observations {
		if obs.GrowthPct.Valid {
			values = append(values, obs.GrowthPct.Float64)
			labels = append(labels, yearLabel(obs.Year))
		}
	}
	if len(values) == 0 {
		return nil, false, nil
	}

	p := plot.New()
	p.Title.Text = "Annual GDP Growth Rate (%)"
	p.X.Label.Text = "Year"
	p.Y.Label.Text = "Annual growth (%)"
	p.X.Tick.Label.Rotation = 1.5708
	p.X.Tick.Label.YAlign = draw.YCenter
	p.X.Tick.Label.XAlign = draw.XRight

	bars, err := plotter.NewBarChart(values, vg.Points(6))
	if err != nil {
		return nil, false, err
	}
	bars.LineStyle.Width = vg.Length(0)
	bars.Color = color.RGBA{R: 0, G: 128, B: 128, A: 255}

	p.Add(bars)
	p.NominalX(labels...)
	return p, true, nil
}

// buildDistribution is the GDP histogram with a Gaussian density
// overlay, both in density scale so they share one axis.
func (r *Renderer) buildDistribution(report *analysis.Report) (*plot.Plot, bool, error) {
	gdp := report.Series.ValidGDP()
	if len(gdp) == 0 {
		return nil, false, nil
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("GDP Distribution of %s", report.Country)
	p.X.Label.Text = "GDP (USD)"
	p.Y.Label.Text = "Density"

	hist, err := plotter.NewHist(plotter.Values(gdp), len(report.Histogram))
	if err != nil {
		return nil, false, err
	}
	hist.Normalize(1)
	hist.FillColor = color.RGBA{R: 128, G: 0, B: 128, A: 128}
	p.Add(hist)

	if kde := stats.GaussianKDE(gdp); kde != nil {
		density := plotter.NewFunction(kde)
		density.Width = vg.Points(2)
		density.Color = color.RGBA{R: 75, G: 0, B: 130, A: 255}
		p.Add(density)
	}

	return p, true, nil
}

// buildBoxplot is the single-box distribution summary; gonum draws the
// conventional quartile box with 1.5xIQR whiskers and outliers.
func (r *Renderer) buildBoxplot(report *analysis.Report) (*plot.Plot, bool, error) {
	gdp := report.Series.ValidGDP()
	if len(gdp) == 0 {
		return nil, false, nil
	}

	p := plot.New()
	p.Title.Text = "GDP Distribution and Outliers"
	p.Y.Label.Text = "GDP (USD)"

	box, err := plotter.NewBoxPlot(vg.Points(50), 0, plotter.Values(gdp))
	if err != nil {
		return nil, false, err
	}
	box.FillColor = color.RGBA{R: 255, G: 165, B: 0, A: 255}

	p.Add(box)
	p.NominalX(report.Country)
	return p, true, nil
}

// buildGrowthScatter is the year-vs-growth scatter with glyph color and
// radius both mapped to the growth magnitude (cool-to-warm ramp).
func (r *Renderer) buildGrowthScatter(report *analysis.Report) (*plot.Plot, bool, error) {
	type point struct {
		x, y float64
	}
	var pts []point
	minG, maxG := 0.0, 0.0
	for _, obs := range report.Series.Observations {
		if !obs.Year.Valid || !obs.GrowthPct.Valid {
			continue
		}
		g := obs.GrowthPct.Float64
		if len(pts) == 0 || g < minG {
			minG = g
		}
		if len(pts) == 0 || g > maxG {
			maxG = g
		}
		pts = append(pts, point{x: obs.Year.Float64, y: g})
	}
	if len(pts) == 0 {
		return nil, false, nil
	}

	p := plot.New()
	p.Title.Text = "Year vs GDP Growth (%)"
	p.X.Label.Text = "Year"
	p.Y.Label.Text = "Annual growth (%)"
	p.Add(plotter.NewGrid())

	for _, pt := range pts {
		s, err := plotter.NewScatter(plotter.XYs{{X: pt.x, Y: pt.y}})
		if err != nil {
			return nil, false, err
		}
		t := rampPosition(pt.y, minG, maxG)
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		s.GlyphStyle.Color = coolWarm(t)
		s.GlyphStyle.Radius = vg.Points(2 + 6*t)
		p.Add(s)
	}

	return p, true, nil
}

// rampPosition normalizes v into [0,1] between lo and hi; a flat range
// maps everything to the midpoint.
func rampPosition(v, lo, hi float64) float64 {
	if hi == lo {
		return 0.5
	}
	return (v - lo) / (hi - lo)
}

// coolWarm interpolates from blue (low) to red (high).
func coolWarm(t float64) color.Color {
	lerp := func(a, b uint8) uint8 {
		return uint8(float64(a) + t*(float64(b)-float64(a)))
	}
	low := color.RGBA{R: 59, G: 76, B: 192, A: 255}
	high := color.RGBA{R: 180, G: 4, B: 38, A: 255}
	return color.RGBA{
		R: lerp(low.R, high.R),
		G: lerp(low.G, high.G),
		B: lerp(low.B, high.B),
		A: 255,
	}
}

func yearLabel(year dataset.Float) string {
	if !year.Valid {
		return "?"
	}
	return fmt.Sprintf("%d", int(year.Float64))
}
