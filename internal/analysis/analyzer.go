package analysis

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"gdplens/internal/dataset"
	apperrors "gdplens/internal/errors"
	"gdplens/internal/infrastructure"
	"gdplens/internal/stats"
)

// AnalyzerConfig holds configuration options for the Analyzer.
type AnalyzerConfig struct {
	Country       string // Target country, matched exactly against Country Name
	HistogramBins int    // Bucket count for the GDP distribution histogram
}

// DefaultAnalyzerConfig returns the configuration of the reference
// analysis.
func DefaultAnalyzerConfig() AnalyzerConfig {
	return AnalyzerConfig{
		Country:       "Colombia",
		HistogramBins: 15,
	}
}

// Analyzer runs the full descriptive analysis over a loaded dataset:
// filter to one country, normalize, compute the seven statistics,
// derive the growth column, and locate the growth extremes. It holds
// no state between runs; the same input always produces the same
// report.
type Analyzer struct {
	logger *slog.Logger
	cfg    AnalyzerConfig
}

// NewAnalyzer creates an analyzer with the given configuration.
// A nil logger falls back to slog.Default().
func NewAnalyzer(logger *slog.Logger, cfg AnalyzerConfig) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.HistogramBins <= 0 {
		cfg.HistogramBins = 15
	}
	return &Analyzer{logger: logger, cfg: cfg}
}

// GrowthExtreme identifies the row holding a growth extremum.
type GrowthExtreme struct {
	Index int           `json:"index"`
	Year  dataset.Float `json:"year"`
	Pct   float64       `json:"pct"`
}

// Report is the result of one pipeline run.
type Report struct {
	RunID       string          `json:"run_id"`
	Country     string          `json:"country"`
	Source      string          `json:"source"`
	GeneratedAt time.Time       `json:"generated_at"`
	Series      *dataset.Series `json:"series"`
	Summary     stats.Summary   `json:"summary"`
	Quartiles   stats.Quartiles `json:"quartiles"`
	Histogram   []stats.Bin     `json:"histogram"`
	HasGrowth   bool            `json:"has_growth"`
	MaxGrowth   GrowthExtreme   `json:"max_growth,omitempty"`
	MinGrowth   GrowthExtreme   `json:"min_growth,omitempty"`
}

// Analyze executes the sequential pipeline over the loaded table.
// It returns an empty-result error (wrapping errors.ErrNoCountryData)
// when the filter matches zero rows; a series without usable growth
// data is not an error here, but Report.Conclusions will refuse it.
func (a *Analyzer) Analyze(ctx context.Context, table *dataset.Table) (*Report, error) {
	a.logger.InfoContext(ctx, "starting analysis",
		slog.String("country", a.cfg.Country),
		slog.Int("dataset_rows", table.Len()))

	filtered := table.FilterCountry(a.cfg.Country)
	if filtered.Len() == 0 {
		return nil, apperrors.NewEmptyResultError(
			"filter matched zero rows", apperrors.ErrNoCountryData).
			WithContext("country", a.cfg.Country)
	}

	series := dataset.Normalize(ctx, a.logger, filtered)

	gdp := series.ValidGDP()
	report := &Report{
		RunID:       runID(ctx),
		Country:     a.cfg.Country,
		Source:      table.Source,
		GeneratedAt: time.Now(),
		Series:      series,
		Summary:     stats.Describe(gdp),
		Quartiles:   stats.ComputeQuartiles(gdp),
		Histogram:   stats.HistogramBins(gdp, a.cfg.HistogramBins),
	}

	stats.Growth(series)

	if maxIdx, ok := stats.ArgMaxGrowth(series); ok {
		report.HasGrowth = true
		report.MaxGrowth = extremeAt(series, maxIdx)
		minIdx, _ := stats.ArgMinGrowth(series)
		report.MinGrowth = extremeAt(series, minIdx)
	} else {
		a.logger.WarnContext(ctx, "no growth data available",
			slog.String("country", a.cfg.Country),
			slog.Int("rows", series.Len()))
	}

	a.logger.InfoContext(ctx, "analysis complete",
		slog.String("country", a.cfg.Country),
		slog.Int("rows", series.Len()),
		slog.Int("valid_gdp_values", len(gdp)),
		slog.Bool("has_growth", report.HasGrowth))

	return report, nil
}

func extremeAt(s *dataset.Series, idx int) GrowthExtreme {
	obs := s.Observations[idx]
	return GrowthExtreme{
		Index: idx,
		Year:  obs.Year,
		Pct:   obs.GrowthPct.Float64,
	}
}

func runID(ctx context.Context) string {
	if id := infrastructure.RunIDFromContext(ctx); id != "" {
		return id
	}
	return uuid.NewString()
}
