package chart

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gdplens/internal/analysis"
	"gdplens/internal/dataset"
)

func testReport(t *testing.T) *analysis.Report {
	t.Helper()
	table := &dataset.Table{
		Records: []dataset.Record{
			{CountryName: "Colombia", Year: "1960", Value: "4040"},
			{CountryName: "Colombia", Year: "1961", Value: "4552"},
			{CountryName: "Colombia", Year: "1962", Value: "4955"},
			{CountryName: "Colombia", Year: "1963", Value: "5337"},
			{CountryName: "Colombia", Year: "1964", Value: "5110"},
		},
	}
	report, err := analysis.NewAnalyzer(nil, analysis.AnalyzerConfig{
		Country:       "Colombia",
		HistogramBins: 5,
	}).Analyze(context.Background(), table)
	require.NoError(t, err)
	return report
}

func TestRenderer_RenderAll(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "charts")
	renderer := NewRenderer(nil, outDir)

	paths, err := renderer.RenderAll(context.Background(), testReport(t))
	require.NoError(t, err)
	require.Len(t, paths, 5)

	want := []string{
		FileGDPLine,
		FileGrowthBars,
		FileDistribution,
		FileBoxplot,
		FileGrowthScatter,
	}
	for i, name := range want {
		assert.Equal(t, filepath.Join(outDir, name), paths[i])
		info, err := os.Stat(paths[i])
		require.NoError(t, err, name)
		assert.Greater(t, info.Size(), int64(0), name)
	}
}

func TestRenderer_RenderAll_SkipsChartsWithoutData(t *testing.T) {
	// A single-row series has GDP data but no growth column, so the
	// growth bar and scatter charts are skipped.
	table := &dataset.Table{
		Records: []dataset.Record{
			{CountryName: "Colombia", Year: "1960", Value: "4040"},
		},
	}
	report, err := analysis.NewAnalyzer(nil, analysis.DefaultAnalyzerConfig()).
		Analyze(context.Background(), table)
	require.NoError(t, err)

	outDir := t.TempDir()
	paths, err := NewRenderer(nil, outDir).RenderAll(context.Background(), report)
	require.NoError(t, err)

	assert.Len(t, paths, 3)
	for _, p := range paths {
		assert.NotContains(t, p, FileGrowthBars)
		assert.NotContains(t, p, FileGrowthScatter)
	}
}

func TestRenderer_RenderAll_EmptySeries(t *testing.T) {
	report := &analysis.Report{
		Country: "Colombia",
		Series:  &dataset.Series{Country: "Colombia"},
	}

	paths, err := NewRenderer(nil, t.TempDir()).RenderAll(context.Background(), report)
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestRampPosition(t *testing.T) {
	assert.Equal(t, 0.0, rampPosition(-10, -10, 10))
	assert.Equal(t, 0.5, rampPosition(0, -10, 10))
	assert.Equal(t, 1.0, rampPosition(10, -10, 10))
	// Flat range maps to midpoint.
	assert.Equal(t, 0.5, rampPosition(5, 5, 5))
}
