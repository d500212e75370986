package exporter

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gdplens/internal/analysis"
	"gdplens/internal/dataset"
)

func testReport() *analysis.Report {
	return &analysis.Report{
		RunID:       "test-run",
		Country:     "Colombia",
		Source:      "test.csv",
		GeneratedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Series: &dataset.Series{
			Country: "Colombia",
			Observations: []dataset.Observation{
				{Year: dataset.FloatFrom(2000), GDP: dataset.FloatFrom(100), GrowthPct: dataset.InvalidFloat()},
				{Year: dataset.FloatFrom(2001), GDP: dataset.FloatFrom(110), GrowthPct: dataset.FloatFrom(10)},
				{Year: dataset.FloatFrom(2002), GDP: dataset.InvalidFloat(), GrowthPct: dataset.InvalidFloat()},
			},
		},
	}
}

func TestCSVWriterWriteSeries(t *testing.T) {
	dir := t.TempDir()
	w := NewCSVWriter(nil, dir)

	path, err := w.WriteSeries(context.Background(), "series.csv", testReport())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "series.csv"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	content := string(data)
	assert.True(t, strings.HasPrefix(content, "\xEF\xBB\xBF"), "expected UTF-8 BOM prefix")

	lines := strings.Split(strings.TrimSpace(strings.TrimPrefix(content, "\xEF\xBB\xBF")), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Year,GDP (USD),Growth (%)", lines[0])
	assert.Equal(t, "2000,100.00,", lines[1])
	assert.Equal(t, "2001,110.00,10.00", lines[2])
	assert.Equal(t, "2002,,", lines[3])
}

func TestCSVWriterCreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "reports")
	w := NewCSVWriter(nil, dir)

	path, err := w.WriteCSV(context.Background(), "out.csv", WriteOptions{
		Headers: []string{"a", "b"},
		Records: [][]string{{"1", "2"}},
	})
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestCSVWriterEmptySeries(t *testing.T) {
	w := NewCSVWriter(nil, t.TempDir())

	report := testReport()
	report.Series = &dataset.Series{Country: "Colombia"}

	path, err := w.WriteSeries(context.Background(), "empty.csv", report)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(strings.TrimPrefix(string(data), "\xEF\xBB\xBF")), "\n")
	assert.Len(t, lines, 1, "header only")
}
