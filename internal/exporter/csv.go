package exporter

import (
	"context"
	"encoding/csv"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"gdplens/internal/analysis"
	"gdplens/internal/dataset"
	apperrors "gdplens/internal/errors"
)

// CSVWriter exports the working table as CSV reports.
type CSVWriter struct {
	logger *slog.Logger
	outDir string
}

// NewCSVWriter creates a CSV writer rooted at outDir. A nil logger
// falls back to slog.Default().
func NewCSVWriter(logger *slog.Logger, outDir string) *CSVWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVWriter{logger: logger, outDir: outDir}
}

// WriteOptions configures CSV writing behavior
type WriteOptions struct {
	Headers   []string
	Records   [][]string
	BOMPrefix bool // Add UTF-8 BOM for Excel compatibility
}

// WriteCSV writes data to a CSV file with the given options
func (w *CSVWriter) WriteCSV(ctx context.Context, name string, options WriteOptions) (string, error) {
	path := filepath.Join(w.outDir, name)

	w.logger.InfoContext(ctx, "writing CSV file",
		slog.String("path", path),
		slog.Int("record_count", len(options.Records)))

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", apperrors.NewStorageError("failed to create CSV output directory", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return "", apperrors.NewStorageError("failed to create CSV file", err).
			WithContext("path", path)
	}
	defer file.Close()

	// BOM helps Excel recognize UTF-8.
	if options.BOMPrefix {
		if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return "", apperrors.NewStorageError("failed to write BOM", err)
		}
	}

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if len(options.Headers) > 0 {
		if err := writer.Write(options.Headers); err != nil {
			return "", apperrors.NewStorageError("failed to write CSV header row", err)
		}
	}

	for _, record := range options.Records {
		if err := writer.Write(record); err != nil {
			return "", apperrors.NewStorageError("failed to write CSV data row", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", apperrors.NewStorageError("failed to flush CSV writer", err)
	}
	return path, nil
}

// WriteSeries writes the working table (year, gdp, growth) of a report.
// Missing cells are written as empty fields.
func (w *CSVWriter) WriteSeries(ctx context.Context, name string, report *analysis.Report) (string, error) {
	records := make([][]string, 0, report.Series.Len())
	for _, obs := range report.Series.Observations {
		records = append(records, []string{
			cellString(obs.Year, 0),
			cellString(obs.GDP, 2),
			cellString(obs.GrowthPct, 2),
		})
	}

	return w.WriteCSV(ctx, name, WriteOptions{
		Headers:   []string{"Year", "GDP (USD)", "Growth (%)"},
		Records:   records,
		BOMPrefix: true,
	})
}

// cellString renders a nullable cell with the given precision; missing
// cells render as the empty field.
func cellString(v dataset.Float, prec int) string {
	if !v.Valid {
		return ""
	}
	return strconv.FormatFloat(v.Float64, 'f', prec, 64)
}
