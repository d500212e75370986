package exporter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"gdplens/internal/analysis"
	apperrors "gdplens/internal/errors"
)

// Workbook sheet names.
const (
	sheetSeries     = "Series"
	sheetStatistics = "Statistics"
)

// XLSXWriter exports a report as an Excel workbook: the working table,
// the statistics sheet, and native line/bar charts over the series.
type XLSXWriter struct {
	logger *slog.Logger
}

// NewXLSXWriter creates a workbook writer. A nil logger falls back to
// slog.Default().
func NewXLSXWriter(logger *slog.Logger) *XLSXWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &XLSXWriter{logger: logger}
}

// Write builds and saves the workbook at path.
func (w *XLSXWriter) Write(ctx context.Context, path string, report *analysis.Report) error {
	w.logger.InfoContext(ctx, "writing report workbook",
		slog.String("path", path),
		slog.String("country", report.Country))

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return apperrors.NewStorageError("failed to create directory for workbook", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetSeries); err != nil {
		return apperrors.NewStorageError("failed to name series sheet", err)
	}
	if err := w.writeSeriesSheet(f, report); err != nil {
		return err
	}
	if err := w.writeStatisticsSheet(f, report); err != nil {
		return err
	}
	if err := w.addCharts(f, report); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return apperrors.NewStorageError("failed to save workbook", err).
			WithContext("path", path)
	}
	return nil
}

func (w *XLSXWriter) writeSeriesSheet(f *excelize.File, report *analysis.Report) error {
	headers := []string{"Year", "GDP (USD)", "Growth (%)"}
	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheetSeries, cell, h); err != nil {
			return apperrors.NewStorageError("failed to write series header", err)
		}
	}

	for i, obs := range report.Series.Observations {
		row := i + 2
		cells := []struct {
			col   int
			value interface{}
			ok    bool
		}{
			{1, obs.Year.Float64, obs.Year.Valid},
			{2, obs.GDP.Float64, obs.GDP.Valid},
			{3, obs.GrowthPct.Float64, obs.GrowthPct.Valid},
		}
		for _, c := range cells {
			if !c.ok {
				continue // missing cells stay blank
			}
			cell, _ := excelize.CoordinatesToCellName(c.col, row)
			if err := f.SetCellValue(sheetSeries, cell, c.value); err != nil {
				return apperrors.NewStorageError("failed to write series row", err)
			}
		}
	}
	return nil
}

func (w *XLSXWriter) writeStatisticsSheet(f *excelize.File, report *analysis.Report) error {
	if _, err := f.NewSheet(sheetStatistics); err != nil {
		return apperrors.NewStorageError("failed to create statistics sheet", err)
	}

	rows := []struct {
		label string
		value string
	}{
		{"Country", report.Country},
		{"Observations", fmt.Sprintf("%d", report.Series.Len())},
		{"Valid GDP values", fmt.Sprintf("%d", report.Summary.Count)},
	}
	for _, line := range report.StatisticsLines() {
		rows = append(rows, struct {
			label string
			value string
		}{"", line})
	}

	for i, r := range rows {
		labelCell, _ := excelize.CoordinatesToCellName(1, i+1)
		valueCell, _ := excelize.CoordinatesToCellName(2, i+1)
		if r.label != "" {
			if err := f.SetCellValue(sheetStatistics, labelCell, r.label); err != nil {
				return apperrors.NewStorageError("failed to write statistics label", err)
			}
		}
		if err := f.SetCellValue(sheetStatistics, valueCell, r.value); err != nil {
			return apperrors.NewStorageError("failed to write statistics value", err)
		}
	}
	return nil
}

func (w *XLSXWriter) addCharts(f *excelize.File, report *analysis.Report) error {
	rows := report.Series.Len()
	if rows == 0 {
		return nil
	}
	categories := fmt.Sprintf("%s!$A$2:$A$%d", sheetSeries, rows+1)

	lineChart := &excelize.Chart{
		Type: excelize.Line,
		Series: []excelize.ChartSeries{{
			Name:       fmt.Sprintf("%s!$B$1", sheetSeries),
			Categories: categories,
			Values:     fmt.Sprintf("%s!$B$2:$B$%d", sheetSeries, rows+1),
		}},
		Title: []excelize.RichTextRun{{Text: fmt.Sprintf("GDP Evolution of %s", report.Country)}},
	}
	if err := f.AddChart(sheetSeries, "E2", lineChart); err != nil {
		return apperrors.NewStorageError("failed to add GDP line chart", err)
	}

	barChart := &excelize.Chart{
		Type: excelize.Col,
		Series: []excelize.ChartSeries{{
			Name:       fmt.Sprintf("%s!$C$1", sheetSeries),
			Categories: categories,
			Values:     fmt.Sprintf("%s!$C$2:$C$%d", sheetSeries, rows+1),
		}},
		Title: []excelize.RichTextRun{{Text: "Annual GDP Growth Rate (%)"}},
	}
	if err := f.AddChart(sheetSeries, "E22", barChart); err != nil {
		return apperrors.NewStorageError("failed to add growth bar chart", err)
	}

	return nil
}
