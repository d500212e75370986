// Command gdp-report runs the full GDP analysis pipeline: it loads the
// World Bank GDP dataset, filters the configured country, computes the
// descriptive statistics and year-over-year growth, renders the charts
// and writes the CSV/JSON/XLSX reports.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gdplens/internal/analysis"
	"gdplens/internal/chart"
	"gdplens/internal/config"
	"gdplens/internal/dataset"
	apperrors "gdplens/internal/errors"
	"gdplens/internal/exporter"
	"gdplens/internal/infrastructure"
)

const previewRows = 5

func main() {
	configFile := flag.String("config", "", "path to YAML config file (optional)")
	datasetPath := flag.String("dataset", "", "local CSV file to analyze instead of the configured URL")
	country := flag.String("country", "", "country to analyze (overrides config)")
	outputDir := flag.String("out", "", "output directory for reports (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Flag overrides win over config file and environment.
	if *datasetPath != "" {
		cfg.Dataset.LocalPath = *datasetPath
	}
	if *country != "" {
		cfg.Analysis.Country = *country
	}
	if *outputDir != "" {
		cfg.Output.ReportsDir = *outputDir
		cfg.Output.ChartsDir = filepath.Join(*outputDir, "charts")
	}

	logger := infrastructure.MustInitializeLogger(cfg.Logging)
	defer infrastructure.CloseLogFile()

	ctx, runID := infrastructure.NewRunContext(context.Background())
	logger.InfoContext(ctx, "starting GDP analysis run",
		slog.String("run_id", runID),
		slog.String("country", cfg.Analysis.Country))

	if err := run(ctx, logger, cfg); err != nil {
		logger.ErrorContext(ctx, "GDP analysis run failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, cfg *config.Config) error {
	loader := dataset.NewLoader(cfg.Dataset, logger)
	table, err := loader.Load(ctx)
	if err != nil {
		return err
	}

	printSection("Dataset preview")
	printRecords(table.Head(previewRows))
	fmt.Printf("Total rows: %d (source: %s)\n", table.Len(), table.Source)

	analyzer := analysis.NewAnalyzer(logger, analysis.AnalyzerConfig{
		Country:       cfg.Analysis.Country,
		HistogramBins: cfg.Analysis.HistogramBins,
	})
	report, err := analyzer.Analyze(ctx, table)
	if err != nil {
		if errors.Is(err, apperrors.ErrNoCountryData) {
			fmt.Printf("No rows found for country %q; nothing to analyze.\n", cfg.Analysis.Country)
		}
		return err
	}

	printSection(fmt.Sprintf("Working table for %s", report.Country))
	printObservations(report.Series.Observations, previewRows)
	fmt.Printf("Rows: %d, valid GDP values: %d\n", report.Series.Len(), report.Summary.Count)

	printSection("Descriptive statistics")
	for _, line := range report.StatisticsLines() {
		fmt.Println(line)
	}

	printSection("Conclusions")
	conclusions, err := report.Conclusions()
	if err != nil {
		if errors.Is(err, apperrors.ErrNoGrowthData) {
			fmt.Println("Not enough data to compute growth-based conclusions.")
		} else {
			return err
		}
	}
	for _, line := range conclusions {
		fmt.Println(line)
	}

	renderer := chart.NewRenderer(logger, cfg.Output.ChartsDir)
	chartFiles, err := renderer.RenderAll(ctx, report)
	if err != nil {
		return err
	}

	csvWriter := exporter.NewCSVWriter(logger, cfg.Output.ReportsDir)
	csvPath, err := csvWriter.WriteSeries(ctx, "gdp_series.csv", report)
	if err != nil {
		return err
	}

	jsonPath := filepath.Join(cfg.Output.ReportsDir, "gdp_report.json")
	if err := exporter.WriteJSON(ctx, logger, jsonPath, report); err != nil {
		return err
	}

	xlsxPath := filepath.Join(cfg.Output.ReportsDir, "gdp_report.xlsx")
	if err := exporter.NewXLSXWriter(logger).Write(ctx, xlsxPath, report); err != nil {
		return err
	}

	printSection("Outputs")
	for _, f := range chartFiles {
		fmt.Println(f)
	}
	fmt.Println(csvPath)
	fmt.Println(jsonPath)
	fmt.Println(xlsxPath)

	logger.InfoContext(ctx, "GDP analysis run completed",
		slog.Int("charts", len(chartFiles)),
		slog.String("reports_dir", cfg.Output.ReportsDir))
	return nil
}

func printSection(title string) {
	fmt.Printf("\n===== %s =====\n", title)
}

func printRecords(records []dataset.Record) {
	for _, rec := range records {
		fmt.Printf("%-40s %6s %20s\n", rec.CountryName, rec.Year, rec.Value)
	}
}

func printObservations(obs []dataset.Observation, n int) {
	if n > len(obs) {
		n = len(obs)
	}
	for _, o := range obs[:n] {
		year := "?"
		if o.Year.Valid {
			year = fmt.Sprintf("%.0f", o.Year.Float64)
		}
		gdp := "missing"
		if o.GDP.Valid {
			gdp = fmt.Sprintf("%.2f", o.GDP.Float64)
		}
		fmt.Printf("%6s %22s\n", year, gdp)
	}
}
