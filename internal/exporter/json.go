package exporter

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"gdplens/internal/analysis"
	apperrors "gdplens/internal/errors"
)

// ReportFormat tags the JSON envelope so consumers can detect schema
// changes.
const ReportFormat = "gdp_report_v1"

// WriteJSON writes the full analysis report to a JSON file with a
// metadata envelope.
func WriteJSON(ctx context.Context, logger *slog.Logger, path string, report *analysis.Report) error {
	if logger == nil {
		logger = slog.Default()
	}

	logger.InfoContext(ctx, "writing report JSON",
		slog.String("path", path),
		slog.String("country", report.Country))

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return apperrors.NewStorageError("failed to create directory for JSON output", err)
	}

	envelope := map[string]interface{}{
		"report":       report,
		"run_id":       report.RunID,
		"generated_at": time.Now().Format(time.RFC3339),
		"format":       ReportFormat,
	}

	file, err := os.Create(path)
	if err != nil {
		return apperrors.NewStorageError("failed to create JSON report file", err).
			WithContext("path", path)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(envelope); err != nil {
		return apperrors.NewStorageError("failed to encode report to JSON", err)
	}

	return nil
}
