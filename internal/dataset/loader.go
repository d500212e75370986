package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"gdplens/internal/config"
	apperrors "gdplens/internal/errors"
)

// Required source columns, matched by exact header name.
const (
	colCountryName = "Country Name"
	colYear        = "Year"
	colValue       = "Value"
)

// Loader fetches the GDP dataset from a remote URL or a local file and
// parses it into an in-memory table. Load failures are fatal to the
// pipeline; there are no retries.
type Loader struct {
	cfg    config.DatasetConfig
	client *http.Client
	logger *slog.Logger
}

// NewLoader creates a dataset loader. A nil logger falls back to
// slog.Default().
func NewLoader(cfg config.DatasetConfig, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.HTTPTimeout},
		logger: logger,
	}
}

// Load fetches and parses the dataset. A configured local path takes
// precedence over the URL.
func (l *Loader) Load(ctx context.Context) (*Table, error) {
	if l.cfg.LocalPath != "" {
		return l.loadFile(ctx, l.cfg.LocalPath)
	}
	return l.loadURL(ctx, l.cfg.URL)
}

func (l *Loader) loadFile(ctx context.Context, path string) (*Table, error) {
	l.logger.InfoContext(ctx, "loading dataset from file", slog.String("path", path))

	file, err := os.Open(path)
	if err != nil {
		return nil, apperrors.NewLoadError("failed to open dataset file", err).
			WithContext("path", path)
	}
	defer file.Close()

	return l.parse(ctx, file, path)
}

func (l *Loader) loadURL(ctx context.Context, url string) (*Table, error) {
	l.logger.InfoContext(ctx, "loading dataset from URL", slog.String("url", url))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, apperrors.NewLoadError("failed to build dataset request", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, apperrors.NewLoadError("dataset unreachable", err).
			WithContext("url", url)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.NewLoadError(
			fmt.Sprintf("dataset request returned status %d", resp.StatusCode), nil).
			WithContext("url", url)
	}

	return l.parse(ctx, resp.Body, url)
}

// parse reads CSV rows and maps the required columns by header name.
func (l *Loader) parse(ctx context.Context, r io.Reader, source string) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, apperrors.NewParsingError("failed to read CSV header", err)
	}

	countryIdx, yearIdx, valueIdx := -1, -1, -1
	for i, col := range header {
		switch col {
		case colCountryName:
			countryIdx = i
		case colYear:
			yearIdx = i
		case colValue:
			valueIdx = i
		}
	}
	for name, idx := range map[string]int{
		colCountryName: countryIdx,
		colYear:        yearIdx,
		colValue:       valueIdx,
	} {
		if idx == -1 {
			return nil, apperrors.NewParsingError(
				fmt.Sprintf("required column %q not found in dataset header", name), nil)
		}
	}

	table := &Table{Source: source, LoadedAt: time.Now()}
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, apperrors.NewParsingError("failed to read CSV row", err).
				WithContext("line", line)
		}
		line++

		if len(row) <= countryIdx || len(row) <= yearIdx || len(row) <= valueIdx {
			l.logger.WarnContext(ctx, "skipping short row",
				slog.Int("line", line),
				slog.Int("fields", len(row)))
			continue
		}

		table.Records = append(table.Records, Record{
			CountryName: row[countryIdx],
			Year:        row[yearIdx],
			Value:       row[valueIdx],
		})
	}

	l.logger.InfoContext(ctx, "dataset loaded",
		slog.String("source", source),
		slog.Int("rows", table.Len()))

	return table, nil
}
