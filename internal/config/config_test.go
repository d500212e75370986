package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "gdplens/internal/errors"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, DefaultDatasetURL, cfg.Dataset.URL)
	assert.Equal(t, "Colombia", cfg.Analysis.Country)
	assert.Equal(t, 15, cfg.Analysis.HistogramBins)
	assert.Equal(t, 30*time.Second, cfg.Dataset.HTTPTimeout)

	// Defaults alone must form a valid config.
	require.NoError(t, cfg.Validate())
}

func TestLoad_NoFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)
}

func TestLoad_FileOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gdplens.yml")
	content := []byte(`
analysis:
  country: Chile
  histogram_bins: 20
output:
  reports_dir: out/reports
  charts_dir: out/charts
`)
	require.NoError(t, os.WriteFile(path, content, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Chile", cfg.Analysis.Country)
	assert.Equal(t, 20, cfg.Analysis.HistogramBins)
	assert.Equal(t, "out/reports", cfg.Output.ReportsDir)
	// Untouched sections keep their defaults.
	assert.Equal(t, DefaultDatasetURL, cfg.Dataset.URL)
}

func TestLoad_EnvWins(t *testing.T) {
	t.Setenv("GDPLENS_ANALYSIS_COUNTRY", "Peru")
	t.Setenv("GDPLENS_LOGGING_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "Peru", cfg.Analysis.Country)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_MissingFileIgnored(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "defaults valid",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "empty country",
			mutate:  func(c *Config) { c.Analysis.Country = "" },
			wantErr: true,
		},
		{
			name:    "zero histogram bins",
			mutate:  func(c *Config) { c.Analysis.HistogramBins = 0 },
			wantErr: true,
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: true,
		},
		{
			name:    "file output without path",
			mutate:  func(c *Config) { c.Logging.Output = "file"; c.Logging.FilePath = "" },
			wantErr: true,
		},
		{
			name: "local path without url",
			mutate: func(c *Config) {
				c.Dataset.URL = ""
				c.Dataset.LocalPath = "testdata/gdp.csv"
			},
			wantErr: false,
		},
		{
			name:    "no url and no local path",
			mutate:  func(c *Config) { c.Dataset.URL = "" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperrors.IsType(err, apperrors.ErrTypeConfig))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
