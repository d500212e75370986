package config

import (
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	apperrors "gdplens/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Dataset  DatasetConfig  `yaml:"dataset" envconfig:"DATASET"`
	Analysis AnalysisConfig `yaml:"analysis" envconfig:"ANALYSIS"`
	Output   OutputConfig   `yaml:"output" envconfig:"OUTPUT"`
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
}

// DatasetConfig describes where the GDP dataset comes from
type DatasetConfig struct {
	// URL of the World Bank GDP dataset in long format
	URL string `yaml:"url" envconfig:"URL" validate:"required_without=LocalPath,omitempty,url"`
	// LocalPath, when set, takes precedence over URL
	LocalPath   string        `yaml:"local_path" envconfig:"LOCAL_PATH"`
	HTTPTimeout time.Duration `yaml:"http_timeout" envconfig:"HTTP_TIMEOUT" validate:"gt=0"`
}

// AnalysisConfig controls the analysis pipeline
type AnalysisConfig struct {
	Country       string `yaml:"country" envconfig:"COUNTRY" validate:"required"`
	HistogramBins int    `yaml:"histogram_bins" envconfig:"HISTOGRAM_BINS" validate:"gte=1"`
}

// OutputConfig contains output directory configuration
type OutputConfig struct {
	ReportsDir string `yaml:"reports_dir" envconfig:"REPORTS_DIR" validate:"required"`
	ChartsDir  string `yaml:"charts_dir" envconfig:"CHARTS_DIR" validate:"required"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error"`
	Format   string `yaml:"format" envconfig:"FORMAT" validate:"oneof=json text"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=stdout file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// DefaultDatasetURL is the upstream World Bank GDP dataset.
const DefaultDatasetURL = "https://raw.githubusercontent.com/datasets/gdp/master/data/gdp.csv"

// Default returns the built-in configuration, which reproduces the
// reference analysis: the full GDP dataset filtered to Colombia.
func Default() Config {
	return Config{
		Dataset: DatasetConfig{
			URL:         DefaultDatasetURL,
			HTTPTimeout: 30 * time.Second,
		},
		Analysis: AnalysisConfig{
			Country:       "Colombia",
			HistogramBins: 15,
		},
		Output: OutputConfig{
			ReportsDir: "reports",
			ChartsDir:  "charts",
		},
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "stdout",
			FilePath: "logs/gdplens.log",
		},
	}
}

// Load loads configuration in three layers: built-in defaults, an
// optional YAML file, then environment variables (env wins).
func Load(configFile string) (*Config, error) {
	cfg := Default()

	if configFile != "" {
		if _, err := os.Stat(configFile); err == nil {
			if err := loadFromFile(configFile, &cfg); err != nil {
				return nil, apperrors.NewConfigError("failed to load config file", err)
			}
		}
	}

	if err := envconfig.Process("GDPLENS", &cfg); err != nil {
		return nil, apperrors.NewConfigError("failed to load config from env", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// loadFromFile overlays configuration from a YAML file
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// Validate checks the configuration against the struct validation tags
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return apperrors.NewConfigError("config validation failed", err)
	}
	if c.Logging.Output != "stdout" && c.Logging.FilePath == "" {
		return apperrors.NewConfigError("logging.file_path required for file output", nil)
	}
	return nil
}
