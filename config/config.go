// ABOUTME: Run configuration with code defaults, optional yaml file, and env overrides
// ABOUTME: Taxonomy and seasonality defaults live here and flow into the generators
package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"

	"github.com/harperreed/salesgen/models"
)

// Config is the full run configuration.
type Config struct {
	NumProducts      int                 `mapstructure:"num_products"`
	Years            int                 `mapstructure:"years"`
	PredictionLength int                 `mapstructure:"prediction_length"`
	ContextLength    int                 `mapstructure:"context_length"`
	OutputDir        string              `mapstructure:"output_dir"`
	LogLevel         string              `mapstructure:"log_level"`
	Taxonomy         map[string][]string `mapstructure:"taxonomy"`
	Seasonality      []float64           `mapstructure:"seasonality"`
	Forecast         ForecastConfig      `mapstructure:"forecast"`
	Training         TrainingConfig      `mapstructure:"training"`
}

// ForecastConfig points at the external inference endpoint.
type ForecastConfig struct {
	Endpoint   string    `mapstructure:"endpoint"`
	NumSamples int       `mapstructure:"num_samples"`
	Quantiles  []float64 `mapstructure:"quantiles"`
}

// TrainingConfig holds hyperparameter values passed through to the service.
type TrainingConfig struct {
	Epochs             int     `mapstructure:"epochs"`
	TimeFreq           string  `mapstructure:"time_freq"`
	EmbeddingDimension int     `mapstructure:"embedding_dimension"`
	MiniBatchSize      int     `mapstructure:"mini_batch_size"`
	LearningRate       float64 `mapstructure:"learning_rate"`
	NumCells           int     `mapstructure:"num_cells"`
	NumLayers          int     `mapstructure:"num_layers"`
	DropoutRate        float64 `mapstructure:"dropout_rate"`
	Likelihood         string  `mapstructure:"likelihood"`
	NumEvalSamples     int     `mapstructure:"num_eval_samples"`
}

// defaultTaxonomy mirrors a small multi-department retail catalog.
var defaultTaxonomy = map[string][]string{
	"apparel":     {"footwear", "outerwear", "activewear"},
	"electronics": {"audio", "wearables", "accessories"},
	"grocery":     {"beverages", "snacks", "produce"},
	"home":        {"kitchen", "decor"},
}

// defaultSeasonality is the month-by-month baseline, ramping into the
// holiday peak and dropping back in the new year.
var defaultSeasonality = []float64{
	120, 110, 130, 140, 150, 160, 155, 150, 145, 160, 200, 240,
}

// Load builds the configuration: code defaults, then an optional config
// file, then SALESGEN_* environment overrides.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("num_products", 200)
	v.SetDefault("years", 3)
	v.SetDefault("prediction_length", 30)
	v.SetDefault("context_length", 30)
	v.SetDefault("output_dir", filepath.Join(xdg.DataHome, "salesgen"))
	v.SetDefault("log_level", "info")
	v.SetDefault("forecast.endpoint", "")
	v.SetDefault("forecast.num_samples", 100)
	v.SetDefault("forecast.quantiles", []float64{0.1, 0.5, 0.9})
	v.SetDefault("training.epochs", 100)
	v.SetDefault("training.time_freq", "D")
	v.SetDefault("training.embedding_dimension", 10)
	v.SetDefault("training.mini_batch_size", 64)
	v.SetDefault("training.learning_rate", 0.001)
	v.SetDefault("training.num_eval_samples", 100)

	v.SetEnvPrefix("SALESGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	// Taxonomy and seasonality default after unmarshal: viper deep-merges
	// map defaults with file values, which would mix configured categories
	// with the built-in ones.
	if cfg.Taxonomy == nil {
		cfg.Taxonomy = defaultTaxonomy
	}
	if cfg.Seasonality == nil {
		cfg.Seasonality = defaultSeasonality
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate surfaces bad caller input at load time, not mid-pipeline.
func (c *Config) Validate() error {
	if c.NumProducts <= 0 {
		return fmt.Errorf("num_products must be positive, got %d", c.NumProducts)
	}
	if c.Years <= 0 {
		return fmt.Errorf("years must be positive, got %d", c.Years)
	}
	if c.PredictionLength <= 0 {
		return fmt.Errorf("prediction_length must be positive, got %d", c.PredictionLength)
	}
	if c.ContextLength <= 0 {
		return fmt.Errorf("context_length must be positive, got %d", c.ContextLength)
	}
	if len(c.Seasonality) != 12 {
		return fmt.Errorf("seasonality must list 12 monthly baselines, got %d", len(c.Seasonality))
	}
	if err := c.TaxonomyMap().Validate(); err != nil {
		return err
	}
	return nil
}

// TaxonomyMap converts the configured taxonomy to its domain type.
func (c *Config) TaxonomyMap() models.Taxonomy {
	return models.Taxonomy(c.Taxonomy)
}

// SeasonalityMap converts the 12-entry baseline list to its domain type.
func (c *Config) SeasonalityMap() models.Seasonality {
	s := make(models.Seasonality, 12)
	for i, baseline := range c.Seasonality {
		s[time.Month(i+1)] = baseline
	}
	return s
}
