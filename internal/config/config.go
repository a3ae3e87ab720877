// Package config provides Viper-based hierarchical configuration management.
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	Catalog struct {
		URL            string `mapstructure:"url" yaml:"url"`
		TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
		CacheFile      string `mapstructure:"cache_file" yaml:"cache_file"`
	} `mapstructure:"catalog" yaml:"catalog"`

	Analytics struct {
		TopN                 int `mapstructure:"top_n" yaml:"top_n"`
		LowQuantityThreshold int `mapstructure:"low_quantity_threshold" yaml:"low_quantity_threshold"`
	} `mapstructure:"analytics" yaml:"analytics"`

	Output struct {
		EnrichedFile string `mapstructure:"enriched_file" yaml:"enriched_file"`
		ReportFile   string `mapstructure:"report_file" yaml:"report_file"`
	} `mapstructure:"output" yaml:"output"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading:
// defaults, then an optional config file, then SALES_* environment variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.sales-analytics")
	v.AddConfigPath(".sales-analytics")
	v.AddConfigPath(".")

	v.SetEnvPrefix("SALES")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Log the error but don't fail - continue with defaults and env vars
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("csv.delimiter", "|")

	v.SetDefault("catalog.url", "https://dummyjson.com/products?limit=100")
	v.SetDefault("catalog.timeout_seconds", 10)
	v.SetDefault("catalog.cache_file", "data/catalog_cache.yaml")

	v.SetDefault("analytics.top_n", 5)
	v.SetDefault("analytics.low_quantity_threshold", 10)

	v.SetDefault("output.enriched_file", "data/enriched_sales_data.txt")
	v.SetDefault("output.report_file", "output/sales_report.txt")
}

// validateConfig validates the configuration values.
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if len(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	if config.Catalog.TimeoutSeconds < 1 || config.Catalog.TimeoutSeconds > 300 {
		return fmt.Errorf("catalog.timeout_seconds must be between 1 and 300, got: %d", config.Catalog.TimeoutSeconds)
	}

	if config.Analytics.TopN < 1 {
		return fmt.Errorf("analytics.top_n must be at least 1, got: %d", config.Analytics.TopN)
	}

	if config.Analytics.LowQuantityThreshold < 1 {
		return fmt.Errorf("analytics.low_quantity_threshold must be at least 1, got: %d", config.Analytics.LowQuantityThreshold)
	}

	return nil
}
