// Package config provides Viper-based hierarchical configuration management.
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Storage backends for the categorization knowledge base.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Config is the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Data struct {
		Directory string `mapstructure:"directory" yaml:"directory"`
	} `mapstructure:"data" yaml:"data"`

	Storage struct {
		Backend string `mapstructure:"backend" yaml:"backend"`
	} `mapstructure:"storage" yaml:"storage"`

	Matching struct {
		DescriptionThreshold  int     `mapstructure:"description_threshold" yaml:"description_threshold"`
		TokenOverlapThreshold float64 `mapstructure:"token_overlap_threshold" yaml:"token_overlap_threshold"`
		Limit                 int     `mapstructure:"limit" yaml:"limit"`
	} `mapstructure:"matching" yaml:"matching"`
}

// Load initializes Viper configuration: defaults first, then an optional YAML
// config file, then OFXCAT_-prefixed environment variables.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.ofxcat")
	v.AddConfigPath(".ofxcat")
	v.AddConfigPath(".")

	v.SetEnvPrefix("OFXCAT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file %s: %w", v.ConfigFileUsed(), err)
		}
		// No config file is fine, defaults and env vars carry the day.
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("data.directory", "data")
	v.SetDefault("storage.backend", BackendFile)

	v.SetDefault("matching.description_threshold", 80)
	v.SetDefault("matching.token_overlap_threshold", 0.6)
	v.SetDefault("matching.limit", 5)
}

func validate(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}
	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}
	if config.Storage.Backend != BackendFile && config.Storage.Backend != BackendSQLite {
		return fmt.Errorf("invalid storage backend: %s (must be %q or %q)",
			config.Storage.Backend, BackendFile, BackendSQLite)
	}
	if config.Matching.DescriptionThreshold < 0 || config.Matching.DescriptionThreshold > 100 {
		return fmt.Errorf("matching.description_threshold must be between 0 and 100, got: %d",
			config.Matching.DescriptionThreshold)
	}
	if config.Matching.TokenOverlapThreshold < 0.0 || config.Matching.TokenOverlapThreshold > 1.0 {
		return fmt.Errorf("matching.token_overlap_threshold must be between 0.0 and 1.0, got: %f",
			config.Matching.TokenOverlapThreshold)
	}
	if config.Matching.Limit < 1 {
		return fmt.Errorf("matching.limit must be at least 1, got: %d", config.Matching.Limit)
	}
	return nil
}
