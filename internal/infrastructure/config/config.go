// Package config provides centralized configuration management
// using Viper for configuration loading and validation
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for embeddings of the recipe engine.
// The engine itself is configuration-free; this covers the ambient
// concerns (logging, defaults) of the tooling around it.
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Scaling ScalingConfig `mapstructure:"scaling"`
}

// AppConfig contains application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
	LogLevel    string `mapstructure:"log_level"`
	LogFormat   string `mapstructure:"log_format"`
}

// ScalingConfig contains defaults for the scaling commands
type ScalingConfig struct {
	DefaultFactor float64 `mapstructure:"default_factor"`
}

// Load loads configuration from file and environment variables
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Enable environment variable override
	v.SetEnvPrefix("FORKFUL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "Forkful")
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.log_level", "info")
	v.SetDefault("app.log_format", "console")

	v.SetDefault("scaling.default_factor", 1.0)
}

// Validate checks the configuration for invalid values
func (c *Config) Validate() error {
	switch c.App.LogFormat {
	case "json", "console":
	default:
		return fmt.Errorf("unknown log format %q", c.App.LogFormat)
	}

	if c.Scaling.DefaultFactor <= 0 {
		return fmt.Errorf("scaling default factor must be greater than 0, got %v", c.Scaling.DefaultFactor)
	}

	return nil
}
