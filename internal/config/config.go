// Package config provides Viper-based configuration loading for the caos
// CLI.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// HistoryConfig holds roll-history settings.
type HistoryConfig struct {
	// Capacity is the number of rolls retained, newest first.
	Capacity int `mapstructure:"capacity"`
}

// SheetsConfig holds character sheet file settings.
type SheetsConfig struct {
	// Dir is the directory searched for sheet files given by bare name.
	Dir string `mapstructure:"dir"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	History HistoryConfig `mapstructure:"history"`
	Sheets  SheetsConfig  `mapstructure:"sheets"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if the configuration is valid, or an error
// describing all violations.
func (c Config) Validate() error {
	var errs []string

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		errs = append(errs, fmt.Sprintf("logging.level must be one of [debug, info, warn, error], got %q", c.Logging.Level))
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[c.Logging.Format] {
		errs = append(errs, fmt.Sprintf("logging.format must be one of [json, console], got %q", c.Logging.Format))
	}
	if c.History.Capacity < 1 {
		errs = append(errs, fmt.Sprintf("history.capacity must be >= 1, got %d", c.History.Capacity))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("history.capacity", 50)
	v.SetDefault("sheets.dir", "sheets")
}

// Load reads configuration from the given file path, applies environment
// variable overrides with the CAOS_ prefix, and validates the result. An
// empty path skips the file and uses defaults plus environment only.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetEnvPrefix("CAOS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
