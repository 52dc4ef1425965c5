package configuration

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// AppConfig represents the complete application configuration.
type AppConfig struct {
	// Logger — logger component configuration
	Logger LoggerConfig `mapstructure:"logger"`
	// Analysis — lineup analysis configuration
	Analysis AnalysisConfig `mapstructure:"analysis"`
	// Report — analysis report recording configuration
	Report ReportConfig `mapstructure:"report"`
}

// LoggerConfig defines logging settings.
type LoggerConfig struct {
	// Level — log level: debug, info, warn, warning, error.
	// Value is case-insensitive but checked in lowercase.
	Level string `mapstructure:"level"`
}

// AnalysisConfig defines lineup analysis parameters.
type AnalysisConfig struct {
	// Rules — optional path to a YAML file with matchup rules.
	// When empty, the built-in rule set is used.
	Rules string `mapstructure:"rules"`
	// PredictAllPositions — default for the defensive cross-position
	// predictor: when true, unplayed positions get similarity-derived
	// scores.
	PredictAllPositions bool `mapstructure:"predict_all_positions"`
}

// ReportConfig defines analysis report recording parameters.
type ReportConfig struct {
	// File — path for the JSONL report file (optional; recording is
	// disabled when empty).
	File string `mapstructure:"file"`
	// Size — maximal report file size in MB before rotation (default 100).
	Size int `mapstructure:"size"`
	// Amount — number of rotated report files to keep (default 20).
	Amount int `mapstructure:"amount"`
}

// Validate checks the correctness of the entire application configuration.
// Calls validation for each nested structure and returns the first
// detected error. Returns nil if the configuration is valid.
func (c *AppConfig) Validate() error {
	if err := c.Logger.Validate(); err != nil {
		return err
	}

	if err := c.Report.Validate(); err != nil {
		return err
	}

	return nil
}

// Validate checks the correctness of the logger configuration.
// Verifies that the log level is set and is one of the supported values.
// Supported values: debug, info, warn, warning, error (case-insensitive).
func (l *LoggerConfig) Validate() error {
	if l.Level == "" {
		return errors.New("logger.level: must be specified")
	}

	valid := map[string]bool{"debug": true, "info": true, "warn": true, "warning": true, "error": true}
	if !valid[strings.ToLower(l.Level)] {
		return fmt.Errorf("logger.level: unsupported level '%s'", l.Level)
	}

	return nil
}

// Validate fills in report defaults.
func (r *ReportConfig) Validate() error {
	if r.Amount == 0 {
		r.Amount = 20
	}

	if r.Size == 0 {
		r.Size = 100
	}

	return nil
}

// Default returns the configuration used when no config file is provided:
// info-level logging, built-in rules, prediction enabled, no report file.
func Default() *AppConfig {
	config := AppConfig{
		Logger:   LoggerConfig{Level: "info"},
		Analysis: AnalysisConfig{PredictAllPositions: true},
		Report:   ReportConfig{Size: 100, Amount: 20},
	}
	return &config
}

// LoadConfig loads configuration from the specified file using Viper.
// Supports YAML format. Also includes environment variable loading
// (AutomaticEnv), which can override values from the file.
//
// Parameter configPath — path to the configuration file.
//
// Returns a pointer to AppConfig or an error if:
// - the file is not found or inaccessible
// - the configuration has invalid format
// - one of the sections fails validation
func LoadConfig(configPath string) (*AppConfig, error) {
	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("analysis.predict_all_positions", true)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config AppConfig
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}
