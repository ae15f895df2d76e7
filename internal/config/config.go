// Package config provides configuration management for the normalizer worker.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"contactnorm/internal/normalizer"
)

// Configuration validation errors.
var (
	ErrMissingCountryCode   = errors.New("phone.default_country_code is required")
	ErrCountryCodeNotDigits = errors.New("phone.default_country_code must contain only digits")
	ErrInvalidLocalMin      = errors.New("phone.local_min_digits must be at least 1")
	ErrLocalMinExceedsMax   = errors.New("phone.local_min_digits cannot exceed phone.local_max_digits")
	ErrInvalidPivotYear     = errors.New("date.pivot_year must be between 0 and 99")
	ErrInvalidDelimiter     = errors.New("csv.delimiter must be a single character")
	ErrNegativeWorkers      = errors.New("workers must be non-negative")
	ErrInvalidLogLevel      = errors.New("logging.level must be one of: debug, info, warn, error")
	ErrInvalidLogFormat     = errors.New("logging.format must be 'text' or 'json'")
)

// Config represents the complete normalizer configuration.
type Config struct {
	Phone   PhoneConfig   `yaml:"phone"`
	Date    DateConfig    `yaml:"date"`
	CSV     CSVConfig     `yaml:"csv"`
	Workers int           `yaml:"workers"`
	Logging LoggingConfig `yaml:"logging"`
}

// PhoneConfig contains the local-number assumption for phone normalization.
type PhoneConfig struct {
	DefaultCountryCode string `yaml:"default_country_code"`
	LocalMinDigits     int    `yaml:"local_min_digits"`
	LocalMaxDigits     int    `yaml:"local_max_digits"`
}

// DateConfig contains date normalization settings.
type DateConfig struct {
	PivotYear int `yaml:"pivot_year"`
}

// CSVConfig defines table reading and writing behavior.
type CSVConfig struct {
	Delimiter      string `yaml:"delimiter"`
	IncludeSkipped bool   `yaml:"include_skipped"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when no config file is given:
// UAE country code, pivot year 25, semicolon tables echoing skipped rows.
func Default() *Config {
	return &Config{
		Phone: PhoneConfig{
			DefaultCountryCode: "971",
			LocalMinDigits:     9,
			LocalMaxDigits:     10,
		},
		Date: DateConfig{
			PivotYear: 25,
		},
		CSV: CSVConfig{
			Delimiter:      ";",
			IncludeSkipped: true,
		},
		Workers: 0,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(filepath string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filepath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Phone.DefaultCountryCode == "" {
		return ErrMissingCountryCode
	}

	for _, r := range c.Phone.DefaultCountryCode {
		if r < '0' || r > '9' {
			return ErrCountryCodeNotDigits
		}
	}

	if c.Phone.LocalMinDigits < 1 {
		return ErrInvalidLocalMin
	}

	if c.Phone.LocalMinDigits > c.Phone.LocalMaxDigits {
		return ErrLocalMinExceedsMax
	}

	if c.Date.PivotYear < 0 || c.Date.PivotYear > 99 {
		return ErrInvalidPivotYear
	}

	if utf8.RuneCountInString(c.CSV.Delimiter) != 1 {
		return ErrInvalidDelimiter
	}

	if c.Workers < 0 {
		return ErrNegativeWorkers
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		return ErrInvalidLogLevel
	}

	format := strings.ToLower(c.Logging.Format)
	if format != "text" && format != "json" {
		return ErrInvalidLogFormat
	}

	return nil
}

// PhonePolicy converts the phone section into an engine policy.
func (c *Config) PhonePolicy() normalizer.PhonePolicy {
	return normalizer.PhonePolicy{
		DefaultCountryCode: c.Phone.DefaultCountryCode,
		LocalMinDigits:     c.Phone.LocalMinDigits,
		LocalMaxDigits:     c.Phone.LocalMaxDigits,
	}
}

// DatePolicy converts the date section into an engine policy.
func (c *Config) DatePolicy() normalizer.DatePolicy {
	return normalizer.DatePolicy{PivotYear: c.Date.PivotYear}
}

// DelimiterRune returns the CSV delimiter as a rune.
func (c *Config) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.CSV.Delimiter)

	return r
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{CountryCode: +%s, Delimiter: %q, Workers: %d}",
		c.Phone.DefaultCountryCode,
		c.CSV.Delimiter,
		c.Workers,
	)
}
