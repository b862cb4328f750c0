// Package config provides configuration management for the post generator.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrInvalidImageSize    = errors.New("images.size must be at least 1")
	ErrInvalidImageQuality = errors.New("images.quality must be between 1 and 100")
	ErrInvalidMaxPerPost   = errors.New("images.max_per_post must be at least 1")
	ErrInvalidTimeout      = errors.New("images.timeout_sec must be at least 1")
	ErrMissingDisclosure   = errors.New("caption.disclosure must not be empty")
	ErrInvalidLogLevel     = errors.New("logging.level must be one of: debug, info, warn, error")
)

// DefaultDisclosure is the FTC disclosure appended when no override exists.
const DefaultDisclosure = "As an Amazon Associate I earn from qualifying purchases."

// Config represents the complete generator configuration.
type Config struct {
	Images  ImagesConfig  `yaml:"images"`
	Caption CaptionConfig `yaml:"caption"`
	Logging LoggingConfig `yaml:"logging"`
}

// ImagesConfig contains image download and transform settings.
type ImagesConfig struct {
	Size       int `yaml:"size"`
	Quality    int `yaml:"quality"`
	MaxPerPost int `yaml:"max_per_post"`
	TimeoutSec int `yaml:"timeout_sec"`
}

// CaptionConfig contains caption rendering settings.
type CaptionConfig struct {
	Disclosure string `yaml:"disclosure"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the configuration used when no file is supplied.
func DefaultConfig() *Config {
	return &Config{
		Images: ImagesConfig{
			Size:       1080,
			Quality:    90,
			MaxPerPost: 10,
			TimeoutSec: 10,
		},
		Caption: CaptionConfig{
			Disclosure: DefaultDisclosure,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadConfig reads a YAML configuration file. Fields left unset in the
// file keep their default values.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Images.Size < 1 {
		return ErrInvalidImageSize
	}

	if c.Images.Quality < 1 || c.Images.Quality > 100 {
		return ErrInvalidImageQuality
	}

	if c.Images.MaxPerPost < 1 {
		return ErrInvalidMaxPerPost
	}

	if c.Images.TimeoutSec < 1 {
		return ErrInvalidTimeout
	}

	if c.Caption.Disclosure == "" {
		return ErrMissingDisclosure
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return ErrInvalidLogLevel
	}

	return nil
}
