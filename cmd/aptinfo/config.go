package main

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// InputConfig names the apt.dat file to inspect.
type InputConfig struct {
	Path           string `yaml:"path" validate:"required"`
	DefaultVersion int    `yaml:"defaultVersion" validate:"gte=0"`
	Strict         bool   `yaml:"strict"`
}

// OutputConfig controls the optional rewrite of the parsed file.
type OutputConfig struct {
	Path string `yaml:"path"`
	Sort string `yaml:"sort" validate:"omitempty,oneof=name id elevation"`
}

// ViewportConfig restricts the summary to airports inside a lat/lon box.
type ViewportConfig struct {
	MinLon float64 `yaml:"minLon" validate:"gte=-180,lte=180"`
	MaxLon float64 `yaml:"maxLon" validate:"gte=-180,lte=180"`
	MinLat float64 `yaml:"minLat" validate:"gte=-90,lte=90"`
	MaxLat float64 `yaml:"maxLat" validate:"gte=-90,lte=90"`
}

// AppConfig is the root configuration structure.
type AppConfig struct {
	Input    InputConfig     `yaml:"input" validate:"required"`
	Output   OutputConfig    `yaml:"output"`
	Viewport *ViewportConfig `yaml:"viewport"`
	LogLevel string          `yaml:"logLevel" validate:"omitempty,oneof=debug info warn error"`
}

// LoadConfig loads and validates the configuration from a YAML file.
func LoadConfig(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ValidateConfig checks a configuration against its declared constraints.
func ValidateConfig(cfg *AppConfig) error {
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}
	if cfg.Viewport != nil {
		if err := v.Struct(cfg.Viewport); err != nil {
			return fmt.Errorf("validate viewport: %w", err)
		}
		if cfg.Viewport.MinLon > cfg.Viewport.MaxLon || cfg.Viewport.MinLat > cfg.Viewport.MaxLat {
			return fmt.Errorf("validate viewport: min edges exceed max edges")
		}
	}
	if cfg.Input.DefaultVersion == 0 {
		cfg.Input.DefaultVersion = 1100
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	return nil
}
