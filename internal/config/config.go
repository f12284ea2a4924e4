// Package config handles configuration loading and shared data structures.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the root configuration file structure. Every field
// has a working default, so running without a config file is fine.
type Config struct {
	// Style applied to every generated KML placemark.
	Style Style `yaml:"style"`

	// DefaultRadius in meters, used when a circle definition carries a
	// radius marker without a usable value.
	DefaultRadius float64 `yaml:"default_radius,omitempty"`

	// CircleVertices is the number of unique vertices synthesized for a
	// circle ring.
	CircleVertices int `yaml:"circle_vertices,omitempty"`

	// ExclusionMarkers lists substrings that mark a zone record as
	// withdrawn; matching records are skipped before parsing.
	ExclusionMarkers []string `yaml:"exclusion_markers,omitempty"`
}

// Style describes how generated zone polygons are drawn.
type Style struct {
	LineColor   string  `yaml:"line_color,omitempty"`   // RRGGBB hex
	LineWidth   float64 `yaml:"line_width,omitempty"`   // pixels
	FillColor   string  `yaml:"fill_color,omitempty"`   // RRGGBB hex
	FillOpacity uint8   `yaml:"fill_opacity,omitempty"` // 0-255 alpha
}

// Default returns the built-in configuration: thin red outline,
// half-transparent red fill, the historical radius fallback.
func Default() *Config {
	return &Config{
		Style: Style{
			LineColor:   "ff0000",
			LineWidth:   1.0,
			FillColor:   "ff0000",
			FillOpacity: 50,
		},
		DefaultRadius:    5000,
		CircleVertices:   36,
		ExclusionMarkers: []string{"Исключена приказом"},
	}
}

// Load reads and parses the YAML configuration file from the specified
// path. Fields absent from the file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if cfg.DefaultRadius <= 0 {
		cfg.DefaultRadius = 5000
	}
	if cfg.CircleVertices <= 0 {
		cfg.CircleVertices = 36
	}

	return cfg, nil
}
