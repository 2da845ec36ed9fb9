// Package config loads runtime settings for the postcard grid tools.
//
// Settings come from built-in defaults, an optional YAML file and the
// environment, in that order; later sources override earlier ones.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ironsheep/postcard-grid/internal/detection"
	"github.com/ironsheep/postcard-grid/internal/imaging"
)

// Environment variables read by Load.
const (
	EnvConfigPath = "POSTCARD_GRID_CONFIG"
	EnvLogLevel   = "POSTCARD_GRID_LOG_LEVEL"
)

// Config is the complete runtime configuration.
type Config struct {
	Detection DetectionConfig `yaml:"detection"`
	Output    OutputConfig    `yaml:"output"`
	Log       LogConfig       `yaml:"log"`
}

// DetectionConfig mirrors detection.Options.
type DetectionConfig struct {
	MinAreaFraction    float64 `yaml:"min_area_fraction"`
	EdgeMarginFraction float64 `yaml:"edge_margin_fraction"`
	MinDistanceDivisor int     `yaml:"min_distance_divisor"`
	BlurKernel         int     `yaml:"blur_kernel"`
}

// OutputConfig controls written artifacts.
type OutputConfig struct {
	JPEGQuality int `yaml:"jpeg_quality"`
}

// LogConfig controls the slog handler.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	opts := detection.DefaultOptions()
	return &Config{
		Detection: DetectionConfig{
			MinAreaFraction:    opts.MinAreaFraction,
			EdgeMarginFraction: opts.EdgeMarginFraction,
			MinDistanceDivisor: opts.MinDistanceDivisor,
			BlurKernel:         opts.BlurKernel,
		},
		Output: OutputConfig{JPEGQuality: imaging.DefaultJPEGQuality},
		Log:    LogConfig{Level: "info"},
	}
}

// Load builds a Config from defaults, the YAML file at path and the
// environment. An empty path falls back to $POSTCARD_GRID_CONFIG; if that is
// unset too, no file is read.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := cfg.decode(data); err != nil {
			return nil, err
		}
	}

	if level := os.Getenv(EnvLogLevel); level != "" {
		cfg.Log.Level = level
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decode overlays YAML onto c. Unknown keys are rejected; an empty document
// changes nothing.
func (c *Config) decode(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	return nil
}

// Validate reports every out-of-range setting.
func (c *Config) Validate() error {
	var errs []error
	d := c.Detection
	if d.MinAreaFraction <= 0 || d.MinAreaFraction >= 1 {
		errs = append(errs, fmt.Errorf("detection.min_area_fraction must be in (0, 1), got %v", d.MinAreaFraction))
	}
	if d.EdgeMarginFraction < 0 || d.EdgeMarginFraction >= 0.5 {
		errs = append(errs, fmt.Errorf("detection.edge_margin_fraction must be in [0, 0.5), got %v", d.EdgeMarginFraction))
	}
	if d.MinDistanceDivisor < 1 {
		errs = append(errs, fmt.Errorf("detection.min_distance_divisor must be at least 1, got %d", d.MinDistanceDivisor))
	}
	if d.BlurKernel < 0 || (d.BlurKernel > 1 && d.BlurKernel%2 == 0) {
		errs = append(errs, fmt.Errorf("detection.blur_kernel must be 0, 1 or an odd size, got %d", d.BlurKernel))
	}
	if q := c.Output.JPEGQuality; q < 1 || q > 100 {
		errs = append(errs, fmt.Errorf("output.jpeg_quality must be in [1, 100], got %d", q))
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// DetectionOptions converts the detection section for detection.New.
func (c *Config) DetectionOptions() detection.Options {
	return detection.Options{
		MinAreaFraction:    c.Detection.MinAreaFraction,
		EdgeMarginFraction: c.Detection.EdgeMarginFraction,
		MinDistanceDivisor: c.Detection.MinDistanceDivisor,
		BlurKernel:         c.Detection.BlurKernel,
	}
}

// SlogLevel returns the configured level, or info if it does not parse.
func (c *Config) SlogLevel() slog.Level {
	level, err := ParseLevel(c.Log.Level)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("log.level %q is not one of debug, info, warn, error", name)
}
