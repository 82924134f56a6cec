// Package config provides configuration loading and parsing for chartkit.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Configuration errors.
var (
	// ErrConfigNotFound indicates the config file does not exist.
	ErrConfigNotFound = errors.New("config file not found")

	// ErrInvalidFormat indicates the config could not be parsed.
	ErrInvalidFormat = errors.New("invalid config format")

	// ErrUnsupportedFormat indicates an unrecognized config file format.
	ErrUnsupportedFormat = errors.New("unsupported config format")

	// ErrValidationFailed indicates the config failed validation.
	ErrValidationFailed = errors.New("config validation failed")

	// ErrMissingEnvVar indicates a required environment variable is unset.
	ErrMissingEnvVar = errors.New("missing environment variable")
)

// Config is the engine configuration.
type Config struct {
	Log     LogConfig     `yaml:"log" json:"log"`
	Render  RenderConfig  `yaml:"render" json:"render"`
	Tooltip TooltipConfig `yaml:"tooltip" json:"tooltip"`
	Cache   CacheConfig   `yaml:"cache" json:"cache"`
}

// LogConfig configures structured logging.
type LogConfig struct {
	// Level is the minimum log level (trace, debug, info, warn, error).
	Level string `yaml:"level" json:"level"`

	// Format is the output format (json or console).
	Format string `yaml:"format" json:"format"`
}

// RenderConfig configures chart rendering defaults.
type RenderConfig struct {
	// Width is the default pixel width used when the caller supplies none.
	Width int `yaml:"width" json:"width"`

	// Bins is the default histogram bin count for distribution charts
	// that do not specify one.
	Bins int `yaml:"bins" json:"bins"`
}

// TooltipConfig configures tooltip lifetime.
type TooltipConfig struct {
	// TTLSeconds is how long a tooltip stays visible before
	// auto-dismissal.
	TTLSeconds float64 `yaml:"ttlSeconds" json:"ttlSeconds"`
}

// TTL returns the tooltip lifetime as a duration.
func (t TooltipConfig) TTL() time.Duration {
	return time.Duration(t.TTLSeconds * float64(time.Second))
}

// CacheConfig configures the re-aggregation result cache.
type CacheConfig struct {
	// Enabled turns the cache on.
	Enabled bool `yaml:"enabled" json:"enabled"`

	// Dir is the on-disk location. Ignored when InMemory is set.
	Dir string `yaml:"dir" json:"dir"`

	// InMemory keeps the cache off disk (tests, ephemeral hosts).
	InMemory bool `yaml:"inMemory" json:"inMemory"`

	// TTLSeconds bounds how long a cached re-aggregation stays valid.
	TTLSeconds float64 `yaml:"ttlSeconds" json:"ttlSeconds"`
}

// TTL returns the cache entry lifetime as a duration.
func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds * float64(time.Second))
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{
		Log:     LogConfig{Level: "info", Format: "console"},
		Render:  RenderConfig{Width: 600, Bins: 10},
		Tooltip: TooltipConfig{TTLSeconds: 2},
		Cache:   CacheConfig{Enabled: false, TTLSeconds: 300},
	}
}

// Validate checks the configuration for usable values.
func (c *Config) Validate() error {
	if c.Render.Width <= 0 {
		return fmt.Errorf("%w: render width must be positive, got %d", ErrValidationFailed, c.Render.Width)
	}
	if c.Render.Bins < 0 {
		return fmt.Errorf("%w: bins must not be negative, got %d", ErrValidationFailed, c.Render.Bins)
	}
	if c.Tooltip.TTLSeconds <= 0 {
		return fmt.Errorf("%w: tooltip ttl must be positive, got %v", ErrValidationFailed, c.Tooltip.TTLSeconds)
	}
	if c.Cache.Enabled && !c.Cache.InMemory && c.Cache.Dir == "" {
		return fmt.Errorf("%w: cache dir required for on-disk cache", ErrValidationFailed)
	}
	return nil
}
