// Package config defines core configuration types for minigrep.
// These types are pure data structures with no dependency on how the
// configuration was loaded.
package config

import "fmt"

// ColorMode controls when styled output is emitted on stderr.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid returns true if the color mode is one of the known values.
func (m ColorMode) IsValid() bool {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// Config is the root configuration structure for minigrep.
// Query and file path are positional arguments, not configuration;
// they never appear here.
type Config struct {
	// IgnoreCase enables case-insensitive matching.
	IgnoreCase bool `yaml:"ignore_case"`

	// Color controls styled stderr output ("auto", "always", "never").
	Color ColorMode `yaml:"color"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		IgnoreCase: false,
		Color:      ColorAuto,
	}
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if !c.Color.IsValid() {
		return fmt.Errorf("invalid color mode %q (expected auto, always, or never)", c.Color)
	}
	return nil
}
