package shrinkwrap

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// ConfigFileName is the name FindConfig searches for.
const ConfigFileName = "shrinkwrap.toml"

// Config represents the shrinkwrap.toml configuration file
type Config struct {
	Shrink  ShrinkConfig  `toml:"shrink"`
	Text    TextConfig    `toml:"text"`
	Preview PreviewConfig `toml:"preview"`
	Log     LogConfig     `toml:"log"`
}

type ShrinkConfig struct {
	// Enabled is the default for built-in shrinkers
	Enabled bool `toml:"enabled"`
}

// TextConfig selects the text engine used by the CLI.
type TextConfig struct {
	// Measurer is "cells" (terminal cell widths) or "fixed" (uniform advance)
	Measurer string `toml:"measurer"`
	// Advance per rune when Measurer is "fixed"
	Advance float32 `toml:"advance"`
	// LineHeight in pixels (or rows for cells)
	LineHeight float32 `toml:"line_height"`
	// Align is "start", "center" or "end"
	Align string `toml:"align"`
}

type PreviewConfig struct {
	// MaxWidth of a bubble, including padding
	MaxWidth int `toml:"max_width"`
	// Padding on each side of the bubble text
	Padding  int      `toml:"padding"`
	Messages []string `toml:"messages"`
}

type LogConfig struct {
	Level       string `toml:"level"`
	Development bool   `toml:"development"`
}

// ErrConfigNotFound is returned by FindConfig when no config file exists
// in the directory or any of its parents.
var ErrConfigNotFound = errors.New("shrinkwrap: config file not found")

// DefaultConfig returns a sensible default configuration
func DefaultConfig() Config {
	return Config{
		Shrink: ShrinkConfig{
			Enabled: true,
		},
		Text: TextConfig{
			Measurer:   "cells",
			Advance:    8,
			LineHeight: 1,
			Align:      "start",
		},
		Preview: PreviewConfig{
			MaxWidth: 28,
			Padding:  1,
			Messages: []string{
				"Hello Android! How are you today?",
				"Fine, thanks.",
				"Wrap content used to leave a gap after the longest line of a bubble like this one.",
			},
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate checks the config for values the engine cannot use.
func (c Config) Validate() error {
	switch c.Text.Measurer {
	case "cells", "fixed":
	default:
		return fmt.Errorf("text.measurer: unknown measurer %q", c.Text.Measurer)
	}
	if c.Text.Measurer == "fixed" && c.Text.Advance <= 0 {
		return fmt.Errorf("text.advance: must be positive, got %v", c.Text.Advance)
	}
	if c.Text.LineHeight <= 0 {
		return fmt.Errorf("text.line_height: must be positive, got %v", c.Text.LineHeight)
	}
	switch c.Text.Align {
	case "", "start", "center", "end":
	default:
		return fmt.Errorf("text.align: unknown alignment %q", c.Text.Align)
	}
	if c.Preview.MaxWidth < 0 {
		return fmt.Errorf("preview.max_width: must not be negative, got %d", c.Preview.MaxWidth)
	}
	if c.Preview.Padding < 0 {
		return fmt.Errorf("preview.padding: must not be negative, got %d", c.Preview.Padding)
	}
	if c.Preview.MaxWidth > 0 && 2*c.Preview.Padding >= c.Preview.MaxWidth {
		return fmt.Errorf("preview.padding: %d leaves no room for text in max_width %d", c.Preview.Padding, c.Preview.MaxWidth)
	}
	return nil
}

// LoadConfig reads a config file. Missing keys keep their defaults.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("failed to read config: %w", err)
	}

	if err := toml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return config, fmt.Errorf("invalid %s: %w", path, err)
	}
	return config, nil
}

// SaveConfig writes the config as TOML.
func SaveConfig(path string, config Config) error {
	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// FindConfig looks for shrinkwrap.toml in dir and its parents.
func FindConfig(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		path := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrConfigNotFound
		}
		dir = parent
	}
}
