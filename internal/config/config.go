// Package config loads and saves the splice configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// validThemes are the palette names accepted in config.
var validThemes = map[string]bool{
	"mocha": true,
	"latte": true,
	"auto":  true,
}

// Config is the on-disk configuration.
type Config struct {
	Theme string `toml:"theme"` // mocha, latte, auto

	// Axis padding in cells. Terminal columns are scarce, so the
	// default is far smaller than the 40px a browser canvas uses.
	PaddingLeft  float64 `toml:"padding_left"`
	PaddingRight float64 `toml:"padding_right"`

	// FrameIntervalMS caps resize recomputation to one per interval.
	FrameIntervalMS int `toml:"frame_interval_ms"`

	// TickRateMS is the playback clock resolution.
	TickRateMS int `toml:"tick_rate_ms"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Theme:           "mocha",
		PaddingLeft:     4,
		PaddingRight:    4,
		FrameIntervalMS: 16,
		TickRateMS:      100,
	}
}

// Dir returns the config directory, honoring SPLICE_CONFIG_DIR.
func Dir() string {
	if dir := os.Getenv("SPLICE_CONFIG_DIR"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".splice"
	}
	return filepath.Join(home, ".config", "splice")
}

// Path returns the config file path.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, filling in defaults for anything unset.
// A missing file is not an error: defaults are returned.
func Load() (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(Path())
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", Path(), err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("config: parse %s: %w", Path(), err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Validate checks the config and normalizes non-positive intervals
// back to their defaults.
func (c *Config) Validate() error {
	if !validThemes[c.Theme] {
		return fmt.Errorf("config: unknown theme %q (valid: mocha, latte, auto)", c.Theme)
	}
	if c.PaddingLeft < 0 || c.PaddingRight < 0 {
		return fmt.Errorf("config: negative padding")
	}
	def := Default()
	if c.FrameIntervalMS <= 0 {
		c.FrameIntervalMS = def.FrameIntervalMS
	}
	if c.TickRateMS <= 0 {
		c.TickRateMS = def.TickRateMS
	}
	return nil
}

// Save writes the config file, creating the directory as needed.
func Save(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return fmt.Errorf("config: create %s: %w", Dir(), err)
	}

	f, err := os.Create(Path())
	if err != nil {
		return fmt.Errorf("config: write %s: %w", Path(), err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	return nil
}
