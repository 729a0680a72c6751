// Package config loads and saves the stucash TOML configuration and the
// user's plan file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all stucash configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Wage       WageConfig       `toml:"wage"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	DataDir     string `toml:"data_dir,omitempty"`
	DefaultCity string `toml:"default_city,omitempty"`
	PlanFile    string `toml:"plan_file,omitempty"`
}

// WageConfig holds the campus-job wage assumptions used by the scenario
// evaluator.
type WageConfig struct {
	HourlyRate      float64 `toml:"hourly_rate"`
	WeeksPerMonth   float64 `toml:"weeks_per_month"`
	BaseWeeklyHours float64 `toml:"base_weekly_hours"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Wage: WageConfig{
			HourlyRate:      15,
			WeeksPerMonth:   4,
			BaseWeeklyHours: 20,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "stucash")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "stucash")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// DataDir resolves the historical dataset directory: config value first,
// then a `data` directory next to the working directory.
func DataDir(cfg Config) string {
	if cfg.General.DataDir != "" {
		return cfg.General.DataDir
	}
	return "data"
}
