// Package config loads calculator settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"

	"github.com/zephyrtronium/calculator/keypad"
	"github.com/zephyrtronium/calculator/store"
)

// DefaultPath is the configuration file read when none is named.
const DefaultPath = "calculator.toml"

// Config holds calculator settings. Every field is optional in the file.
type Config struct {
	// MaxMagnitude is the largest absolute result that is displayed.
	MaxMagnitude float64 `toml:"max_magnitude"`
	// DisplayLimit is the number of characters the display holds.
	DisplayLimit int `toml:"display_limit"`
	// Database is the SQLite file holding the saved display.
	Database string `toml:"database"`
	// Slot is the name the display is saved under.
	Slot string `toml:"slot"`
	// LogLevel is a logrus level name.
	LogLevel string `toml:"log_level"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		MaxMagnitude: keypad.DefaultMaxMagnitude,
		DisplayLimit: keypad.DefaultDisplayLimit,
		Database:     "calculator.db",
		Slot:         store.DefaultSlot,
		LogLevel:     "warn",
	}
}

// Load reads the configuration at path over the defaults and validates the
// result. Keys the file sets that Config does not know are an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if u := md.Undecoded(); len(u) > 0 {
		keys := make([]string, 0, len(u))
		for _, k := range u {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports every problem with the configuration.
func (c *Config) Validate() error {
	var errs *multierror.Error
	if !(c.MaxMagnitude > 0) {
		errs = multierror.Append(errs, fmt.Errorf("max_magnitude must be positive, not %g", c.MaxMagnitude))
	}
	if c.DisplayLimit < 1 {
		errs = multierror.Append(errs, fmt.Errorf("display_limit must be at least 1, not %d", c.DisplayLimit))
	}
	if c.Slot == "" {
		errs = multierror.Append(errs, errors.New("slot must not be empty"))
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		errs = multierror.Append(errs, fmt.Errorf("log_level: %w", err))
	}
	return errs.ErrorOrNil()
}

// Calculator creates a keypad calculator with the configured limits.
func (c *Config) Calculator(log logrus.FieldLogger) keypad.Calculator {
	return keypad.Calculator{
		MaxMagnitude: c.MaxMagnitude,
		DisplayLimit: c.DisplayLimit,
		Log:          log,
	}
}
