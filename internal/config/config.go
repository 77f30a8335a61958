// Package config loads game settings from a YAML file layered over defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"dungeon-arcanum/internal/game"
	"dungeon-arcanum/internal/i18n"
)

// Save backends.
const (
	BackendFile     = "file"
	BackendPostgres = "postgres"
)

// LoopConfig tunes the real-time frame loop.
type LoopConfig struct {
	// TickRate is the number of simulation steps per second.
	TickRate int `yaml:"tick_rate"`
	// HoldWindow is how long a key press keeps its direction active.
	// Terminals report no key releases, so held keys show up as a stream
	// of repeats inside this window.
	HoldWindow time.Duration `yaml:"hold_window"`
	// LogLines caps the messages kept for the HUD.
	LogLines int `yaml:"log_lines"`
}

// SaveConfig selects where save blobs go.
type SaveConfig struct {
	Backend string `yaml:"backend"`
	// Dir is the FileStore directory; empty means the XDG data dir.
	Dir string `yaml:"dir"`
	DSN string `yaml:"dsn"`
	Key string `yaml:"key"`
}

// Config is the complete settings file.
type Config struct {
	Rules  game.Rules `yaml:"rules"`
	Loop   LoopConfig `yaml:"loop"`
	Save   SaveConfig `yaml:"save"`
	Locale string     `yaml:"locale"`
}

// Default returns the stock settings.
func Default() Config {
	return Config{
		Rules: game.DefaultRules(),
		Loop: LoopConfig{
			TickRate:   60,
			HoldWindow: 250 * time.Millisecond,
			LogLines:   50,
		},
		Save: SaveConfig{
			Backend: BackendFile,
			Key:     game.DefaultSaveKey,
		},
		Locale: "en",
	}
}

// Load reads path over the defaults. An empty path or a missing file
// yields the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every section.
func (c Config) Validate() error {
	if err := c.Rules.Validate(); err != nil {
		return err
	}
	if c.Loop.TickRate <= 0 {
		return fmt.Errorf("loop.tick_rate must be positive, got %d", c.Loop.TickRate)
	}
	if c.Loop.HoldWindow <= 0 {
		return fmt.Errorf("loop.hold_window must be positive, got %s", c.Loop.HoldWindow)
	}
	if c.Loop.LogLines <= 0 {
		return fmt.Errorf("loop.log_lines must be positive, got %d", c.Loop.LogLines)
	}
	switch c.Save.Backend {
	case BackendFile:
	case BackendPostgres:
		if c.Save.DSN == "" {
			return errors.New("save.dsn is required for the postgres backend")
		}
	default:
		return fmt.Errorf("save.backend %q is not one of file, postgres", c.Save.Backend)
	}
	if c.Save.Key == "" {
		return errors.New("save.key must not be empty")
	}
	if _, err := i18n.New(c.Locale); err != nil {
		return fmt.Errorf("locale %q: %w", c.Locale, err)
	}
	return nil
}

// TickInterval returns the wall-clock time between simulation steps.
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.Loop.TickRate)
}

// Marshal renders c as YAML, suitable as a starting config file.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
