// Package config loads and saves the tally user configuration: display
// glyphs, colors and the habit data file location.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Look holds the display glyphs used by the habit cards. The glyphs are
// handed to the renderer explicitly; nothing in the core reads them from
// process-wide state.
type Look struct {
	// TrueChr marks a goal-reached day.
	TrueChr string `yaml:"true_chr"`

	// FalseChr marks a tracked day that missed the goal.
	FalseChr string `yaml:"false_chr"`

	// FutureChr marks untracked and future days.
	FutureChr string `yaml:"future_chr"`
}

// Colors holds lipgloss-compatible color strings for the habit cards.
type Colors struct {
	Reached  string `yaml:"reached"`
	Todo     string `yaml:"todo"`
	Inactive string `yaml:"inactive"`
}

// Config is the whole user-facing configuration.
type Config struct {
	Look   Look   `yaml:"look"`
	Colors Colors `yaml:"colors"`

	// DataFile is where the habit collection is persisted.
	DataFile string `yaml:"data_file"`
}

// Default returns the configuration used when no config file exists.
func Default() Config {
	return Config{
		Look: Look{
			TrueChr:   "✓",
			FalseChr:  "✗",
			FutureChr: "·",
		},
		Colors: Colors{
			Reached:  "#8BC34A",
			Todo:     "#FFC107",
			Inactive: "#4a4a4a",
		},
		DataFile: defaultDataFile(),
	}
}

// DefaultPath returns the config file location, honoring TALLY_CONFIG.
func DefaultPath() string {
	if p := os.Getenv("TALLY_CONFIG"); p != "" {
		return p
	}
	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}
	return filepath.Join(base, "tally", "config.yaml")
}

func defaultDataFile() string {
	if p := os.Getenv("TALLY_DATA_FILE"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".local", "share", "tally", "habits.json")
}

// Load reads the config at path, filling any omitted fields with defaults.
// A missing file is not an error; it yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

// Save writes the config to path, creating parent directories as needed.
func (c Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// applyDefaults backfills fields an older or hand-edited config file left
// empty.
func (c *Config) applyDefaults() {
	def := Default()
	if c.Look.TrueChr == "" {
		c.Look.TrueChr = def.Look.TrueChr
	}
	if c.Look.FalseChr == "" {
		c.Look.FalseChr = def.Look.FalseChr
	}
	if c.Look.FutureChr == "" {
		c.Look.FutureChr = def.Look.FutureChr
	}
	if c.Colors.Reached == "" {
		c.Colors.Reached = def.Colors.Reached
	}
	if c.Colors.Todo == "" {
		c.Colors.Todo = def.Colors.Todo
	}
	if c.Colors.Inactive == "" {
		c.Colors.Inactive = def.Colors.Inactive
	}
	if c.DataFile == "" {
		c.DataFile = def.DataFile
	}
}
