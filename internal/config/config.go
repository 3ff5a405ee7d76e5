package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"taskring/internal/tasklist"
)

const (
	DefaultConfigFileName = "config.toml"
	DefaultTitle          = "My Tasks"
	appDirName            = "taskring"
	envConfigPath         = "TASKRING_CONFIG"
)

type Keymap struct {
	Quit           string `toml:"quit"`
	Add            string `toml:"add"`
	Up             string `toml:"up"`
	Down           string `toml:"down"`
	Toggle         string `toml:"toggle"`
	Delete         string `toml:"delete"`
	Edit           string `toml:"edit"`
	Confirm        string `toml:"confirm"`
	Cancel         string `toml:"cancel"`
	FocusSwitch    string `toml:"focus_switch"`
	NextFilter     string `toml:"next_filter"`
	PrevFilter     string `toml:"prev_filter"`
	ClearCompleted string `toml:"clear_completed"`
	Help           string `toml:"help"`
}

type LoggingConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type Config struct {
	// DBPath enables the sqlite snapshot store. Empty keeps the list in memory.
	DBPath        string        `toml:"db_path"`
	DefaultFilter string        `toml:"default_filter"`
	Seed          bool          `toml:"seed"`
	Title         string        `toml:"title"`
	Keys          Keymap        `toml:"keys"`
	Logging       LoggingConfig `toml:"logging"`
}

// ResolveConfigPath picks $TASKRING_CONFIG, then the user config dir, then
// the working directory.
func ResolveConfigPath() string {
	if p := strings.TrimSpace(os.Getenv(envConfigPath)); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return DefaultConfigFileName
	}
	return filepath.Join(dir, appDirName, DefaultConfigFileName)
}

func LoadOrCreate(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, fmt.Errorf("write default config: %w", err)
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := tasklist.ParseFilter(c.DefaultFilter); err != nil {
		return fmt.Errorf("default_filter: %w", err)
	}
	return nil
}

// Filter returns the configured start filter, falling back to All.
func (c Config) Filter() tasklist.Filter {
	f, err := tasklist.ParseFilter(c.DefaultFilter)
	if err != nil {
		return tasklist.All
	}
	return f
}

func (c *Config) normalize() {
	def := Default()
	if strings.TrimSpace(c.Title) == "" {
		c.Title = def.Title
	}
	if strings.TrimSpace(c.Logging.Level) == "" {
		c.Logging.Level = def.Logging.Level
	}
	k, d := &c.Keys, def.Keys
	for _, pair := range []struct {
		v   *string
		def string
	}{
		{&k.Quit, d.Quit},
		{&k.Add, d.Add},
		{&k.Up, d.Up},
		{&k.Down, d.Down},
		{&k.Toggle, d.Toggle},
		{&k.Delete, d.Delete},
		{&k.Edit, d.Edit},
		{&k.Confirm, d.Confirm},
		{&k.Cancel, d.Cancel},
		{&k.FocusSwitch, d.FocusSwitch},
		{&k.NextFilter, d.NextFilter},
		{&k.PrevFilter, d.PrevFilter},
		{&k.ClearCompleted, d.ClearCompleted},
		{&k.Help, d.Help},
	} {
		if *pair.v == "" {
			*pair.v = pair.def
		}
	}
}

func write(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}

func Default() Config {
	return Config{
		DefaultFilter: "all",
		Seed:          true,
		Title:         DefaultTitle,
		Keys: Keymap{
			Quit:           "q",
			Add:            "a",
			Up:             "k",
			Down:           "j",
			Toggle:         " ",
			Delete:         "d",
			Edit:           "e",
			Confirm:        "enter",
			Cancel:         "esc",
			FocusSwitch:    "tab",
			NextFilter:     "l",
			PrevFilter:     "h",
			ClearCompleted: "C",
			Help:           "?",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
