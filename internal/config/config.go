package config

import (
	"os"
	"path/filepath"
	"strings"

	"showcase/internal/errors"
	"showcase/internal/log"

	"gopkg.in/yaml.v3"
)

// Dark mode seeding strategies.
const (
	DarkModeSystem = "system"
	DarkModeLight  = "light"
	DarkModeDark   = "dark"
)

// Config represents the application configuration structure.
type Config struct {
	Log struct {
		Level string `yaml:"level"` // debug, info, warn, error
		JSON  bool   `yaml:"json"`  // Emit JSON entries
		File  string `yaml:"file"`  // Log file; empty means stderr (gui) or a temp file (tui)
	} `yaml:"log"`
	Debug      bool   `yaml:"debug"`       // Force debug entries on
	StartRoute string `yaml:"start_route"` // Start destination of the back stack
	PrefsPath  string `yaml:"prefs_path"`  // Preference store file
	Theme      struct {
		Fallback string `yaml:"fallback"`  // Theme used when nothing is stored
		DarkMode string `yaml:"dark_mode"` // Initial dark mode: system, light or dark
	} `yaml:"theme"`
	TUI struct {
		AltScreen bool `yaml:"alt_screen"` // Run the terminal UI in the alternate screen
	} `yaml:"tui"`
}

// DefaultPath returns ~/.config/showcase/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "showcase", "config.yaml"), nil
}

// LoadConfig loads configuration from the default location.
func LoadConfig() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadConfigFile(path)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.With(log.F("path", path)).Debug("no config file, using defaults")
			return cfg, nil
		}
		return nil, errors.NewConfigError("error reading config file", path, errors.ConfigNotFound, err)
	}

	// Unmarshal into a temporary config to preserve defaults for unset fields
	var tempCfg Config
	if err := yaml.Unmarshal(data, &tempCfg); err != nil {
		return nil, errors.NewConfigError("error parsing config file", path, errors.InvalidConfig, err)
	}

	if tempCfg.Log.Level != "" {
		cfg.Log.Level = tempCfg.Log.Level
	}
	cfg.Log.JSON = tempCfg.Log.JSON
	if tempCfg.Log.File != "" {
		cfg.Log.File = tempCfg.Log.File
	}
	cfg.Debug = tempCfg.Debug
	if tempCfg.StartRoute != "" {
		cfg.StartRoute = tempCfg.StartRoute
	}
	if tempCfg.PrefsPath != "" {
		cfg.PrefsPath = tempCfg.PrefsPath
	}
	if tempCfg.Theme.Fallback != "" {
		cfg.Theme.Fallback = tempCfg.Theme.Fallback
	}
	if tempCfg.Theme.DarkMode != "" {
		cfg.Theme.DarkMode = tempCfg.Theme.DarkMode
	}
	if hasKey(data, "tui") {
		cfg.TUI.AltScreen = tempCfg.TUI.AltScreen
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// hasKey reports whether the top-level mapping contains key, so explicit
// false booleans can be told apart from missing sections.
func hasKey(data []byte, key string) bool {
	var raw map[string]yaml.Node
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return false
	}
	_, ok := raw[key]
	return ok
}

func defaultConfig() *Config {
	cfg := &Config{}
	cfg.Log.Level = "info"
	cfg.StartRoute = "main/guidelines"
	cfg.Theme.DarkMode = DarkModeSystem
	cfg.TUI.AltScreen = true
	return cfg
}

// New returns the default configuration.
func New() *Config {
	return defaultConfig()
}

// SaveConfig saves the configuration to the specified file.
// It creates parent directories if they don't exist.
func SaveConfig(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}
	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c == nil {
		return errors.NewConfigError("nil config", "", errors.InvalidConfig, nil)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return errors.NewConfigError("invalid log level", "log.level", errors.InvalidConfig, err)
	}
	if strings.TrimSpace(c.StartRoute) == "" {
		return errors.NewConfigError("start route is required", "start_route", errors.InvalidConfig, nil)
	}
	switch c.Theme.DarkMode {
	case DarkModeSystem, DarkModeLight, DarkModeDark:
	default:
		return errors.NewConfigError("invalid dark mode "+c.Theme.DarkMode, "theme.dark_mode", errors.InvalidConfig, nil)
	}
	return nil
}

// ResolvePrefsPath returns the preference store path, defaulting to
// <user config dir>/showcase/prefs.yaml.
func (c *Config) ResolvePrefsPath() (string, error) {
	if c.PrefsPath != "" {
		return c.PrefsPath, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "showcase", "prefs.yaml"), nil
}

// SeedDarkMode resolves the initial dark mode flag. systemDark is only
// consulted for the "system" strategy.
func (c *Config) SeedDarkMode(systemDark func() bool) bool {
	switch c.Theme.DarkMode {
	case DarkModeDark:
		return true
	case DarkModeLight:
		return false
	}
	return systemDark != nil && systemDark()
}

// ApplyLogging configures the package logger from the configuration.
func (c *Config) ApplyLogging(extra ...log.Option) {
	opts := []log.Option{log.WithLevel(c.Log.Level)}
	if c.Log.JSON {
		opts = append(opts, log.WithJSON())
	}
	opts = append(opts, extra...)
	log.Configure(opts...)
	log.SetDebug(c.Debug)
}
