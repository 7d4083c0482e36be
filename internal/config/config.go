// Package config loads the editor configuration file.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
	"ttsedit/internal/theme"
)

// Environment variables consulted by Load
const (
	EnvConfigPath  = "TTS_EDITOR_CONFIG"
	EnvDefaultFile = "TTS_EDITOR_DEFAULT_FILE"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Config holds the user settings. Zero fields fall back to Default().
type Config struct {
	LogFile     string `yaml:"log_file"`
	HistoryDB   string `yaml:"history_db"`
	Theme       string `yaml:"theme"`
	Listen      string `yaml:"listen"`
	DefaultFile string `yaml:"default_file"`
	Backup      bool   `yaml:"backup"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		LogFile:   "ttsedit_debug.log",
		HistoryDB: "ttsedit_history.db",
		Theme:     theme.DefaultTheme,
		Listen:    "127.0.0.1:8080",
		Backup:    true,
	}
}

// Path resolves the config file location: explicit path, then
// $TTS_EDITOR_CONFIG, then <user config dir>/ttsedit/config.yaml.
func Path(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if env := os.Getenv(EnvConfigPath); env != "" {
		return env
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "ttsedit", "config.yaml")
}

// Load reads the config at Path(explicit). A missing file yields defaults;
// an explicitly named file must exist.
func Load(explicit string) (Config, error) {
	cfg := Default()

	path := Path(explicit)
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist) && explicit == "":
		default:
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	if file := os.Getenv(EnvDefaultFile); file != "" {
		cfg.DefaultFile = file
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field values
func (c Config) Validate() error {
	if c.Listen != "" {
		if _, _, err := net.SplitHostPort(c.Listen); err != nil {
			return fmt.Errorf("%w: listen %q: %v", ErrInvalid, c.Listen, err)
		}
	}
	if c.Theme != "" && !theme.GetThemeManager().Has(c.Theme) {
		return fmt.Errorf("%w: unknown theme %q (available: %v)", ErrInvalid, c.Theme, theme.GetThemeManager().Available())
	}
	return nil
}

// Save writes the config as YAML, creating parent directories
func (c Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}
