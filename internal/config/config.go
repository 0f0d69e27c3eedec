// Package config handles loading listkeeper configuration.
//
// Configuration follows the XDG Base Directory specification:
//   - Config: ~/.config/listkeeper/config.yaml
//   - Data:   ~/.local/share/listkeeper/ (the stored list)
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const appName = "listkeeper"

// Backends understood by StoreConfig.Backend.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
	BackendBadger = "badger"
	BackendMemory = "memory"
)

// StoreConfig selects where the list is kept.
type StoreConfig struct {
	Backend string `yaml:"backend" validate:"oneof=json sqlite badger memory"`
	Dir     string `yaml:"dir,omitempty"`
	Key     string `yaml:"key,omitempty" validate:"omitempty,max=128"`
}

// UIConfig holds terminal UI preferences.
type UIConfig struct {
	Theme          string        `yaml:"theme,omitempty" validate:"omitempty,oneof=classic neon mono"`
	MessageTimeout time.Duration `yaml:"message_timeout,omitempty" validate:"gte=0"`
	Mouse          bool          `yaml:"mouse"`
}

// LogConfig controls the slog logger.
type LogConfig struct {
	Level string `yaml:"level,omitempty" validate:"omitempty,oneof=debug info warn error"`
	File  string `yaml:"file,omitempty"`
}

// Config is the top-level configuration.
type Config struct {
	Store  StoreConfig `yaml:"store"`
	UI     UIConfig    `yaml:"ui"`
	Locale string      `yaml:"locale,omitempty"`
	Log    LogConfig   `yaml:"log"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Store: StoreConfig{
			Backend: BackendJSON,
			Dir:     DataDir(),
		},
		UI: UIConfig{
			Theme:          "classic",
			MessageTimeout: 3 * time.Second,
			Mouse:          true,
		},
		Locale: "und",
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// ConfigDir returns the XDG config directory.
func ConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName)
}

// DataDir returns the XDG data directory.
func DataDir() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "share", appName)
}

// ConfigPath returns the full path to config.yaml.
func ConfigPath() string {
	dir := ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// LoadFrom reads config from path. A missing file yields DefaultConfig.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	cfg.Store.Dir = expandHome(cfg.Store.Dir)
	cfg.Log.File = expandHome(cfg.Log.File)
	return cfg, nil
}

// ApplyEnv overrides fields from LISTKEEPER_* environment variables.
func (c *Config) ApplyEnv() {
	set := func(dst *string, name string) {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			*dst = v
		}
	}
	set(&c.Store.Backend, "LISTKEEPER_BACKEND")
	set(&c.Store.Dir, "LISTKEEPER_DATA")
	set(&c.Store.Key, "LISTKEEPER_KEY")
	set(&c.UI.Theme, "LISTKEEPER_THEME")
	set(&c.Locale, "LISTKEEPER_LOCALE")
	set(&c.Log.Level, "LISTKEEPER_LOG_LEVEL")
	set(&c.Log.File, "LISTKEEPER_LOG_FILE")
	c.Store.Dir = expandHome(c.Store.Dir)
	c.Log.File = expandHome(c.Log.File)
}

var validate = validator.New()

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Save writes cfg to path, creating its directory.
func Save(cfg Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

func expandHome(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return p
		}
		return filepath.Join(home, strings.TrimPrefix(p, "~"))
	}
	return p
}
