package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// DefaultTheme is used when neither the flag nor the config names a theme.
const DefaultTheme = "classic"

// Config represents ~/.univ/config.toml. Files ending in .yaml or .yml are
// read and written as YAML instead.
type Config struct {
	Theme   string                 `toml:"theme" yaml:"theme"`
	LogPath string                 `toml:"log_path" yaml:"log_path"`
	Themes  map[string]ThemeConfig `toml:"themes" yaml:"themes"`
}

// ThemeConfig overrides parts of a bundled theme.
type ThemeConfig struct {
	Border        string            `toml:"border" yaml:"border"`
	DefaultBorder string            `toml:"default_border" yaml:"default_border"`
	Palette       map[string]string `toml:"palette" yaml:"palette"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{Theme: DefaultTheme, LogPath: LogPath()}
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// Load reads config from the given path. Returns nil and an error if the file
// is missing or malformed.
func Load(path string) (*Config, error) {
	var cfg Config
	if isYAML(path) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
	} else if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault reads path and fills unset fields from Default. A missing
// file yields Default.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}
	def := Default()
	if cfg.Theme == "" {
		cfg.Theme = def.Theme
	}
	if cfg.LogPath == "" {
		cfg.LogPath = def.LogPath
	}
	return cfg, nil
}

// Save writes config to the given path, creating parent dirs as needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	var encErr error
	if isYAML(path) {
		enc := yaml.NewEncoder(f)
		encErr = enc.Encode(cfg)
		if closeErr := enc.Close(); encErr == nil {
			encErr = closeErr
		}
	} else {
		encErr = toml.NewEncoder(f).Encode(cfg)
	}
	if closeErr := f.Close(); closeErr != nil && encErr == nil {
		return closeErr
	}
	return encErr
}

// ResolveTheme determines the theme to activate using precedence:
// 1. flagOverride (--theme flag)
// 2. the config file's theme
// 3. DefaultTheme
func ResolveTheme(flagOverride string, cfg *Config) string {
	if flagOverride != "" {
		return flagOverride
	}
	if cfg != nil && cfg.Theme != "" {
		return cfg.Theme
	}
	return DefaultTheme
}
