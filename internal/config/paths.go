package config

import (
	"os"
	"path/filepath"
)

// BaseDir returns ~/.univ.
func BaseDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".univ")
}

// ConfigPath returns the global config file path.
func ConfigPath() string {
	return filepath.Join(BaseDir(), "config.toml")
}

// LogDir returns the log directory.
func LogDir() string {
	return filepath.Join(BaseDir(), "logs")
}

// LogPath returns the default log file path.
func LogPath() string {
	return filepath.Join(LogDir(), "univ.log")
}
