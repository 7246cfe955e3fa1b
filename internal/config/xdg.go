// Package config provides XDG path helpers.
package config

import (
	"os"
	"path/filepath"
)

const appName = "soneto"

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), appName, "config.toml")
}

// DefaultWordListPath returns where an extra rhyme word list is looked up
// when the config does not name one.
func DefaultWordListPath() string {
	return filepath.Join(XDGConfigHome(), appName, "palabras.txt")
}
