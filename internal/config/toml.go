// Package config provides configuration helpers and TOML parsing.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Editor     EditorConfig     `toml:"editor"`
	Dictionary DictionaryConfig `toml:"dictionary"`
	Watch      WatchConfig      `toml:"watch"`
	Report     ReportConfig     `toml:"report"`
}

// EditorConfig maps editor-related settings.
type EditorConfig struct {
	Suggestions *bool `toml:"suggestions"`
}

// DictionaryConfig maps rhyme dictionary settings.
type DictionaryConfig struct {
	WordList     *string `toml:"wordlist"`
	SuggestLimit *int    `toml:"suggest-limit"`
}

// WatchConfig maps file watcher settings.
type WatchConfig struct {
	DebounceMs *int `toml:"debounce-ms"`
}

// ReportConfig maps report output settings.
type ReportConfig struct {
	Format *string `toml:"format"`
	Color  *bool   `toml:"color"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}
