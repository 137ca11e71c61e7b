// Package config provides configuration for the notegate binary.
// Loads from: --config flag > NOTEGATE_CONFIG > ~/.config/notegate/config.toml > built-in defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Override is set by the global --config flag.
var Override string

// Config holds all notegate configuration.
type Config struct {
	Inbox InboxConfig `toml:"inbox"`
	Tools ToolsConfig `toml:"tools"`
	Keys  KeysConfig  `toml:"keys"`
}

// InboxConfig holds watch-mode settings.
type InboxConfig struct {
	Path string `toml:"path"`
}

// ToolsConfig names the external tools the pipeline shells out to.
type ToolsConfig struct {
	Sed  string `toml:"sed"`
	MDLS string `toml:"mdls"`
}

// KeysConfig holds the target-key → source-keys tables feeding the two
// aggregators. An absent table falls back to defaults; a present but
// empty table is rejected downstream at aggregator construction.
type KeysConfig struct {
	Spotlight map[string][]string `toml:"spotlight"`
	File      map[string][]string `toml:"file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Inbox: InboxConfig{Path: "~/Notes/inbox"},
		Tools: ToolsConfig{Sed: "sed", MDLS: "mdls"},
		Keys: KeysConfig{
			Spotlight: map[string][]string{
				"title":   {"kMDItemDisplayName", "kMDItemTitle"},
				"tags":    {"kMDItemUserTags", "kMDItemKeywords"},
				"authors": {"kMDItemAuthors"},
			},
			File: map[string][]string{
				"source_url": {"path"},
				"created":    {"mtime"},
			},
		},
	}
}

// Load reads the config file and merges it over the defaults. A missing
// file is not an error; a malformed one is.
func Load() (*Config, error) {
	cfg := Default()

	path := Path()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var file Config
	if _, err := toml.Decode(string(data), &file); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if file.Inbox.Path != "" {
		cfg.Inbox.Path = file.Inbox.Path
	}
	if file.Tools.Sed != "" {
		cfg.Tools.Sed = file.Tools.Sed
	}
	if file.Tools.MDLS != "" {
		cfg.Tools.MDLS = file.Tools.MDLS
	}
	if file.Keys.Spotlight != nil {
		cfg.Keys.Spotlight = file.Keys.Spotlight
	}
	if file.Keys.File != nil {
		cfg.Keys.File = file.Keys.File
	}
	return cfg, nil
}

// Path returns the config file location after applying overrides.
func Path() string {
	if Override != "" {
		return Override
	}
	if env := os.Getenv("NOTEGATE_CONFIG"); env != "" {
		return env
	}
	return filepath.Join(homeDir(), ".config", "notegate", "config.toml")
}

// InboxPath returns the inbox directory with a leading ~ expanded.
func (c *Config) InboxPath() string {
	return ExpandHome(c.Inbox.Path)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path == "~" {
		return homeDir()
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(homeDir(), path[2:])
	}
	return path
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
