// Package config provides configuration for the cochain bot.
//
// The config file carries presentation knobs (command prefix, presence
// text, flavor seed); the Discord token deliberately never lives in it and
// comes only from the environment.
//
// Config file locations (priority order):
//  1. $COCHAIN_CONFIG
//  2. ./cochain.yaml
//  3. ~/.config/cochain/config.yaml
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrNoToken indicates DISCORD_TOKEN is unset or empty.
var ErrNoToken = errors.New("config: DISCORD_TOKEN not set; create a .env file or export it")

// Config holds the bot's tunable settings.
type Config struct {
	// Prefix introduces every command; defaults to "!".
	Prefix string `yaml:"prefix"`

	// Presence is the activity text shown while the bot is online.
	Presence string `yaml:"presence"`

	// FlavorSeed seeds the mood picker; 0 means seed from the clock at
	// startup so mood selection varies between runs.
	FlavorSeed int64 `yaml:"flavor_seed"`
}

// Load finds and loads the config file, or returns defaults if none found.
// The second return is the path actually used ("" for defaults).
func Load() (*Config, string, error) {
	path := FindConfigPath()
	if path == "" {
		return DefaultConfig(), "", nil
	}

	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path.
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()

	return &cfg, path, nil
}

// FindConfigPath returns the first existing config path in priority order,
// or "" when none exists.
func FindConfigPath() string {
	if p := os.Getenv("COCHAIN_CONFIG"); p != "" {
		return p
	}
	candidates := []string{"./cochain.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".config", "cochain", "config.yaml"))
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}

// DefaultConfig returns sensible defaults for a fresh installation.
func DefaultConfig() *Config {
	return &Config{
		Prefix:   "!",
		Presence: "Cohomology Magic ✨",
	}
}

// Token returns the Discord bot token from the environment.
func Token() (string, error) {
	tok := os.Getenv("DISCORD_TOKEN")
	if tok == "" {
		return "", ErrNoToken
	}

	return tok, nil
}

// applyDefaults fills in missing values with defaults.
func (c *Config) applyDefaults() {
	if c.Prefix == "" {
		c.Prefix = "!"
	}
	if c.Presence == "" {
		c.Presence = "Cohomology Magic ✨"
	}
}
