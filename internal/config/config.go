// Package config loads and exposes the discord-echo configuration (TOML).
package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// DefaultConfigPath is used when no config path is given.
const DefaultConfigPath = "config.toml"

// Config is the root configuration loaded from TOML.
type Config struct {
	Log     LogConfig     `toml:"log"`
	Discord DiscordConfig `toml:"discord"`
}

// LogConfig holds logging level and format (e.g. level=info, format=text).
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// DiscordConfig holds the bot token, the optional platform instance id and
// the command prefix list.
type DiscordConfig struct {
	Token  string   `toml:"token"`
	ID     string   `toml:"id"`
	Prefix []string `toml:"prefix"`
}

// Load reads and parses the TOML config file at path and applies default
// values for missing fields. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Config{
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}

	if path == "" {
		path = DefaultConfigPath
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
