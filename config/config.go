// Package config loads engine settings from a TOML file, falling back
// to built-in defaults for anything the file does not set.
package config

import (
	"github.com/BurntSushi/toml"
)

// Config holds the settings read from the TOML file. The cmd entrypoint
// applies only LogLevel; HashSizeMB and LogFile are loaded but not used.
type Config struct {
	HashSizeMB int    `toml:"hash_size_mb"`
	LogLevel   string `toml:"log_level"`
	LogFile    string `toml:"log_file"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{
		HashSizeMB: 64,
		LogLevel:   "INFO",
		LogFile:    "",
	}
}

// Load reads path and overlays it onto Default(). An empty path is not
// an error: it just returns the defaults. A path naming a file that
// cannot be read or decoded is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
