package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the settings read from the optional TOML config file.
// Command-line flags override anything set here.
type Config struct {
	DBPath      string `toml:"db_path"`
	LogLevel    string `toml:"log_level"`
	LogFile     string `toml:"log_file"`
	LogToStdout bool   `toml:"log_to_stdout"`
	LogJSON     bool   `toml:"log_json"`
}

func Default() Config {
	return Config{
		LogLevel:    "warn",
		LogToStdout: true,
	}
}

// Load reads the config file at path. A missing file is not an error; the
// defaults apply.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return cfg, nil
}
