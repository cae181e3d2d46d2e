package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

// DefaultPath is read when MCFS_CONFIG is unset. It may be absent.
const DefaultPath = "mcfs.toml"

type Config struct {
	Logging   LoggingConfig   `toml:"logging"`
	Demo      DemoConfig      `toml:"demo"`
	Census    CensusConfig    `toml:"census"`
	Scripting ScriptingConfig `toml:"scripting"`
}

type LoggingConfig struct {
	Level  string `toml:"level" env:"MCFS_LOG_LEVEL"`
	Format string `toml:"format" env:"MCFS_LOG_FORMAT"` // "json" or "console"
}

type DemoConfig struct {
	DefaultWorld string `toml:"default_world" env:"MCFS_DEFAULT_WORLD"` // empty = player's world
	PatternFile  string `toml:"pattern_file" env:"MCFS_PATTERN_FILE"`   // empty = built-in pillar
	NearestLimit int    `toml:"nearest_limit"`
}

type CensusConfig struct {
	DB string `toml:"db" env:"MCFS_CENSUS_DB"` // empty = don't record
}

type ScriptingConfig struct {
	Dir string `toml:"dir" env:"MCFS_SCRIPTS_DIR"`
}

// Load reads the TOML file at path over the defaults, then applies
// environment overrides. A missing file is only an error when required.
func Load(path string, required bool) (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !required:
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// FromEnv loads the file named by MCFS_CONFIG, or DefaultPath if unset.
func FromEnv() (*Config, error) {
	if p := os.Getenv("MCFS_CONFIG"); p != "" {
		return Load(p, true)
	}
	return Load(DefaultPath, false)
}

func defaults() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
		Demo: DemoConfig{
			NearestLimit: 5,
		},
		Scripting: ScriptingConfig{
			Dir: "scripts",
		},
	}
}
