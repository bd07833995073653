// Package config loads the notatimer CLI configuration from a YAML file.
//
// Backend-specific store options are kept as a free-form map in YAML and
// decoded with mapstructure once the backend is known, so each adapter owns
// its own option schema.
package config

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Store backends.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Config is the top-level CLI configuration.
type Config struct {
	LogLevel string        `yaml:"log_level"`
	Control  ControlConfig `yaml:"control"`
	Store    StoreConfig   `yaml:"store"`
}

// ControlConfig configures the HTTP control surface.
type ControlConfig struct {
	Addr string `yaml:"addr"`
}

// StoreConfig selects and configures the run-history backend.
type StoreConfig struct {
	Backend string         `yaml:"backend"`
	Options map[string]any `yaml:"options"`
}

// RedisOptions is the option schema for the redis backend.
type RedisOptions struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		LogLevel: "info",
		Control:  ControlConfig{Addr: ""},
		Store:    StoreConfig{Backend: BackendMemory},
	}
}

// Load reads the configuration from path. A missing file yields the defaults;
// a malformed file or unknown backend is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}

	switch cfg.Store.Backend {
	case "", BackendMemory, BackendRedis:
	default:
		return cfg, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
	if cfg.Store.Backend == "" {
		cfg.Store.Backend = BackendMemory
	}

	return cfg, nil
}

// RedisOptions decodes the backend options map for the redis backend.
func (s StoreConfig) RedisOptions() (RedisOptions, error) {
	opts := RedisOptions{
		Addr: "localhost:6379",
	}
	if s.Options == nil {
		return opts, nil
	}
	if err := mapstructure.Decode(s.Options, &opts); err != nil {
		return opts, fmt.Errorf("failed to decode redis options: %w", err)
	}
	return opts, nil
}
