// Package config loads roadmap's user configuration.
//
// Settings come from three layers, later ones winning: built-in defaults,
// the TOML file at $XDG_CONFIG_HOME/roadmap/config.toml, and ROADMAP_*
// environment variables (a .env file in the working directory is loaded
// into the environment first). Command-line flags override all of them.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const appName = "roadmap"

// Environment variables read by Load.
const (
	EnvCacheBackend = "ROADMAP_CACHE_BACKEND"
	EnvRedisAddr    = "ROADMAP_REDIS_ADDR"
	EnvMongoURI     = "ROADMAP_MONGO_URI"
	EnvTheme        = "ROADMAP_THEME"
	EnvListen       = "ROADMAP_LISTEN"
	EnvRadius       = "ROADMAP_RADIUS"
)

// Config holds roadmap configuration.
type Config struct {
	Render RenderConfig `toml:"render"`
	Cache  CacheConfig  `toml:"cache"`
	Serve  ServeConfig  `toml:"serve"`
}

// RenderConfig sets rendering defaults.
type RenderConfig struct {
	Theme  string  `toml:"theme"` // "light", "dark"
	Radius float64 `toml:"radius"`
	Margin float64 `toml:"margin"`
}

// CacheConfig selects the layout/artifact cache backend.
type CacheConfig struct {
	Backend         string `toml:"backend"` // "file", "redis", "mongo", "none"
	Dir             string `toml:"dir"`
	RedisAddr       string `toml:"redis_addr"`
	MongoURI        string `toml:"mongo_uri"`
	MongoDatabase   string `toml:"mongo_database"`
	MongoCollection string `toml:"mongo_collection"`
}

// ServeConfig controls the HTTP server.
type ServeConfig struct {
	Listen string `toml:"listen"`
	Watch  bool   `toml:"watch"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Render: RenderConfig{Theme: "light", Radius: 20, Margin: 40},
		Cache:  CacheConfig{Backend: "file"},
		Serve:  ServeConfig{Listen: "127.0.0.1:8080"},
	}
}

// Dir returns the roadmap config directory path.
func Dir() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, appName)
}

// Path returns the config file path.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the default config file and applies environment overrides.
// A missing file is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()
	cfg, err := LoadFile(Path())
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads path over the defaults. Environment variables are not
// consulted.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from the ROADMAP_* variables returned by getenv.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv(EnvCacheBackend); v != "" {
		c.Cache.Backend = v
	}
	if v := getenv(EnvRedisAddr); v != "" {
		c.Cache.RedisAddr = v
	}
	if v := getenv(EnvMongoURI); v != "" {
		c.Cache.MongoURI = v
	}
	if v := getenv(EnvTheme); v != "" {
		c.Render.Theme = v
	}
	if v := getenv(EnvListen); v != "" {
		c.Serve.Listen = v
	}
	if v := getenv(EnvRadius); v != "" {
		r, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvRadius, err)
		}
		c.Render.Radius = r
	}
	return nil
}

// Save writes cfg to path, creating parent directories.
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}
