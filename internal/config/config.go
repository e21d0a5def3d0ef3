package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up when none is given.
const DefaultPath = "cornerstones.yaml"

type Config struct {
	Source string `yaml:"source"`
	Cache  bool   `yaml:"cache"`
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	Progress struct {
		Backend string `yaml:"backend"` // json or bolt
		Path    string `yaml:"path"`    // empty picks DefaultProgressPath
	} `yaml:"progress"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

// DefaultProgressPath returns the progress file used by backend when no path
// is configured.
func DefaultProgressPath(backend string) string {
	if backend == "bolt" {
		return ".cornerstones/progress.db"
	}
	return ".cornerstones/progress.json"
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{
		Source: "cornerstones.md",
		Cache:  true,
	}
	cfg.Server.Addr = ":8080"
	cfg.Progress.Backend = "json"
	cfg.Log.Level = "info"
	return cfg
}

// Load reads the YAML file at path on top of Default, then applies
// CORNERSTONES_* environment variables (a .env file is loaded first if
// present). A missing file is not an error.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	file, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(file, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if v := os.Getenv("CORNERSTONES_SOURCE"); v != "" {
		cfg.Source = v
	}
	if v := os.Getenv("CORNERSTONES_CACHE"); v != "" {
		cache, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid CORNERSTONES_CACHE %q: %w", v, err)
		}
		cfg.Cache = cache
	}
	if v := os.Getenv("CORNERSTONES_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("CORNERSTONES_PROGRESS_BACKEND"); v != "" {
		cfg.Progress.Backend = v
	}
	if v := os.Getenv("CORNERSTONES_PROGRESS_PATH"); v != "" {
		cfg.Progress.Path = v
	}
	if v := os.Getenv("CORNERSTONES_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}

	if cfg.Progress.Path == "" {
		cfg.Progress.Path = DefaultProgressPath(cfg.Progress.Backend)
	}

	return cfg, nil
}
