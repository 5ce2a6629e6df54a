package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration loaded from file/env.
type Config struct {
	StorePath       string     `json:"storePath" yaml:"storePath"`
	KeepInMemory    bool       `json:"keepInMemory" yaml:"keepInMemory"`
	LegacyScanOrder bool       `json:"legacyScanOrder" yaml:"legacyScanOrder"`
	Thresholds      Thresholds `json:"thresholds" yaml:"thresholds"`
	LogLevel        string     `json:"logLevel" yaml:"logLevel"`
	LogFormat       string     `json:"logFormat" yaml:"logFormat"`
}

// Thresholds captures the buffer and file tier sizing.
type Thresholds struct {
	MaxBufferSize     int `json:"maxBufferSize" yaml:"maxBufferSize"`
	ReleaseBufferSize int `json:"releaseBufferSize" yaml:"releaseBufferSize"`
	MaxFileSize       int `json:"maxFileSize" yaml:"maxFileSize"`
	ReleaseFileSize   int `json:"releaseFileSize" yaml:"releaseFileSize"`
}

// Default returns built-in defaults.
func Default() Config {
	return Config{
		StorePath:    DefaultStorePath(),
		KeepInMemory: true,
		Thresholds: Thresholds{
			MaxBufferSize:     1000,
			ReleaseBufferSize: 0,
			MaxFileSize:       10000,
			ReleaseFileSize:   0,
		},
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Load reads configuration from a JSON or YAML file (by extension). If path
// is empty, returns defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config %q: %w", path, err)
		}
	default:
		if err := json.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config %q: %w", path, err)
		}
	}
	return cfg, nil
}
