package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config represents the top-level configuration for the playlake demo
// pipeline.
type Config struct {
	Sink      SinkConfig      `koanf:"sink"`
	Generator GeneratorConfig `koanf:"generator"`
	Metrics   MetricsConfig   `koanf:"metrics"`
}

// SinkConfig selects where admitted records go.
type SinkConfig struct {
	Type string `koanf:"type"` // "memory" or "file"
	Path string `koanf:"path"` // base directory for the file sink
}

// GeneratorConfig holds the synthetic traffic settings.
type GeneratorConfig struct {
	Count int `koanf:"count"`
}

// MetricsConfig holds the Prometheus exposition settings.
type MetricsConfig struct {
	Enabled bool   `koanf:"enabled"`
	Addr    string `koanf:"addr"`
}

// Load loads the configuration from the given file path and environment
// variables.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	defaults := map[string]interface{}{
		"sink.type":       "file",
		"sink.path":       "./data",
		"generator.count": 1000,
		"metrics.enabled": false,
		"metrics.addr":    "127.0.0.1:9091",
	}
	for key, value := range defaults {
		k.Set(key, value)
	}

	// 2. Load from file
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	// 3. Load from Environment Variables
	// PLAYLAKE_SINK__PATH=/tmp/lake overrides sink.path
	if err := k.Load(env.Provider("PLAYLAKE_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(
			strings.TrimPrefix(s, "PLAYLAKE_")), "__", ".", -1)
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Sink.Type {
	case "memory", "file":
	default:
		return fmt.Errorf("unknown sink type %q", c.Sink.Type)
	}
	if c.Sink.Type == "file" && c.Sink.Path == "" {
		return fmt.Errorf("sink.path must be set for the file sink")
	}
	if c.Generator.Count < 0 {
		return fmt.Errorf("generator.count must not be negative")
	}
	return nil
}
