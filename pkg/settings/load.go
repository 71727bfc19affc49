package settings

import (
	"os"

	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
)

// Default returns a Config with sensible defaults for local runs.
func Default() *Config {
	return &Config{
		Server: Server{
			Mode: "debug",
			Host: "0.0.0.0",
			Port: 8080,
		},
		Logger: Logger{
			LogLevel: "info",
		},
		Index: Index{
			MinX:     0,
			MinY:     0,
			MaxX:     32_767,
			MaxY:     32_767,
			Capacity: 16,
		},
	}
}

// Load reads a YAML config file on top of the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config %s", path)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config %s", path)
	}
	if cfg.Index.Capacity < 1 {
		return nil, errors.Errorf("index capacity must be at least 1, got %d", cfg.Index.Capacity)
	}
	return cfg, nil
}
