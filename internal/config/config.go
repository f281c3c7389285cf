// Package config holds the run configuration for the range-remapper CLI.
//
// Configuration is optional YAML; every field has a default:
//
//	log:
//	  level: info        # debug | info | warn | error
//	  encoding: console  # console | json
//	execution:
//	  parallelism: 1     # goroutines per stage fan-out
//	  coalesce: false    # merge intervals between stages
//	  search_limit: 100000000
//	input:
//	  format: auto       # auto | text | yaml
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultSearchLimit bounds the brute-force inverse search when unset.
const DefaultSearchLimit uint64 = 100_000_000

type Config struct {
	Log       LogConfig       `yaml:"log"`
	Execution ExecutionConfig `yaml:"execution"`
	Input     InputConfig     `yaml:"input"`
}

type LogConfig struct {
	Level    string `yaml:"level"`
	Encoding string `yaml:"encoding"`
}

type ExecutionConfig struct {
	Parallelism int    `yaml:"parallelism"`
	Coalesce    bool   `yaml:"coalesce"`
	SearchLimit uint64 `yaml:"search_limit"`
}

type InputConfig struct {
	Format string `yaml:"format"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)

	return cfg
}

// LoadFile loads and parses a YAML config file from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Config, applies defaults and validates it.
func Parse(data []byte) (*Config, error) {
	var cfg Config

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	if cfg.Log.Encoding == "" {
		cfg.Log.Encoding = "console"
	}

	if cfg.Execution.Parallelism == 0 {
		cfg.Execution.Parallelism = 1
	}

	if cfg.Execution.SearchLimit == 0 {
		cfg.Execution.SearchLimit = DefaultSearchLimit
	}

	if cfg.Input.Format == "" {
		cfg.Input.Format = "auto"
	}
}

// Validate checks enumerated fields and ranges.
func (c *Config) Validate() error {
	switch c.Log.Encoding {
	case "console", "json":
	default:
		return fmt.Errorf("log.encoding: unsupported value %q", c.Log.Encoding)
	}

	if c.Execution.Parallelism < 1 {
		return fmt.Errorf("execution.parallelism: must be at least 1, got %d", c.Execution.Parallelism)
	}

	switch c.Input.Format {
	case "auto", "text", "yaml":
	default:
		return fmt.Errorf("input.format: unsupported value %q", c.Input.Format)
	}

	return nil
}
