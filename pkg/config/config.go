// Package config loads the txscope CLI's YAML configuration file: where
// the fixture database lives, default logging options, and the address
// the serve subcommand's health/metrics server binds to. The CLI's
// subcommands take these settings from their own flags; none of them
// calls Load.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cuemby/txscope/pkg/log"
)

// Config is the top-level shape of a txscope config file.
type Config struct {
	DataDir string        `yaml:"dataDir"`
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// LoggingConfig controls the global logger (see log.Config).
type LoggingConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// MetricsConfig holds the listen address for the metrics/health server.
type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		DataDir: "./txscope-data",
		Logging: LoggingConfig{Level: "info", JSON: false},
		Metrics: MetricsConfig{Addr: "127.0.0.1:9090"},
	}
}

// Load reads and parses a YAML config file, filling in defaults for any
// field the file leaves zero-valued.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if cfg.DataDir == "" {
		cfg.DataDir = Default().DataDir
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = Default().Logging.Level
	}
	if cfg.Metrics.Addr == "" {
		cfg.Metrics.Addr = Default().Metrics.Addr
	}

	return cfg, nil
}

// LogConfig converts the config file's logging section into a log.Config
// ready for log.Init.
func (c *Config) LogConfig() log.Config {
	return log.Config{
		Level:      log.Level(c.Logging.Level),
		JSONOutput: c.Logging.JSON,
	}
}
