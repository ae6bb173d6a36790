// Package config holds the run configuration of the segmap command line
// tool. Everything has a sensible default so a configuration file is
// optional.
package config

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"segmap/detect"
)

// Config is the yaml-backed tool configuration.
type Config struct {
	// OutputDir receives the exported JSON files.
	OutputDir string `yaml:"output_dir"`

	// DetectPages bounds how many leading pages format detection reads.
	DetectPages int `yaml:"detect_pages"`

	// Convention forces a table convention instead of detecting one.
	// Empty means detect.
	Convention string `yaml:"convention"`

	// LogLevel is one of none, normal, debug.
	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		OutputDir:   "export",
		DetectPages: detect.DefaultPages,
		LogLevel:    "normal",
	}
}

// Load reads the yaml configuration at path on top of the defaults. An
// empty path yields the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read configuration: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse configuration %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("configuration %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch detect.Convention(c.Convention) {
	case "", detect.Faurecia, detect.VDA4932:
	default:
		return fmt.Errorf("unknown convention %q", c.Convention)
	}
	switch c.LogLevel {
	case "none", "normal", "debug":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	if c.DetectPages < 1 {
		return fmt.Errorf("detect_pages must be positive, got %d", c.DetectPages)
	}
	return nil
}
