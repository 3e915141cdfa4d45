// Package config handles loading and saving user configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds user defaults applied when flags are absent.
type Config struct {
	// Method is the default source romanization ("py" or "wg").
	Method string `yaml:"method"`
	// Target is the default conversion target.
	Target string `yaml:"target"`
	// CacheSize bounds the engine caches; zero keeps the built-in default.
	CacheSize int `yaml:"cache_size"`
	// Crumbs enables the per-syllable trace on stderr.
	Crumbs bool `yaml:"crumbs"`
	// Schemes maps method tags to custom scheme files, overriding the
	// built-in syllabaries.
	Schemes map[string]string `yaml:"schemes"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{Method: "py", Target: "wg"}
}

// Load reads config.yaml from a directory. A missing file is not an
// error; defaults are returned.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, "config.yaml")
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration to config.yaml in a directory.
func Save(dir string, cfg *Config) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), out, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// SchemePath returns the custom scheme file configured for a method
// tag, or an empty string when the built-in syllabary applies.
func (c *Config) SchemePath(method string) string {
	if c.Schemes == nil {
		return ""
	}
	return c.Schemes[method]
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "romantools"), nil
}

// EnsureConfigDir creates the config directory if it doesn't exist.
func EnsureConfigDir() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}
