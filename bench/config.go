package bench

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/viant/phpjson/encoding/modern"
	"github.com/viant/phpjson/fixture"
)

// Config controls a benchmark run.
type Config struct {
	Iterations int              `yaml:"iterations"`
	Seed       uint64           `yaml:"seed"`
	Backends   []modern.Backend `yaml:"backends"`
	Cases      []string         `yaml:"cases"`
	Strict     bool             `yaml:"strict"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Iterations: 1000,
		Seed:       1,
		Backends:   []modern.Backend{modern.BackendJsoniter},
		Cases:      []string{"ecommerce"},
	}
}

// LoadConfig reads a YAML file over the defaults. An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks iterations, backends and case names.
func (c *Config) Validate() error {
	if c.Iterations <= 0 {
		return fmt.Errorf("invalid config: %w: %d", ErrIterations, c.Iterations)
	}
	for _, backend := range c.Backends {
		if _, err := modern.ParseBackend(string(backend)); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
	}
	known := map[string]bool{}
	for _, name := range fixture.Names() {
		known[name] = true
	}
	for _, name := range c.Cases {
		if !known[name] {
			return fmt.Errorf("invalid config: unknown case %q", name)
		}
	}
	return nil
}
