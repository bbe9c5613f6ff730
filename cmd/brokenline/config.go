package main

import (
	"fmt"
	"os"

	"github.com/Grenka054/Optimization-Methods/functions"
	"github.com/Grenka054/Optimization-Methods/univariate"
	"gopkg.in/yaml.v3"
)

// Config describes one broken-line search.
type Config struct {
	Function string  `yaml:"function"`
	Sigma    float64 `yaml:"sigma"`

	// Interval and Lipschitz constant override the catalog values when set
	Lower     *float64 `yaml:"lower,omitempty"`
	Upper     *float64 `yaml:"upper,omitempty"`
	Lipschitz *float64 `yaml:"lipschitz,omitempty"`

	MaxIterations int    `yaml:"max_iterations"`
	Samples       int    `yaml:"samples"`
	Debug         bool   `yaml:"debug"`
	Plot          string `yaml:"plot"`   // output image, empty for none
	Frames        string `yaml:"frames"` // directory for per-iteration frames, empty for none
}

// DefaultConfig returns the cubic 0.1(x^3 - x) + 1 on [-1, 1] with
// sigma 0.015 and L 0.2.
func DefaultConfig() *Config {
	return &Config{
		Function:      "cubic",
		Sigma:         0.015,
		MaxIterations: univariate.DefaultMaximumIterations,
		Samples:       1000,
	}
}

// LoadConfig reads a YAML config on top of the defaults
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// Problem resolves the configured function from the catalog and applies
// the interval and Lipschitz overrides
func (c *Config) Problem() (functions.Problem, error) {
	p, ok := functions.Lookup(c.Function)
	if !ok {
		return functions.Problem{}, fmt.Errorf("unknown function %q", c.Function)
	}
	if c.Lower != nil {
		p.Lower = *c.Lower
	}
	if c.Upper != nil {
		p.Upper = *c.Upper
	}
	if c.Lipschitz != nil {
		p.Lipschitz = *c.Lipschitz
	}
	return p, nil
}
