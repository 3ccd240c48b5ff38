package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDt       = 0.01
	DefaultDuration = 10.0
	DefaultSamples  = 20
	DefaultLambda   = -1.0
	DefaultOmega    = 1.0
)

type Config struct {
	System   string  `yaml:"system"`
	Scheme   string  `yaml:"scheme"`
	Dt       float64 `yaml:"dt"`
	Duration float64 `yaml:"duration"`
	// Samples is the number of dense-output evaluations per step interval.
	Samples   int          `yaml:"samples"`
	InitState []float64    `yaml:"init_state"`
	Params    SystemParams `yaml:"params"`
}

type SystemParams struct {
	Lambda float64 `yaml:"lambda"` // exponential growth/decay rate
	Omega  float64 `yaml:"omega"`  // oscillator angular frequency
}

func DefaultConfig() *Config {
	return &Config{
		System:   "exponential",
		Scheme:   "dopri5",
		Dt:       DefaultDt,
		Duration: DefaultDuration,
		Samples:  DefaultSamples,
		Params: SystemParams{
			Lambda: DefaultLambda,
			Omega:  DefaultOmega,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", c.Dt)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %f", c.Duration)
	}
	if c.Samples < 2 {
		return fmt.Errorf("samples must be at least 2, got %d", c.Samples)
	}
	return nil
}

// GetInitState supplies per-system defaults when init_state is omitted.
func (c *Config) GetInitState() []float64 {
	if len(c.InitState) > 0 {
		return c.InitState
	}
	switch c.System {
	case "oscillator":
		return []float64{1.0, 0.0}
	case "lorenz":
		return []float64{1.0, 1.0, 1.0}
	default:
		return []float64{1.0}
	}
}
