package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultScene       = "dipole"
	DefaultDt          = 1.0 / 60.0
	DefaultSteps       = 600
	DefaultSize        = 800.0
	DefaultBound       = 10000.0
	DefaultGridSpacing = 20.0
	DefaultDataDir     = ".fieldsim"
)

// Config is the full run configuration. Zero values fall back to defaults at
// validation time so partial YAML files stay usable.
type Config struct {
	Scene       string  `yaml:"scene"`
	Dt          float64 `yaml:"dt"`
	Steps       int     `yaml:"steps"`
	Seed        int64   `yaml:"seed"`
	Size        float64 `yaml:"size"`         // scene layout side length
	Bound       float64 `yaml:"bound"`        // symmetric world extent
	GridSpacing float64 `yaml:"grid_spacing"` // field-marker grid density
	TimeScale   float64 `yaml:"time_scale"`   // 0 = per-preset default
	DataDir     string  `yaml:"data_dir"`
}

func DefaultConfig() *Config {
	return &Config{
		Scene:       DefaultScene,
		Dt:          DefaultDt,
		Steps:       DefaultSteps,
		Size:        DefaultSize,
		Bound:       DefaultBound,
		GridSpacing: DefaultGridSpacing,
		DataDir:     DefaultDataDir,
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

// Validate rejects values the simulation cannot run with and fills absent
// ones with defaults.
func (c *Config) Validate() error {
	if c.Dt < 0 {
		return fmt.Errorf("dt must be positive, got %g", c.Dt)
	}
	if c.Dt == 0 {
		c.Dt = DefaultDt
	}
	if c.Steps < 0 {
		return fmt.Errorf("steps must be non-negative, got %d", c.Steps)
	}
	if c.Steps == 0 {
		c.Steps = DefaultSteps
	}
	if c.Size < 0 {
		return fmt.Errorf("size must be positive, got %g", c.Size)
	}
	if c.Size == 0 {
		c.Size = DefaultSize
	}
	if c.Bound < 0 {
		return fmt.Errorf("bound must be positive, got %g", c.Bound)
	}
	if c.Bound == 0 {
		c.Bound = DefaultBound
	}
	if c.TimeScale < 0 {
		return fmt.Errorf("time scale must be positive, got %g", c.TimeScale)
	}
	if c.GridSpacing < 0 {
		return fmt.Errorf("grid spacing must be positive, got %g", c.GridSpacing)
	}
	if c.GridSpacing == 0 {
		c.GridSpacing = DefaultGridSpacing
	}
	if c.Scene == "" {
		c.Scene = DefaultScene
	}
	if c.DataDir == "" {
		c.DataDir = DefaultDataDir
	}
	return nil
}
