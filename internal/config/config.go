// Package config loads and saves the yaml run configuration of the
// coachgo CLI.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDt       = 0.01
	DefaultDuration = 10.0
	DefaultChart    = "term"
	DefaultStyle    = "-"
	DefaultWidth    = 10.0
	DefaultHeight   = 6.0
)

type Config struct {
	Scenario string  `yaml:"scenario"`
	Dt       float64 `yaml:"dt"`
	Duration float64 `yaml:"duration"`
	Height   float64 `yaml:"height"`
	Velocity float64 `yaml:"velocity"`

	Plot PlotConfig `yaml:"plot"`
}

type PlotConfig struct {
	Vars    []string `yaml:"vars"`
	Against string   `yaml:"against"`
	Chart   string   `yaml:"chart"`
	Out     string   `yaml:"out"`
	Title   string   `yaml:"title"`
	XLabel  string   `yaml:"xlabel"`
	YLabel  string   `yaml:"ylabel"`
	Style   string   `yaml:"style"`
	NoGrid  bool     `yaml:"no_grid"`
	NoBlock bool     `yaml:"no_block"`
	Width   float64  `yaml:"width"`
	Height  float64  `yaml:"height"`
}

func DefaultConfig() *Config {
	return &Config{
		Scenario: "freefall",
		Dt:       DefaultDt,
		Duration: DefaultDuration,
		Plot: PlotConfig{
			Against: "step",
			Chart:   DefaultChart,
			Style:   DefaultStyle,
			Width:   DefaultWidth,
			Height:  DefaultHeight,
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
