package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultAgents = 100
	DefaultWidth  = 10
	DefaultHeight = 10
	DefaultSteps  = 100
	DefaultFPS    = 30
)

type Config struct {
	Agents int    `yaml:"agents"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Steps  int    `yaml:"steps"`
	Seed   int64  `yaml:"seed"`
	FPS    int    `yaml:"fps"`
	Theme  string `yaml:"theme"`
}

func DefaultConfig() *Config {
	return &Config{
		Agents: DefaultAgents,
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Steps:  DefaultSteps,
		FPS:    DefaultFPS,
		Theme:  "ocean",
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

// Validate checks every field the parameter schema covers.
func (c *Config) Validate() error {
	checks := []struct {
		name  string
		value float64
	}{
		{"agents", float64(c.Agents)},
		{"width", float64(c.Width)},
		{"height", float64(c.Height)},
		{"steps", float64(c.Steps)},
	}
	for _, chk := range checks {
		p, ok := ParamByName(chk.name)
		if !ok {
			continue
		}
		if chk.value < p.Min || chk.value > p.Max {
			return fmt.Errorf("config: %s = %.0f outside [%g, %g]", chk.name, chk.value, p.Min, p.Max)
		}
	}
	return nil
}
