package config

import (
	"fmt"
	"os"
	"time"

	"github.com/san-kum/sortlab/internal/dataset"
	"github.com/san-kum/sortlab/internal/sorting"
	"gopkg.in/yaml.v3"
)

const (
	DefaultBars     = 30
	DefaultInterval = 250
	DefaultWidth    = 72
	DefaultHeight   = 12
	DefaultTheme    = "cyberpunk"

	MinInterval = 10
	MaxInterval = 5000
	MinBars     = 2
	MaxBars     = 500
)

type Config struct {
	// Interval is the step period in milliseconds.
	Interval      int         `yaml:"interval"`
	Bars          int         `yaml:"bars"`
	Shape         string      `yaml:"shape"`
	RunOffScreen  bool        `yaml:"run_off_screen"`
	RainbowColors bool        `yaml:"rainbow_colors"`
	Seed          int64       `yaml:"seed"`
	Algorithms    []string    `yaml:"algorithms"`
	Theme         string      `yaml:"theme"`
	Chart         ChartConfig `yaml:"chart"`
	LogLevel      string      `yaml:"log_level"`
}

type ChartConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

func DefaultConfig() *Config {
	return &Config{
		Interval:   DefaultInterval,
		Bars:       DefaultBars,
		Shape:      string(dataset.Random),
		Algorithms: sorting.NewRegistry().Names(),
		Theme:      DefaultTheme,
		Chart: ChartConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
		},
		LogLevel: "info",
	}
}

func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads path on top of a copy of base, so keys missing from the
// file keep base's values.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := *base
	cfg.Algorithms = append([]string(nil), base.Algorithms...)
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) IntervalDuration() time.Duration {
	return time.Duration(c.Interval) * time.Millisecond
}

// Normalize clamps out-of-range values and drops what it cannot use. The
// returned warnings describe every adjustment; none of them is fatal.
func (c *Config) Normalize() []string {
	var warnings []string

	if c.Interval < MinInterval || c.Interval > MaxInterval {
		clamped := min(max(c.Interval, MinInterval), MaxInterval)
		warnings = append(warnings, fmt.Sprintf("interval %dms clamped to %dms", c.Interval, clamped))
		c.Interval = clamped
	}
	if c.Bars < MinBars || c.Bars > MaxBars {
		clamped := min(max(c.Bars, MinBars), MaxBars)
		warnings = append(warnings, fmt.Sprintf("bars %d clamped to %d", c.Bars, clamped))
		c.Bars = clamped
	}

	shape, err := dataset.ParseShape(c.Shape)
	if err != nil {
		warnings = append(warnings, fmt.Sprintf("unknown shape %q, using random", c.Shape))
		shape = dataset.Random
	}
	c.Shape = string(shape)

	reg := sorting.NewRegistry()
	kept := c.Algorithms[:0]
	seen := make(map[string]bool)
	for _, name := range c.Algorithms {
		switch {
		case !reg.Has(name):
			warnings = append(warnings, fmt.Sprintf("unknown algorithm %q ignored", name))
		case seen[name]:
			warnings = append(warnings, fmt.Sprintf("duplicate algorithm %q ignored", name))
		default:
			seen[name] = true
			kept = append(kept, name)
		}
	}
	c.Algorithms = kept
	if len(c.Algorithms) == 0 {
		c.Algorithms = reg.Names()
	}

	if c.Chart.Width <= 0 {
		c.Chart.Width = DefaultWidth
	}
	if c.Chart.Height <= 0 {
		c.Chart.Height = DefaultHeight
	}
	if c.Theme == "" {
		c.Theme = DefaultTheme
	}
	return warnings
}
