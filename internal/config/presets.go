package config

import "sort"

var Presets = map[string]*Config{
	"small": {
		Interval: 250, Bars: 12, Shape: "random",
	},
	"large": {
		Interval: 40, Bars: 120, Shape: "random", RunOffScreen: true,
	},
	"adaptive": {
		Interval: 150, Bars: 40, Shape: "mostly-ordered",
	},
	"worst": {
		Interval: 100, Bars: 40, Shape: "reversed",
	},
	"chaos": {
		Interval: 50, Bars: 6, Shape: "random", RainbowColors: true,
		Algorithms: []string{"bogo"},
	},
}

// GetPreset returns a copy of the named preset layered over the defaults,
// or nil when no such preset exists.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Interval = p.Interval
	cfg.Bars = p.Bars
	cfg.Shape = p.Shape
	cfg.RunOffScreen = p.RunOffScreen
	cfg.RainbowColors = p.RainbowColors
	if len(p.Algorithms) > 0 {
		cfg.Algorithms = append([]string(nil), p.Algorithms...)
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
