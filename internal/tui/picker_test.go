package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/sortlab/internal/config"
)

func send(p Picker, keys ...string) Picker {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := p.Update(msg)
		p = next.(Picker)
	}
	return p
}

func TestPickerToggleAlgorithms(t *testing.T) {
	p := NewPicker(config.DefaultConfig())
	p = send(p, "enter", "down", "enter")

	cfg := p.Config()
	for _, name := range cfg.Algorithms {
		if name == "bubble" || name == "insertion" {
			t.Errorf("%s should be disabled", name)
		}
	}
	if len(cfg.Algorithms) != 6 {
		t.Errorf("expected 6 algorithms, got %v", cfg.Algorithms)
	}

	p = send(p, "a")
	if len(p.Config().Algorithms) != 8 {
		t.Error("a should enable every algorithm when some are off")
	}
	p = send(p, "a")
	if len(p.Config().Algorithms) != 0 {
		t.Error("a should disable every algorithm when all are on")
	}
}

func TestPickerSettings(t *testing.T) {
	base := config.DefaultConfig()
	p := NewPicker(base)
	// cursor onto "bars", past the eight algorithms and the preset row
	for i := 0; i < 9; i++ {
		p = send(p, "down")
	}
	p = send(p, "right", "right")
	if p.Config().Bars != 40 {
		t.Errorf("expected 40 bars, got %d", p.Config().Bars)
	}
	if base.Bars != 30 {
		t.Error("picker must not modify the caller's config")
	}

	p = send(p, "down", "left")
	if p.Config().Interval != 200 {
		t.Errorf("expected 200ms, got %d", p.Config().Interval)
	}

	p = send(p, "down", "right")
	if p.Config().Shape != "reversed" {
		t.Errorf("expected reversed, got %s", p.Config().Shape)
	}
}

func TestPickerPreset(t *testing.T) {
	p := NewPicker(config.DefaultConfig())
	for i := 0; i < 8; i++ {
		p = send(p, "down")
	}
	// presets are sorted: adaptive, chaos, large, small, worst
	p = send(p, "right", "right")
	cfg := p.Config()
	if len(cfg.Algorithms) != 1 || cfg.Algorithms[0] != "bogo" {
		t.Errorf("chaos preset should select bogo only, got %v", cfg.Algorithms)
	}
	if !strings.Contains(p.View(), "chaos") {
		t.Error("view should name the active preset")
	}
}

func TestPickerStart(t *testing.T) {
	p := NewPicker(config.DefaultConfig())
	p = send(p, "s")
	if !p.Started() {
		t.Error("s should start")
	}

	p = NewPicker(config.DefaultConfig())
	p = send(p, "a", "s")
	if p.Started() {
		t.Error("cannot start with no algorithms")
	}
	p = send(p, "q")
	if p.Started() {
		t.Error("q should not count as a start")
	}
}
