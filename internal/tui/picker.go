package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/sortlab/internal/config"
	"github.com/san-kum/sortlab/internal/dataset"
	"github.com/san-kum/sortlab/internal/sorting"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	green   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)

var settingNames = []string{"preset", "bars", "interval", "shape", "rainbow", "off-screen"}

// Picker is the launcher menu: toggle algorithms, tune the run, then start.
type Picker struct {
	cfg     *config.Config
	names   []string
	enabled map[string]bool
	presets []string
	preset  int
	cursor  int
	started bool
}

func NewPicker(cfg *config.Config) Picker {
	names := sorting.NewRegistry().Names()
	enabled := make(map[string]bool, len(names))
	for _, n := range cfg.Algorithms {
		enabled[n] = true
	}
	c := *cfg
	return Picker{
		cfg:     &c,
		names:   names,
		enabled: enabled,
		presets: config.ListPresets(),
		preset:  -1,
	}
}

func (p Picker) Init() tea.Cmd { return nil }

func (p Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}
	rows := len(p.names) + len(settingNames)
	switch km.String() {
	case "q", "ctrl+c", "esc":
		return p, tea.Quit
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < rows-1 {
			p.cursor++
		}
	case "enter", " ":
		if p.cursor < len(p.names) {
			name := p.names[p.cursor]
			p.enabled[name] = !p.enabled[name]
		} else {
			p.adjust(1)
		}
	case "right", "l":
		p.adjust(1)
	case "left", "h":
		p.adjust(-1)
	case "a":
		all := len(p.selected()) < len(p.names)
		for _, n := range p.names {
			p.enabled[n] = all
		}
	case "s":
		if len(p.selected()) == 0 {
			return p, nil
		}
		p.started = true
		return p, tea.Quit
	}
	return p, nil
}

func (p *Picker) adjust(dir int) {
	if p.cursor < len(p.names) {
		return
	}
	switch settingNames[p.cursor-len(p.names)] {
	case "preset":
		p.preset = (p.preset + dir + len(p.presets)) % len(p.presets)
		p.applyPreset(p.presets[p.preset])
	case "bars":
		p.cfg.Bars = min(max(p.cfg.Bars+5*dir, config.MinBars), config.MaxBars)
	case "interval":
		p.cfg.Interval = min(max(p.cfg.Interval+50*dir, config.MinInterval), config.MaxInterval)
	case "shape":
		shapes := dataset.Shapes()
		i := 0
		for k, s := range shapes {
			if string(s) == p.cfg.Shape {
				i = k
			}
		}
		p.cfg.Shape = string(shapes[(i+dir+len(shapes))%len(shapes)])
	case "rainbow":
		p.cfg.RainbowColors = !p.cfg.RainbowColors
	case "off-screen":
		p.cfg.RunOffScreen = !p.cfg.RunOffScreen
	}
}

func (p *Picker) applyPreset(name string) {
	pc := config.GetPreset(name)
	p.cfg.Interval = pc.Interval
	p.cfg.Bars = pc.Bars
	p.cfg.Shape = pc.Shape
	p.cfg.RainbowColors = pc.RainbowColors
	p.cfg.RunOffScreen = pc.RunOffScreen
	for _, n := range p.names {
		p.enabled[n] = false
	}
	for _, n := range pc.Algorithms {
		p.enabled[n] = true
	}
}

func (p Picker) selected() []string {
	var out []string
	for _, n := range p.names {
		if p.enabled[n] {
			out = append(out, n)
		}
	}
	return out
}

// Config returns the chosen configuration.
func (p Picker) Config() *config.Config {
	c := *p.cfg
	c.Algorithms = p.selected()
	return &c
}

func (p Picker) Started() bool { return p.started }

func (p Picker) settingValue(name string) string {
	switch name {
	case "preset":
		if p.preset < 0 {
			return "custom"
		}
		return p.presets[p.preset]
	case "bars":
		return fmt.Sprintf("%d", p.cfg.Bars)
	case "interval":
		return fmt.Sprintf("%dms", p.cfg.Interval)
	case "shape":
		return p.cfg.Shape
	case "rainbow":
		return onOff(p.cfg.RainbowColors)
	case "off-screen":
		return onOff(p.cfg.RunOffScreen)
	}
	return ""
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func (p Picker) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("            " + cyan.Render("s o r t l a b") + "\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("\n")

	for i, name := range p.names {
		box := "[ ]"
		if p.enabled[name] {
			box = green.Render("[x]")
		}
		desc := sorting.Describe(name)
		if i == p.cursor {
			b.WriteString("      " + cyan.Render("▸ ") + box + " " + white.Render(fmt.Sprintf("%-11s", name)) + dim.Render(desc) + "\n")
		} else {
			b.WriteString("        " + box + " " + dim.Render(fmt.Sprintf("%-11s", name)) + dimmer.Render(desc) + "\n")
		}
	}

	b.WriteString("\n" + dimmer.Render("      "+strings.Repeat("─", 30)) + "\n\n")

	for i, name := range settingNames {
		val := fmt.Sprintf("%10s", p.settingValue(name))
		if len(p.names)+i == p.cursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-12s", name)) + magenta.Render(val) + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-12s", name)) + dim.Render(val) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select  space toggle  ←→ adjust  a all  s start  q quit") + "\n")

	return b.String()
}

// RunPicker shows the launcher and reports whether the user started a run.
func RunPicker(cfg *config.Config) (*config.Config, bool, error) {
	final, err := tea.NewProgram(NewPicker(cfg), tea.WithAltScreen()).Run()
	if err != nil {
		return nil, false, err
	}
	p := final.(Picker)
	return p.Config(), p.Started(), nil
}
