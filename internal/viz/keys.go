package viz

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Pause         key.Binding
	Random        key.Binding
	Reversed      key.Binding
	MostlyOrdered key.Binding
	MoreBars      key.Binding
	FewerBars     key.Binding
	Faster        key.Binding
	Slower        key.Binding
	Rainbow       key.Binding
	OffScreen     key.Binding
	Theme         key.Binding
	Export        key.Binding
	Up            key.Binding
	Down          key.Binding
	PageUp        key.Binding
	PageDown      key.Binding
	Help          key.Binding
	Quit          key.Binding
}

var keys = keyMap{
	Pause: key.NewBinding(
		key.WithKeys(" ", "p"),
		key.WithHelp("space", "pause"),
	),
	Random: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "random data"),
	),
	Reversed: key.NewBinding(
		key.WithKeys("v"),
		key.WithHelp("v", "reversed data"),
	),
	MostlyOrdered: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "mostly ordered"),
	),
	MoreBars: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "more bars"),
	),
	FewerBars: key.NewBinding(
		key.WithKeys("-", "_"),
		key.WithHelp("-", "fewer bars"),
	),
	Faster: key.NewBinding(
		key.WithKeys("["),
		key.WithHelp("[", "faster"),
	),
	Slower: key.NewBinding(
		key.WithKeys("]"),
		key.WithHelp("]", "slower"),
	),
	Rainbow: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "rainbow"),
	),
	OffScreen: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "run off screen"),
	),
	Theme: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "theme"),
	),
	Export: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "export svg"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "scroll up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "scroll down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("pgup", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("pgdn", "page down"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Random, k.Faster, k.Slower, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pause, k.Random, k.Reversed, k.MostlyOrdered},
		{k.MoreBars, k.FewerBars, k.Faster, k.Slower},
		{k.Rainbow, k.OffScreen, k.Theme, k.Export},
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Help, k.Quit},
	}
}
