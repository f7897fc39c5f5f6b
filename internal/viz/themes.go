package viz

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/sortlab/internal/chart"
)

// Theme defines the colour scheme for the UI and its charts.
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color

	Bar       lipgloss.Color
	Active    lipgloss.Color
	Completed lipgloss.Color
	Pivot     lipgloss.Color
	Inactive  lipgloss.Color
}

var (
	ThemeCyberpunk = Theme{
		Name:      "cyberpunk",
		Primary:   lipgloss.Color("#ff00ff"),
		Secondary: lipgloss.Color("#00ffff"),
		Accent:    lipgloss.Color("#ffff00"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#666666"),
		Bar:       lipgloss.Color("#00ccff"),
		Active:    lipgloss.Color("#ff00ff"),
		Completed: lipgloss.Color("#00ff88"),
		Pivot:     lipgloss.Color("#ffff00"),
		Inactive:  lipgloss.Color("#333344"),
	}

	ThemeRetroGreen = Theme{
		Name:      "retro",
		Primary:   lipgloss.Color("#00ff00"), // green phosphor
		Secondary: lipgloss.Color("#00cc00"),
		Accent:    lipgloss.Color("#88ff88"),
		Text:      lipgloss.Color("#00ff00"),
		Muted:     lipgloss.Color("#005500"),
		Bar:       lipgloss.Color("#00aa00"),
		Active:    lipgloss.Color("#ccffcc"),
		Completed: lipgloss.Color("#88ff88"),
		Pivot:     lipgloss.Color("#ffff00"),
		Inactive:  lipgloss.Color("#003300"),
	}

	ThemeMinimal = Theme{
		Name:      "minimal",
		Primary:   lipgloss.Color("#ffffff"),
		Secondary: lipgloss.Color("#cccccc"),
		Accent:    lipgloss.Color("#0088ff"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#888888"),
		Bar:       lipgloss.Color("#bbbbbb"),
		Active:    lipgloss.Color("#0088ff"),
		Completed: lipgloss.Color("#ffffff"),
		Pivot:     lipgloss.Color("#ffaa00"),
		Inactive:  lipgloss.Color("#444444"),
	}

	ThemeOcean = Theme{
		Name:      "ocean",
		Primary:   lipgloss.Color("#0077be"),
		Secondary: lipgloss.Color("#00a8cc"),
		Accent:    lipgloss.Color("#ffd700"),
		Text:      lipgloss.Color("#e0f0ff"),
		Muted:     lipgloss.Color("#4488aa"),
		Bar:       lipgloss.Color("#00a8cc"),
		Active:    lipgloss.Color("#ffd700"),
		Completed: lipgloss.Color("#00ff88"),
		Pivot:     lipgloss.Color("#ff4444"),
		Inactive:  lipgloss.Color("#123a55"),
	}

	ThemeSunset = Theme{
		Name:      "sunset",
		Primary:   lipgloss.Color("#ff6b6b"),
		Secondary: lipgloss.Color("#feca57"),
		Accent:    lipgloss.Color("#ff9ff3"),
		Text:      lipgloss.Color("#fff5f5"),
		Muted:     lipgloss.Color("#8b6b8c"),
		Bar:       lipgloss.Color("#feca57"),
		Active:    lipgloss.Color("#ff6b6b"),
		Completed: lipgloss.Color("#5fd068"),
		Pivot:     lipgloss.Color("#ff9ff3"),
		Inactive:  lipgloss.Color("#4a2f4b"),
	}

	Themes = []Theme{
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to cyberpunk.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeCyberpunk
}

// NextTheme returns the theme after name, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// Palette maps the theme onto chart tag colours.
func (t Theme) Palette(rainbow bool, span int) chart.Palette {
	return chart.Palette{
		Bar:       t.Bar,
		Active:    t.Active,
		Completed: t.Completed,
		Pivot:     t.Pivot,
		Inactive:  t.Inactive,
		Rainbow:   rainbow,
		Span:      span,
	}
}
