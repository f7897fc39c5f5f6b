package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

type styles struct {
	panel       lipgloss.Style
	chartTitle  lipgloss.Style
	subtle      lipgloss.Style
	running     lipgloss.Style
	paused      lipgloss.Style
	finished    lipgloss.Style
	metricLabel lipgloss.Style
	metricValue lipgloss.Style
	graph       lipgloss.Style
	notice      lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		panel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(t.Muted).
			Padding(0, 2),
		chartTitle:  lipgloss.NewStyle().Bold(true).Foreground(t.Secondary),
		subtle:      lipgloss.NewStyle().Foreground(t.Muted),
		running:     lipgloss.NewStyle().Bold(true).Foreground(t.Completed),
		paused:      lipgloss.NewStyle().Bold(true).Foreground(t.Pivot),
		finished:    lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		metricLabel: lipgloss.NewStyle().Foreground(t.Muted).Width(12),
		metricValue: lipgloss.NewStyle().Foreground(t.Text),
		graph:       lipgloss.NewStyle().Foreground(t.Secondary),
		notice:      lipgloss.NewStyle().Italic(true).Foreground(t.Accent),
	}
}

// GradientText colours each rune of text along a blend from start to end.
func GradientText(text string, start, end lipgloss.Color) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	from, err1 := colorful.Hex(string(start))
	to, err2 := colorful.Hex(string(end))
	if err1 != nil || err2 != nil {
		return text
	}

	var sb strings.Builder
	for i, r := range runes {
		t := 0.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		c := lipgloss.Color(from.BlendLab(to, t).Clamped().Hex())
		sb.WriteString(lipgloss.NewStyle().Foreground(c).Render(string(r)))
	}
	return sb.String()
}

// ProgressBar renders percent in [0, 1] as a filled bar of width cells.
func ProgressBar(percent float64, width int, fill, empty lipgloss.Color) string {
	filled := int(percent * float64(width))
	filled = min(max(filled, 0), width)

	return lipgloss.NewStyle().Foreground(fill).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(empty).Render(strings.Repeat("░", width-filled))
}

func Separator(width int, color lipgloss.Color) string {
	if width < 8 {
		return strings.Repeat("─", max(width, 0))
	}
	mid := width / 2
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return lipgloss.NewStyle().Foreground(color).Render(left + " ◆ " + right)
}
