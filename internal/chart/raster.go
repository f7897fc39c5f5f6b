package chart

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/sortlab/internal/sorting"
)

// lower eighth blocks, index = filled eighths
var lowerBlocks = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

const rainbowSweep = 270.0

type Palette struct {
	Bar       lipgloss.Color
	Active    lipgloss.Color
	Completed lipgloss.Color
	Pivot     lipgloss.Color
	Inactive  lipgloss.Color
	// Rainbow colours each bar by value hue and ignores tags.
	Rainbow bool
	// Span normalises rainbow hues; usually the bar count.
	Span int
}

// DefaultPalette is used where no theme applies, such as SVG export.
func DefaultPalette() Palette {
	return Palette{
		Bar:       "#4682b4",
		Active:    "#e74c3c",
		Completed: "#2ecc71",
		Pivot:     "#f1c40f",
		Inactive:  "#5c5c5c",
	}
}

func (p Palette) Color(b Bar) lipgloss.Color {
	if p.Rainbow {
		return RainbowColor(b.Value, p.Span)
	}
	switch b.Tag {
	case sorting.TagActive:
		return p.Active
	case sorting.TagCompleted:
		return p.Completed
	case sorting.TagPivot:
		return p.Pivot
	case sorting.TagInactive:
		return p.Inactive
	}
	return p.Bar
}

// RainbowColor maps value/span onto hues 0..270 at full saturation.
func RainbowColor(value, span int) lipgloss.Color {
	if span <= 0 {
		span = 1
	}
	hue := float64(value) / float64(span) * rainbowSweep
	return lipgloss.Color(colorful.Hsl(hue, 1, 0.5).Hex())
}

type rasterCell struct {
	r     rune
	color lipgloss.Color
}

// Raster draws bars into a width x height grid of terminal cells.
func Raster(bars []Bar, width, height int, p Palette) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	grid := make([][]rasterCell, height)
	for y := range grid {
		grid[y] = make([]rasterCell, width)
		for x := range grid[y] {
			grid[y][x].r = ' '
		}
	}

	for _, b := range bars {
		color := p.Color(b)
		x0 := int(math.Floor(b.X))
		x1 := int(math.Floor(b.X + b.Width))
		if x1 <= x0 {
			x1 = x0 + 1
		}
		top, bottom := b.Y, b.Y+b.Height
		for y := 0; y < height; y++ {
			r := cellGlyph(float64(y), top, bottom)
			if r == ' ' {
				continue
			}
			for x := max(x0, 0); x < min(x1, width); x++ {
				grid[y][x] = rasterCell{r: r, color: color}
			}
		}
	}

	var sb strings.Builder
	for y, row := range grid {
		if y > 0 {
			sb.WriteByte('\n')
		}
		writeRow(&sb, row)
	}
	return sb.String()
}

// cellGlyph picks the glyph for the cell spanning [y, y+1) of a bar
// covering [top, bottom).
func cellGlyph(y, top, bottom float64) rune {
	cover := math.Min(y+1, bottom) - math.Max(y, top)
	if cover <= 0 {
		return ' '
	}
	if top <= y {
		// bar reaches the top of the cell: partial cover sits at the top
		switch {
		case cover >= 0.75:
			return '█'
		case cover >= 0.25:
			return '▀'
		default:
			return ' '
		}
	}
	return lowerBlocks[int(math.Round(cover*8))]
}

func writeRow(sb *strings.Builder, row []rasterCell) {
	start := 0
	for start < len(row) {
		end := start + 1
		for end < len(row) && row[end].color == row[start].color {
			end++
		}
		var run strings.Builder
		for _, c := range row[start:end] {
			run.WriteRune(c.r)
		}
		if row[start].color == "" {
			sb.WriteString(run.String())
		} else {
			sb.WriteString(lipgloss.NewStyle().Foreground(row[start].color).Render(run.String()))
		}
		start = end
	}
}
