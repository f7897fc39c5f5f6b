package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/san-kum/sortlab/internal/chart"
	"github.com/san-kum/sortlab/internal/sorting"
)

const (
	background  = "#0a0a0a"
	titleColor  = "#d0d0d0"
	titleHeight = 24
	sheetGap    = 16
	fallbackBar = "#4682b4"

	// MinBar is the pixel length of the smallest value's bar.
	MinBar = 30
)

type Chart struct {
	Name string
	Bars []chart.Bar
}

// Snapshot lays out a stepper's current state at SVG scale.
func Snapshot(name string, st sorting.Stepper, data []int, width, height int) Chart {
	r := chart.NewRenderer(chart.Options{Width: width, Height: height, MinBar: MinBar})
	r.RescaleData(data, st.Capabilities().CustomProjection)
	r.Render(st.Project(data), st.Classify(data), false)
	return Chart{Name: name, Bars: r.Targets()}
}

// ChartSVG renders one chart's bars as rectangles. Bars are expected in
// the coordinate space of a renderer sized width x height.
func ChartSVG(name string, bars []chart.Bar, width, height int, p chart.Palette) string {
	var sb strings.Builder
	total := height + titleHeight

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, total, width, total, background))
	writeChart(&sb, Chart{Name: name, Bars: bars}, 0, height, p)
	sb.WriteString("</svg>")
	return sb.String()
}

// SheetSVG stacks several charts of equal size into one document.
func SheetSVG(charts []Chart, width, height int, p chart.Palette) string {
	var sb strings.Builder
	rowHeight := height + titleHeight + sheetGap
	total := max(rowHeight*len(charts)-sheetGap, 0)

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, total, width, total, background))
	for i, c := range charts {
		writeChart(&sb, c, i*rowHeight, height, p)
	}
	sb.WriteString("</svg>")
	return sb.String()
}

func writeChart(sb *strings.Builder, c Chart, top, height int, p chart.Palette) {
	sb.WriteString(fmt.Sprintf(`<g transform="translate(0,%d)">
<text x="4" y="16" fill="%s" font-family="monospace" font-size="14">%s</text>
<g transform="translate(0,%d)">
`, top, titleColor, html.EscapeString(c.Name), titleHeight))

	for _, b := range c.Bars {
		fill := string(p.Color(b))
		if fill == "" {
			fill = fallbackBar
		}
		sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>
`, b.X, b.Y, b.Width, b.Height, fill))
	}
	sb.WriteString("</g>\n</g>\n")
}

// TraceSVG plots a remaining-inversions trace as a polyline.
func TraceSVG(trace []int, width, height int, strokeColor string) string {
	if len(trace) < 2 {
		return ""
	}

	hi := 1
	for _, v := range trace {
		hi = max(hi, v)
	}
	xs := chart.NewLinearScale(0, float64(len(trace)-1), 0, float64(width))
	ys := chart.NewLinearScale(0, float64(hi), float64(height), 0)

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, background, strokeColor))

	for i, v := range trace {
		x, y := xs.Map(float64(i)), ys.Map(float64(v))
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
