package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/san-kum/sortlab/internal/chart"
	"github.com/san-kum/sortlab/internal/scheduler"
)

const (
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// LiveRenderer prints every slot of a scheduler as plain ANSI frames. Its
// OnFrame method fits the frame callback of scheduler.Run.
type LiveRenderer struct {
	w         io.Writer
	width     int
	height    int
	palette   chart.Palette
	frameRate int
	lastFrame time.Time
}

func NewLiveRenderer(w io.Writer, width, height, frameRate int, palette chart.Palette) *LiveRenderer {
	return &LiveRenderer{
		w:         w,
		width:     width,
		height:    height,
		palette:   palette,
		frameRate: frameRate,
	}
}

// OnFrame draws at most frameRate frames per second, but never skips the
// frame in which every slot has finished.
func (r *LiveRenderer) OnFrame(s *scheduler.Scheduler) {
	if r.frameRate > 0 && !s.Done() {
		if time.Since(r.lastFrame) < time.Second/time.Duration(r.frameRate) {
			return
		}
	}
	r.lastFrame = time.Now()
	fmt.Fprint(r.w, clearScreen+r.Render(s))
}

// Render returns one frame without cursor control sequences.
func (r *LiveRenderer) Render(s *scheduler.Scheduler) string {
	var b strings.Builder
	for _, sl := range s.Slots() {
		snap := sl.Snapshot()
		status := ""
		if sl.Done() {
			status = "  done"
		}
		b.WriteString(fmt.Sprintf("  %s  iter=%.0f writes=%.0f inv=%.0f%s\n",
			sl.Name, snap["iterations"], snap["writes"], snap["inversions"], status))
		b.WriteString("  " + strings.Repeat("-", r.width) + "\n")

		p := r.palette
		p.Span = len(sl.Data)
		for _, line := range strings.Split(chart.Raster(sl.Renderer.Targets(), r.width, r.height, p), "\n") {
			b.WriteString("  " + line + "\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (r *LiveRenderer) Start() { fmt.Fprint(r.w, hideCursor) }
func (r *LiveRenderer) Stop()  { fmt.Fprint(r.w, showCursor) }
