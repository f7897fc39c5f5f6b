package chart

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/san-kum/sortlab/internal/sorting"
)

const (
	DefaultFPS       = 30
	settleThreshold  = 0.01
	paddingInner     = 0.5
	minTransition    = 10 * time.Millisecond
	springDampening  = 1.0
	settleTimeFactor = 6.0
)

type Options struct {
	Width, Height int
	// MinBar is the length of the smallest value's bar.
	MinBar     float64
	Transition time.Duration
	FPS        int
}

type springBar struct {
	target     Bar
	x, y, h    float64
	vx, vy, vh float64
}

// Renderer turns a projected sequence into bars keyed by value, so a bar
// travels to its new index instead of being redrawn in place.
type Renderer struct {
	opts   Options
	xs     BandScale
	ys     LinearScale
	dual   bool
	spring harmonica.Spring
	bars   map[int]*springBar
	order  []int
}

func NewRenderer(opts Options) *Renderer {
	if opts.FPS <= 0 {
		opts.FPS = DefaultFPS
	}
	if opts.MinBar <= 0 {
		opts.MinBar = 1
	}
	r := &Renderer{opts: opts, bars: make(map[int]*springBar)}
	r.SetTransition(opts.Transition)
	return r
}

// SetTransition tunes the springs so a bar settles in roughly d.
func (r *Renderer) SetTransition(d time.Duration) {
	if d < minTransition {
		d = minTransition
	}
	r.opts.Transition = d
	freq := settleTimeFactor / d.Seconds()
	r.spring = harmonica.NewSpring(harmonica.FPS(r.opts.FPS), freq, springDampening)
}

func (r *Renderer) Size() (int, int) { return r.opts.Width, r.opts.Height }

func (r *Renderer) Resize(width, height int) {
	if width == r.opts.Width && height == r.opts.Height {
		return
	}
	r.opts.Width, r.opts.Height = width, height
	r.xs = NewBandScale(r.xs.Len(), 0, float64(width), paddingInner, r.roundBands(r.xs.Len()))
	r.ys = NewLinearScale(r.ys.d0, r.ys.d1, r.opts.MinBar, float64(height))
}

// Rescale recomputes both scales for n indices and the value range [lo, hi].
func (r *Renderer) Rescale(n, lo, hi int, dual bool) {
	r.dual = dual
	r.xs = NewBandScale(n, 0, float64(r.opts.Width), paddingInner, r.roundBands(n))
	r.ys = NewLinearScale(float64(lo), float64(hi), r.opts.MinBar, float64(r.opts.Height))
}

// RescaleData is Rescale over the extent of data.
func (r *Renderer) RescaleData(data []int, dual bool) {
	lo, hi, _ := Extent(data)
	r.Rescale(len(data), lo, hi, dual)
}

func (r *Renderer) roundBands(n int) bool {
	return n > 0 && float64(r.opts.Width)/float64(n) >= 2
}

// Render sets new targets. Bars whose key is new enter at their target,
// bars whose key vanished exit, the rest spring toward their target unless
// animated is false.
func (r *Renderer) Render(items []sorting.Item, tags []sorting.Tag, animated bool) {
	layout := Layout(items, tags, r.xs, r.ys, float64(r.opts.Height), r.dual)

	seen := make(map[int]bool, len(layout))
	r.order = r.order[:0]
	for _, b := range layout {
		seen[b.Key] = true
		r.order = append(r.order, b.Key)

		sb, ok := r.bars[b.Key]
		if !ok || !animated {
			r.bars[b.Key] = &springBar{target: b, x: b.X, y: b.Y, h: b.Height}
			continue
		}
		sb.target = b
	}
	for key := range r.bars {
		if !seen[key] {
			delete(r.bars, key)
		}
	}
}

// Advance steps every spring by one frame and reports whether any bar is
// still moving.
func (r *Renderer) Advance() bool {
	moving := false
	for _, sb := range r.bars {
		sb.x, sb.vx = r.spring.Update(sb.x, sb.vx, sb.target.X)
		sb.y, sb.vy = r.spring.Update(sb.y, sb.vy, sb.target.Y)
		sb.h, sb.vh = r.spring.Update(sb.h, sb.vh, sb.target.Height)
		if sb.near() {
			sb.snap()
		} else {
			moving = true
		}
	}
	return moving
}

// Settle jumps every bar to its target.
func (r *Renderer) Settle() {
	for _, sb := range r.bars {
		sb.snap()
	}
}

func (sb *springBar) near() bool {
	return math.Abs(sb.x-sb.target.X) < settleThreshold &&
		math.Abs(sb.y-sb.target.Y) < settleThreshold &&
		math.Abs(sb.h-sb.target.Height) < settleThreshold &&
		math.Abs(sb.vx)+math.Abs(sb.vy)+math.Abs(sb.vh) < settleThreshold
}

func (sb *springBar) snap() {
	sb.x, sb.y, sb.h = sb.target.X, sb.target.Y, sb.target.Height
	sb.vx, sb.vy, sb.vh = 0, 0, 0
}

// Frame returns the current, possibly mid-transition, bars in render order.
func (r *Renderer) Frame() []Bar {
	frame := make([]Bar, 0, len(r.order))
	for _, key := range r.order {
		sb, ok := r.bars[key]
		if !ok {
			continue
		}
		b := sb.target
		b.X, b.Y, b.Height = sb.x, sb.y, sb.h
		frame = append(frame, b)
	}
	return frame
}

// Targets returns the bars as they will look once settled.
func (r *Renderer) Targets() []Bar {
	frame := make([]Bar, 0, len(r.order))
	for _, key := range r.order {
		if sb, ok := r.bars[key]; ok {
			frame = append(frame, sb.target)
		}
	}
	return frame
}
