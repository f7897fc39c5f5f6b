package chart

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/san-kum/sortlab/internal/sorting"
)

func TestBandScaleRounded(t *testing.T) {
	xs := NewBandScale(5, 0, 100, 0.5, true)

	if xs.Bandwidth() != 11 {
		t.Errorf("expected bandwidth 11, got %v", xs.Bandwidth())
	}
	want := []float64{1, 23, 45, 67, 89}
	for i, w := range want {
		if got := xs.Position(i); got != w {
			t.Errorf("Position(%d) = %v, want %v", i, got, w)
		}
	}
}

func TestBandScaleUnrounded(t *testing.T) {
	xs := NewBandScale(4, 0, 7, 0.5, false)
	step := 7 / 3.5
	if math.Abs(xs.Step()-step) > 1e-9 {
		t.Errorf("expected step %v, got %v", step, xs.Step())
	}
	last := xs.Position(3) + xs.Bandwidth()
	if math.Abs(last-7) > 1e-9 {
		t.Errorf("last band should end at range end, got %v", last)
	}
}

func TestLinearScale(t *testing.T) {
	tests := []struct {
		name  string
		scale LinearScale
		in    float64
		want  float64
	}{
		{"lower bound", NewLinearScale(0, 29, 30, 200), 0, 30},
		{"upper bound", NewLinearScale(0, 29, 30, 200), 29, 200},
		{"degenerate domain", NewLinearScale(4, 4, 0, 10), 4, 5},
		{"extrapolates", NewLinearScale(0, 1, 0, 10), 2, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.scale.Map(tt.in); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Map(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestInterpolateClamps(t *testing.T) {
	if got := Interpolate([2]float64{0, 400}, [2]float64{1, 0}, 800); got != 0 {
		t.Errorf("expected clamp to 0, got %v", got)
	}
	if got := Interpolate([2]float64{0, 400}, [2]float64{1, 0}, 200); got != 0.5 {
		t.Errorf("expected 0.5, got %v", got)
	}
}

func TestExtent(t *testing.T) {
	lo, hi, ok := Extent([]int{4, 9, 1, 7})
	if !ok || lo != 1 || hi != 9 {
		t.Errorf("Extent = %d, %d, %v", lo, hi, ok)
	}
	if _, _, ok := Extent(nil); ok {
		t.Error("expected ok=false for empty input")
	}
}

func TestLayoutDualRows(t *testing.T) {
	items := []sorting.Item{{Value: 3, Index: 0, Row: 0}, {Value: 1, Index: 1, Row: 1}}
	xs := NewBandScale(2, 0, 40, 0.5, true)
	ys := NewLinearScale(0, 3, 2, 20)

	bars := Layout(items, nil, xs, ys, 20, true)

	if bars[0].Height != 10 {
		t.Errorf("row 0 height should be halved, got %v", bars[0].Height)
	}
	if bars[0].Y+bars[0].Height != 9 {
		t.Errorf("row 0 should end just above the middle, got %v", bars[0].Y+bars[0].Height)
	}
	if bars[1].Y != 11 {
		t.Errorf("row 1 should start just below the middle, got %v", bars[1].Y)
	}
}

func newTestRenderer() *Renderer {
	r := NewRenderer(Options{Width: 40, Height: 10, Transition: 100 * time.Millisecond, FPS: 60})
	r.Rescale(4, 0, 3, false)
	return r
}

func TestRendererKeysByValue(t *testing.T) {
	r := newTestRenderer()
	r.Render(sorting.Identity([]int{3, 2, 1, 0}), nil, true)
	r.Settle()
	before := barByKey(r.Frame(), 3)

	r.Render(sorting.Identity([]int{2, 3, 1, 0}), nil, true)
	mid := barByKey(r.Frame(), 3)
	if mid.X != before.X {
		t.Errorf("bar should start from its old position, got %v want %v", mid.X, before.X)
	}

	for i := 0; i < 600 && r.Advance(); i++ {
	}
	after := barByKey(r.Frame(), 3)
	target := barByKey(r.Targets(), 3)
	if math.Abs(after.X-target.X) > settleThreshold {
		t.Errorf("bar did not travel to its target: %v vs %v", after.X, target.X)
	}
	if after.X == before.X {
		t.Error("bar for value 3 should have moved")
	}
}

func TestRendererEnterExit(t *testing.T) {
	r := newTestRenderer()
	r.Render(sorting.Identity([]int{0, 1, 2, 3}), nil, true)
	if len(r.Frame()) != 4 {
		t.Fatalf("expected 4 bars, got %d", len(r.Frame()))
	}

	r.RescaleData([]int{0, 1}, false)
	r.Render(sorting.Identity([]int{1, 0}), nil, true)
	frame := r.Frame()
	if len(frame) != 2 {
		t.Fatalf("expected exits to be removed, got %d bars", len(frame))
	}
	for _, b := range frame {
		if b.Key > 1 {
			t.Errorf("unexpected key %d after exit", b.Key)
		}
	}
}

func TestRendererSnapsWhenNotAnimated(t *testing.T) {
	r := newTestRenderer()
	r.Render(sorting.Identity([]int{3, 2, 1, 0}), nil, false)
	r.Render(sorting.Identity([]int{0, 1, 2, 3}), nil, false)
	for _, b := range r.Frame() {
		target := barByKey(r.Targets(), b.Key)
		if b.X != target.X {
			t.Errorf("bar %d not snapped: %v vs %v", b.Key, b.X, target.X)
		}
	}
	if r.Advance() {
		t.Error("nothing should be moving after a snap")
	}
}

func TestRasterDimensions(t *testing.T) {
	r := newTestRenderer()
	r.Render(sorting.Identity([]int{3, 2, 1, 0}), []sorting.Tag{sorting.TagActive}, false)

	out := Raster(r.Frame(), 40, 10, Palette{})
	lines := strings.Split(out, "\n")
	if len(lines) != 10 {
		t.Fatalf("expected 10 rows, got %d", len(lines))
	}
	if !strings.ContainsRune(out, '█') {
		t.Error("expected full blocks in output")
	}
}

func TestCellGlyph(t *testing.T) {
	tests := []struct {
		name           string
		y, top, bottom float64
		want           rune
	}{
		{"full", 2, 1, 5, '█'},
		{"empty above", 0, 1, 5, ' '},
		{"half from below", 1, 1.5, 5, '▄'},
		{"hanging half", 4, 1, 4.5, '▀'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cellGlyph(tt.y, tt.top, tt.bottom); got != tt.want {
				t.Errorf("cellGlyph = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPaletteRainbowOverridesTags(t *testing.T) {
	p := Palette{Active: "#ff0000", Rainbow: true, Span: 30}
	b := Bar{Value: 10, Tag: sorting.TagActive}
	if p.Color(b) == p.Active {
		t.Error("rainbow should ignore the tag colour")
	}
	p.Rainbow = false
	if p.Color(b) != p.Active {
		t.Error("expected tag colour without rainbow")
	}
}

func barByKey(bars []Bar, key int) Bar {
	for _, b := range bars {
		if b.Key == key {
			return b
		}
	}
	return Bar{Key: -1}
}
