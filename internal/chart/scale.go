package chart

import "math"

// BandScale maps a discrete index in [0, n) to the left edge of an evenly
// spaced band, d3 style, with outer padding fixed at zero and centred alignment.
type BandScale struct {
	n            int
	start, stop  float64
	paddingInner float64
	round        bool
	offset       float64
	step         float64
	bandwidth    float64
}

func NewBandScale(n int, start, stop, paddingInner float64, round bool) BandScale {
	b := BandScale{n: n, start: start, stop: stop, paddingInner: paddingInner, round: round}
	b.rescale()
	return b
}

func (b *BandScale) rescale() {
	span := b.stop - b.start
	b.step = span / math.Max(1, float64(b.n)-b.paddingInner)
	if b.round {
		b.step = math.Floor(b.step)
	}
	b.offset = b.start + (span-b.step*(float64(b.n)-b.paddingInner))*0.5
	b.bandwidth = b.step * (1 - b.paddingInner)
	if b.round {
		b.offset = math.Round(b.offset)
		b.bandwidth = math.Round(b.bandwidth)
	}
}

func (b BandScale) Position(i int) float64 { return b.offset + b.step*float64(i) }
func (b BandScale) Bandwidth() float64     { return b.bandwidth }
func (b BandScale) Step() float64          { return b.step }
func (b BandScale) Len() int               { return b.n }

// LinearScale maps [d0, d1] onto [r0, r1].
type LinearScale struct {
	d0, d1 float64
	r0, r1 float64
	Clamp  bool
}

func NewLinearScale(d0, d1, r0, r1 float64) LinearScale {
	return LinearScale{d0: d0, d1: d1, r0: r0, r1: r1}
}

func (s LinearScale) Map(v float64) float64 {
	span := s.d1 - s.d0
	if span == 0 {
		return (s.r0 + s.r1) / 2
	}
	t := (v - s.d0) / span
	if s.Clamp {
		t = math.Max(0, math.Min(1, t))
	}
	return s.r0 + t*(s.r1-s.r0)
}

// Interpolate is a clamped one-shot linear mapping, handy for scroll or
// time driven values.
func Interpolate(domain, rng [2]float64, v float64) float64 {
	s := NewLinearScale(domain[0], domain[1], rng[0], rng[1])
	s.Clamp = true
	return s.Map(v)
}

// Extent returns the minimum and maximum of values; ok is false when empty.
func Extent(values []int) (lo, hi int, ok bool) {
	if len(values) == 0 {
		return 0, 0, false
	}
	lo, hi = values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi, true
}
