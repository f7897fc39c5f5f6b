package chart

import "github.com/san-kum/sortlab/internal/sorting"

// Bar is one positioned rectangle. Y grows downward from the chart top.
type Bar struct {
	Key    int
	Value  int
	Row    int
	X, Y   float64
	Width  float64
	Height float64
	Tag    sorting.Tag
}

// Layout positions items on the given scales. Dual-row layouts split the
// chart at its vertical centre: row 0 grows up from the middle, row 1 hangs
// below it, each at half height.
func Layout(items []sorting.Item, tags []sorting.Tag, xs BandScale, ys LinearScale, height float64, dual bool) []Bar {
	bars := make([]Bar, len(items))
	for k, it := range items {
		h := ys.Map(float64(it.Value))
		b := Bar{
			Key:    it.Value,
			Value:  it.Value,
			Row:    it.Row,
			X:      xs.Position(it.Index),
			Width:  xs.Bandwidth(),
			Height: h,
			Y:      height - h,
		}
		if dual {
			b.Height = h / 2
			if it.Row == 0 {
				b.Y = height/2 - h/2 - 1
			} else {
				b.Y = height/2 + 1
			}
		}
		if k < len(tags) {
			b.Tag = tags[k]
		}
		bars[k] = b
	}
	return bars
}
