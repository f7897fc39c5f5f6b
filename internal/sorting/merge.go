package sorting

type cell struct {
	value int
	moved bool
}

type bucket []cell

// Merge is a bottom-up merge sort over two alternating buffers of buckets.
// Each iterate moves one bucket head from the source buffer into the
// newest bucket of the destination buffer, then mirrors both buffers into
// data so observers of the array see the merge progress.
type Merge struct {
	buffers [2][]bucket
	pass    int
	n       int
	i, j    int
	done    bool
}

func NewMerge() *Merge { return &Merge{} }

func (m *Merge) Name() string { return "merge" }

func (m *Merge) Capabilities() Capabilities {
	return Capabilities{CustomProjection: true, Animated: true}
}

func (m *Merge) Reset(data []int) {
	m.buffers[0] = make([]bucket, len(data))
	for k, v := range data {
		m.buffers[0][k] = bucket{{value: v}}
	}
	m.buffers[1] = nil
	m.pass = 0
	m.n = 0
	m.i = 0
	m.j = 0
	m.done = false
}

func (m *Merge) settled() bool {
	return max(len(m.buffers[0]), len(m.buffers[1])) <= 1
}

func (m *Merge) Iterate(data []int) bool {
	if m.done {
		return true
	}
	if m.buffers[0] == nil && m.buffers[1] == nil {
		m.Reset(data)
	}
	if m.settled() {
		m.flatten(data)
		m.done = true
		return true
	}

	from, to := m.pass%2, (m.pass+1)%2
	if m.i == 0 && m.j == 0 {
		m.buffers[to] = append(m.buffers[to], bucket{})
	}

	src := m.buffers[from]
	a := src[m.n*2]
	var b bucket
	if m.n*2+1 < len(src) {
		b = src[m.n*2+1]
	}
	out := &m.buffers[to][len(m.buffers[to])-1]

	if m.j >= len(b) || (m.i < len(a) && a[m.i].value <= b[m.j].value) {
		*out = append(*out, cell{value: a[m.i].value})
		a[m.i].moved = true
		m.i++
	} else {
		*out = append(*out, cell{value: b[m.j].value})
		b[m.j].moved = true
		m.j++
	}

	if m.i >= len(a) && m.j >= len(b) {
		m.n++
		if m.n*2 >= len(src) {
			m.buffers[from] = m.buffers[from][:0]
			m.pass++
			m.n = 0
		}
		m.i = 0
		m.j = 0
	}
	m.flatten(data)
	return false
}

// flatten writes the merged buckets of the destination buffer, then the
// unmoved cells of the source buffer, into data. data stays a permutation
// of the input and reads sorted once a single bucket remains.
func (m *Merge) flatten(data []int) {
	to := (m.pass + 1) % 2
	k := 0
	for _, buf := range [2][]bucket{m.buffers[to], m.buffers[1-to]} {
		for _, bk := range buf {
			for _, c := range bk {
				if !c.moved && k < len(data) {
					data[k] = c.value
					k++
				}
			}
		}
	}
}

// Project lists live values of buffer 0 (row 0) then buffer 1 (row 1).
// Index counts moved slots too so a bar keeps its column until it moves.
func (m *Merge) Project(data []int) []Item {
	if m.buffers[0] == nil && m.buffers[1] == nil {
		return Identity(data)
	}
	var items []Item
	for row, buf := range m.buffers {
		idx := 0
		for _, bk := range buf {
			for _, c := range bk {
				if !c.moved {
					items = append(items, Item{Value: c.value, Index: idx, Row: row})
				}
				idx++
			}
		}
	}
	return items
}

func (m *Merge) Classify(data []int) []Tag {
	items := m.Project(data)
	tags := make([]Tag, len(items))
	longest := max(len(m.buffers[0]), len(m.buffers[1]))
	if longest <= 1 {
		for k := range tags {
			tags[k] = TagCompleted
		}
		return tags
	}
	if longest == 2 {
		to := m.buffers[(m.pass+1)%2]
		if len(to) > 0 {
			inFirst := make(map[int]bool, len(to[0]))
			for _, c := range to[0] {
				inFirst[c.value] = true
			}
			for k, it := range items {
				if inFirst[it.Value] {
					tags[k] = TagCompleted
				}
			}
		}
	}
	return tags
}
