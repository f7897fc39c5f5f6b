package sorting

type Bubble struct {
	pass     int
	position int
	done     bool
}

func NewBubble() *Bubble { return &Bubble{} }

func (b *Bubble) Name() string { return "bubble" }

func (b *Bubble) Capabilities() Capabilities { return Capabilities{Animated: true} }

func (b *Bubble) Iterate(data []int) bool {
	if b.done {
		return true
	}
	n := len(data)
	if b.position == n-1-b.pass {
		b.position = 0
		b.pass++
	}
	if b.pass >= n-1 {
		// one extra pass so the last bar is classified as completed
		b.pass++
		b.done = true
		return true
	}
	if data[b.position] > data[b.position+1] {
		swap(data, b.position, b.position+1)
	}
	b.position++
	return false
}

func (b *Bubble) Reset(data []int) {
	b.pass = 0
	b.position = 0
	b.done = false
}

func (b *Bubble) Classify(data []int) []Tag {
	n := len(data)
	tags := make([]Tag, n)
	for i := range tags {
		switch {
		case i >= n-b.pass:
			tags[i] = TagCompleted
		case i == b.position || i+1 == b.position:
			tags[i] = TagActive
		}
	}
	return tags
}

func (b *Bubble) Project(data []int) []Item { return Identity(data) }
