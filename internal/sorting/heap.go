package sorting

type heapStage uint8

const (
	heapBuild heapStage = iota
	heapExtract
	heapDone
)

// Heap builds a max-heap by sifting each new element up, then repeatedly
// swaps the root to the end of the heap and sifts the new root down.
type Heap struct {
	stage     heapStage
	heaped    int
	current   int
	resetCur  bool
	highlight []int
}

func NewHeap() *Heap {
	h := &Heap{}
	h.Reset(nil)
	return h
}

func (h *Heap) Name() string { return "heap" }

func (h *Heap) Capabilities() Capabilities { return Capabilities{Animated: true} }

func (h *Heap) Reset(data []int) {
	h.stage = heapBuild
	h.heaped = 1
	h.current = 0
	h.resetCur = true
	h.highlight = h.highlight[:0]
}

func (h *Heap) Iterate(data []int) bool {
	if h.stage == heapDone {
		return true
	}
	if len(data) == 0 {
		h.finish()
		return true
	}

	for advance := 0; advance < maxPhaseAdvances; advance++ {
		switch h.stage {
		case heapBuild:
			if h.current <= 0 || h.resetCur {
				if h.heaped+1 > len(data) {
					h.stage = heapExtract
					h.resetCur = true
					continue
				}
				h.heaped++
				h.current = h.heaped - 1
				h.resetCur = false
			}
			parent := (h.current - 1) / 2
			h.highlight = append(h.highlight[:0], h.current, parent)
			if data[h.current] > data[parent] {
				swap(data, h.current, parent)
				h.current = parent
			} else {
				h.resetCur = true
			}
			return false

		case heapExtract:
			if h.resetCur {
				swap(data, 0, h.heaped-1)
				h.heaped--
				if h.heaped == 0 {
					h.finish()
					return true
				}
				h.current = 0
				h.resetCur = false
			}

			left, right := 2*h.current+1, 2*h.current+2
			var maxChild int
			switch {
			case left >= h.heaped:
				h.resetCur = true
				continue
			case right >= h.heaped:
				maxChild = left
			case data[left] > data[right]:
				maxChild = left
			default:
				maxChild = right
			}

			h.highlight = append(h.highlight[:0], h.current, maxChild)
			if data[h.current] < data[maxChild] {
				swap(data, h.current, maxChild)
				h.current = maxChild
			} else {
				h.resetCur = true
			}
			return false

		default:
			return true
		}
	}
	phaseOverflow(h.Name())
	return false
}

func (h *Heap) finish() {
	h.stage = heapDone
	h.heaped = 0
	h.highlight = h.highlight[:0]
}

func (h *Heap) Classify(data []int) []Tag {
	tags := make([]Tag, len(data))
	for i := range tags {
		switch {
		case h.highlighted(i):
			tags[i] = TagActive
		case h.stage == heapDone || i < h.heaped:
			tags[i] = TagCompleted
		}
	}
	return tags
}

func (h *Heap) highlighted(i int) bool {
	for _, k := range h.highlight {
		if k == i {
			return true
		}
	}
	return false
}

func (h *Heap) Project(data []int) []Item { return Identity(data) }
