package sorting

import "math/rand"

type span struct{ lo, hi int }

// Quick partitions one range at a time. Ranges wait in a FIFO queue; only
// ranges of two or more elements are queued.
type Quick struct {
	rng     *rand.Rand
	queue   []span
	active  bool
	sorting span
	pivot   int
	l, r    int
	primed  bool
	done    bool
}

func NewQuick(rng *rand.Rand) *Quick {
	return &Quick{rng: rng}
}

func (q *Quick) Name() string { return "quick" }

func (q *Quick) Capabilities() Capabilities {
	return Capabilities{Animated: true, Randomized: true}
}

func (q *Quick) Reset(data []int) {
	q.queue = q.queue[:0]
	if len(data) > 0 {
		q.queue = append(q.queue, span{0, len(data) - 1})
	}
	q.active = false
	q.pivot, q.l, q.r = -1, -1, -1
	q.primed = true
	q.done = false
}

func (q *Quick) Iterate(data []int) bool {
	if q.done {
		return true
	}
	if !q.primed {
		q.Reset(data)
	}

	for advance := 0; advance < maxPhaseAdvances; advance++ {
		if !q.active {
			if len(q.queue) == 0 {
				q.done = true
				return true
			}
			q.sorting = q.queue[0]
			q.queue = q.queue[1:]
			q.active = true
			q.pivot = q.sorting.lo
			if q.sorting.hi > q.sorting.lo {
				q.pivot += q.rng.Intn(q.sorting.hi - q.sorting.lo)
			}
			q.l, q.r = q.sorting.lo, q.sorting.hi
		}

		if q.l == q.r {
			q.closePartition()
			continue
		}

		// equal values step past each other so duplicates cannot swap forever
		if q.l != q.pivot && data[q.l] <= data[q.pivot] {
			q.l++
			return false
		}
		if q.r != q.pivot && data[q.r] >= data[q.pivot] {
			q.r--
			return false
		}

		swap(data, q.l, q.r)
		if q.pivot == q.l {
			q.pivot = q.r
		} else if q.pivot == q.r {
			q.pivot = q.l
		}
		return false
	}
	phaseOverflow(q.Name())
	return false
}

func (q *Quick) closePartition() {
	s := q.sorting
	if q.pivot-1-s.lo > 0 {
		q.queue = append(q.queue, span{s.lo, q.pivot - 1})
	}
	if s.hi-(q.pivot+1) > 0 {
		q.queue = append(q.queue, span{q.pivot + 1, s.hi})
	}
	q.active = false
	q.pivot, q.l, q.r = -1, -1, -1
}

func (q *Quick) Classify(data []int) []Tag {
	tags := make([]Tag, len(data))
	for i := range tags {
		switch {
		case i == q.pivot:
			tags[i] = TagPivot
		case i == q.l || i == q.r:
			tags[i] = TagActive
		case q.settled(i):
			tags[i] = TagCompleted
		case q.active && (i < q.sorting.lo || i > q.sorting.hi):
			tags[i] = TagInactive
		}
	}
	return tags
}

// settled reports whether i lies outside the active range and every queued range.
func (q *Quick) settled(i int) bool {
	if q.active && i >= q.sorting.lo && i <= q.sorting.hi {
		return false
	}
	for _, s := range q.queue {
		if i >= s.lo && i <= s.hi {
			return false
		}
	}
	return true
}

func (q *Quick) Project(data []int) []Item { return Identity(data) }
