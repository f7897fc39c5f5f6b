package sorting

import (
	"math/rand"

	"github.com/san-kum/sortlab/internal/dataset"
)

// Bogo shuffles the whole array until it happens to be sorted. Bars jump
// rather than travel, so it opts out of animated transitions.
type Bogo struct {
	rng  *rand.Rand
	done bool
}

func NewBogo(rng *rand.Rand) *Bogo { return &Bogo{rng: rng} }

func (b *Bogo) Name() string { return "bogo" }

func (b *Bogo) Capabilities() Capabilities { return Capabilities{Randomized: true} }

func (b *Bogo) Iterate(data []int) bool {
	if b.done {
		return true
	}
	if dataset.IsSorted(data) {
		b.done = true
		return true
	}
	dataset.Shuffle(data, b.rng)
	return false
}

func (b *Bogo) Reset(data []int) { b.done = false }

func (b *Bogo) Classify(data []int) []Tag {
	tags := make([]Tag, len(data))
	if b.done {
		for i := range tags {
			tags[i] = TagCompleted
		}
	}
	return tags
}

func (b *Bogo) Project(data []int) []Item { return Identity(data) }
