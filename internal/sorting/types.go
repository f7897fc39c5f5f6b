package sorting

import (
	"errors"
	"fmt"
)

var ErrUnknownAlgorithm = errors.New("sorting: unknown algorithm")

// maxPhaseAdvances bounds how many phase boundaries one Iterate call may cross.
const maxPhaseAdvances = 4

// Tag is the render state of one bar.
type Tag uint8

const (
	TagNone Tag = iota
	TagActive
	TagCompleted
	TagPivot
	TagInactive
)

func (t Tag) String() string {
	switch t {
	case TagActive:
		return "active"
	case TagCompleted:
		return "completed"
	case TagPivot:
		return "pivot"
	case TagInactive:
		return "inactive"
	default:
		return ""
	}
}

// Item is one renderable bar. Row is 0 for single-row charts; merge sort
// uses rows 0 and 1 for its two buffers.
type Item struct {
	Value int
	Index int
	Row   int
}

// Capabilities tells renderers how to draw a stepper.
type Capabilities struct {
	CustomProjection bool
	Animated         bool
	Randomized       bool
}

// Stepper is a sorting algorithm advanced one primitive operation per
// Iterate call. Iterate returns true once data is sorted.
type Stepper interface {
	Name() string
	Iterate(data []int) bool
	Reset(data []int)
	Classify(data []int) []Tag
	Project(data []int) []Item
	Capabilities() Capabilities
}

// Identity is the projection used by every stepper that renders the raw array.
func Identity(data []int) []Item {
	items := make([]Item, len(data))
	for i, v := range data {
		items[i] = Item{Value: v, Index: i}
	}
	return items
}

func swap(data []int, i, j int) {
	data[i], data[j] = data[j], data[i]
}

func phaseOverflow(name string) {
	panic(fmt.Sprintf("sorting: %s crossed more than %d phase boundaries in one iterate", name, maxPhaseAdvances))
}
