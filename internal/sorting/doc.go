// Package sorting implements sorting algorithms as incremental state machines.
//
// Each [Stepper] advances by one primitive comparison or swap per call to
// Iterate, so a caller can render the array between calls:
//
//	s := sorting.NewBubble()
//	s.Reset(data)
//	for !s.Iterate(data) {
//		draw(s.Project(data), s.Classify(data))
//	}
//
// Steppers are not safe for concurrent use. Each one must own its data slice
// between Reset calls; changing the slice length without Reset is a bug.
package sorting
