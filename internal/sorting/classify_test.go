package sorting_test

import (
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sortlab/internal/sorting"
)

const (
	tn = sorting.TagNone
	ta = sorting.TagActive
	tc = sorting.TagCompleted
	tp = sorting.TagPivot
	ti = sorting.TagInactive
)

// lowPivot makes every rand.Intn return 0, so quick always pivots on the
// lower bound of its range.
type lowPivot struct{}

func (lowPivot) Int63() int64 { return 0 }
func (lowPivot) Seed(int64)   {}

// tagsAfter resets s on data, iterates calls times and returns the tags.
func tagsAfter(s sorting.Stepper, data []int, calls int) []sorting.Tag {
	s.Reset(data)
	for k := 0; k < calls; k++ {
		Expect(s.Iterate(data)).To(BeFalse(), "%s finished after %d calls", s.Name(), k+1)
	}
	return s.Classify(data)
}

var _ = Describe("Classification", func() {
	DescribeTable("merge completes the first destination bucket bar by bar",
		func(calls int, want []sorting.Tag) {
			Expect(tagsAfter(sorting.NewMerge(), []int{3, 1, 2, 0}, calls)).To(Equal(want))
		},
		Entry("first pass", 1, []sorting.Tag{tn, tn, tn, tn}),
		Entry("second pass starts empty", 4, []sorting.Tag{tn, tn, tn, tn}),
		Entry("one merged", 5, []sorting.Tag{tc, tn, tn, tn}),
		Entry("two merged", 6, []sorting.Tag{tc, tc, tn, tn}),
		Entry("three merged", 7, []sorting.Tag{tc, tc, tc, tn}),
		Entry("single bucket", 8, []sorting.Tag{tc, tc, tc, tc}),
	)

	DescribeTable("quick separates queued ranges from settled ones",
		func(calls int, want []sorting.Tag) {
			s := sorting.NewQuick(rand.New(lowPivot{}))
			Expect(tagsAfter(s, []int{2, 0, 1, 4, 3}, calls)).To(Equal(want))
		},
		Entry("pivot on the left bound", 1, []sorting.Tag{tp, tn, tn, ta, tn}),
		Entry("pivot follows the swap", 3, []sorting.Tag{ta, tn, tp, tn, tn}),
		Entry("left range active, right range queued", 6, []sorting.Tag{ta, tp, tc, ti, ti}),
		Entry("cursors meet on the pivot", 7, []sorting.Tag{tn, tp, tc, ti, ti}),
		Entry("right range active", 8, []sorting.Tag{tc, tc, tc, ta, tp}),
	)

	DescribeTable("insertion completes everything left of the insert point",
		func(calls int, want []sorting.Tag) {
			Expect(tagsAfter(sorting.NewInsertion(), []int{3, 2, 1, 0}, calls)).To(Equal(want))
		},
		Entry("first swap", 1, []sorting.Tag{ta, ta, tn, tn}),
		Entry("second insert", 2, []sorting.Tag{tc, ta, ta, tn}),
		Entry("last insert", 4, []sorting.Tag{tc, tc, ta, ta}),
	)

	DescribeTable("heap completes indices below the heap size",
		func(calls int, want []sorting.Tag) {
			Expect(tagsAfter(sorting.NewHeap(), []int{0, 1, 2}, calls)).To(Equal(want))
		},
		Entry("sift up the second node", 1, []sorting.Tag{ta, ta, tn}),
		Entry("sift up the third node", 2, []sorting.Tag{ta, tc, ta}),
		Entry("first extraction", 3, []sorting.Tag{ta, ta, tn}),
	)

	It("marks every quick bar completed once done", func() {
		data := []int{2, 0, 1, 4, 3}
		s := sorting.NewQuick(rand.New(lowPivot{}))
		run(s, data)
		Expect(s.Classify(data)).To(HaveEach(tc))
	})

	It("marks every heap bar completed once done", func() {
		data := []int{0, 1, 2}
		s := sorting.NewHeap()
		run(s, data)
		Expect(s.Classify(data)).To(HaveEach(tc))
	})

	It("never marks shell bars completed before it is done", func() {
		data := []int{5, 3, 7, 1, 0, 6, 2, 4}
		s := sorting.NewShell()
		s.Reset(data)
		for !s.Iterate(data) {
			Expect(s.Classify(data)).NotTo(ContainElement(tc))
		}
		Expect(s.Classify(data)).To(HaveEach(tc))
	})
})
