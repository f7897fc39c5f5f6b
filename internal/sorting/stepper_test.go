package sorting_test

import (
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sortlab/internal/dataset"
	"github.com/san-kum/sortlab/internal/sorting"
)

const iterationCap = 2_000_000

// run drives s to completion and returns the number of calls that returned false.
func run(s sorting.Stepper, data []int) int {
	s.Reset(data)
	steps := 0
	for !s.Iterate(data) {
		steps++
		Expect(steps).To(BeNumerically("<", iterationCap), "%s did not terminate", s.Name())
	}
	return steps
}

func sizesFor(name string) []int {
	if name == "bogo" {
		return []int{0, 1, 2, 3, 5}
	}
	return []int{0, 1, 2, 3, 7, 16, 33, 64}
}

var _ = Describe("Steppers", func() {
	registry := sorting.NewRegistry()

	for _, name := range registry.Names() {
		name := name

		Describe(name, func() {
			var rng *rand.Rand

			BeforeEach(func() {
				rng = rand.New(rand.NewSource(11))
			})

			It("sorts every shape and keeps the multiset", func() {
				for _, shape := range dataset.Shapes() {
					for _, n := range sizesFor(name) {
						input := dataset.Generate(n, shape, rng)
						data := dataset.Clone(input)
						s, err := registry.New(name, rng)
						Expect(err).NotTo(HaveOccurred())

						run(s, data)

						Expect(dataset.IsSorted(data)).To(BeTrue(), "%s/%s/%d: %v", name, shape, n, data)
						Expect(dataset.SameMultiset(data, input)).To(BeTrue())
					}
				}
			})

			It("takes the same number of iterations for the same input and seed", func() {
				input := dataset.Generate(5, dataset.Random, rand.New(rand.NewSource(3)))
				counts := make([]int, 2)
				for k := range counts {
					s, err := registry.New(name, rand.New(rand.NewSource(99)))
					Expect(err).NotTo(HaveOccurred())
					counts[k] = run(s, dataset.Clone(input))
				}
				Expect(counts[0]).To(Equal(counts[1]))
			})

			It("stays done without touching the data", func() {
				data := dataset.Generate(5, dataset.Reversed, rng)
				s, _ := registry.New(name, rng)
				run(s, data)

				snapshot := dataset.Clone(data)
				for k := 0; k < 3; k++ {
					Expect(s.Iterate(data)).To(BeTrue())
				}
				Expect(data).To(Equal(snapshot))
			})

			It("completes a single element on the first call", func() {
				data := dataset.Generate(1, dataset.Random, rng)
				s, _ := registry.New(name, rng)
				s.Reset(data)
				Expect(s.Iterate(data)).To(BeTrue())
				Expect(data).To(Equal([]int{0}))
			})

			It("completes an empty array on the first call", func() {
				data := []int{}
				s, _ := registry.New(name, rng)
				s.Reset(data)
				Expect(s.Iterate(data)).To(BeTrue())
				Expect(s.Classify(data)).To(BeEmpty())
			})

			It("classifies one tag per projected item", func() {
				data := dataset.Generate(12, dataset.Random, rng)
				s, _ := registry.New(name, rng)
				s.Reset(data)
				for k := 0; k < 40 && !s.Iterate(data); k++ {
					Expect(s.Classify(data)).To(HaveLen(len(s.Project(data))))
				}
			})
		})
	}

	It("rejects unknown algorithms", func() {
		_, err := registry.New("sleep", nil)
		Expect(err).To(MatchError(sorting.ErrUnknownAlgorithm))
	})
})

var _ = Describe("Bubble", func() {
	It("needs exactly ten compare steps for five reversed values", func() {
		data := dataset.Generate(5, dataset.Reversed, nil)
		Expect(data).To(Equal([]int{4, 3, 2, 1, 0}))

		steps := run(sorting.NewBubble(), data)

		Expect(steps).To(Equal(10))
		Expect(data).To(Equal([]int{0, 1, 2, 3, 4}))
	})

	It("marks the tail completed after each pass", func() {
		data := []int{3, 2, 1, 0}
		s := sorting.NewBubble()
		s.Reset(data)
		for k := 0; k < 4; k++ {
			s.Iterate(data)
		}
		tags := s.Classify(data)
		Expect(tags[3]).To(Equal(sorting.TagCompleted))
		Expect(tags[0]).To(Equal(sorting.TagActive))
		Expect(tags[1]).To(Equal(sorting.TagActive))
	})
})

var _ = Describe("Bogo", func() {
	It("finishes sorted input on the first call without shuffling", func() {
		data := dataset.Range(8)
		s := sorting.NewBogo(rand.New(rand.NewSource(1)))
		s.Reset(data)
		Expect(s.Iterate(data)).To(BeTrue())
		Expect(data).To(Equal(dataset.Range(8)))
	})

	It("does not tween its bars", func() {
		Expect(sorting.NewBogo(nil).Capabilities().Animated).To(BeFalse())
	})
})

var _ = Describe("Merge", func() {
	It("keeps the input multiset across both buffers at every step", func() {
		input := dataset.Generate(21, dataset.Random, rand.New(rand.NewSource(5)))
		data := dataset.Clone(input)
		s := sorting.NewMerge()
		s.Reset(data)

		for !s.Iterate(data) {
			items := s.Project(data)
			values := make([]int, len(items))
			for k, it := range items {
				values[k] = it.Value
				Expect(it.Row).To(BeElementOf(0, 1))
			}
			Expect(dataset.SameMultiset(values, input)).To(BeTrue())
		}
		Expect(data).To(Equal(dataset.Range(21)))
	})

	It("mirrors both buffers into the data after every call", func() {
		data := []int{3, 2, 1, 0}
		s := sorting.NewMerge()
		s.Reset(data)

		Expect(s.Iterate(data)).To(BeFalse())
		Expect(data).To(Equal([]int{2, 3, 1, 0}))

		for !s.Iterate(data) {
			Expect(dataset.SameMultiset(data, []int{0, 1, 2, 3})).To(BeTrue())
		}
		Expect(data).To(Equal([]int{0, 1, 2, 3}))
	})

	It("projects a dual-row view", func() {
		Expect(sorting.NewMerge().Capabilities().CustomProjection).To(BeTrue())
	})

	It("marks everything completed once a single bucket remains", func() {
		data := dataset.Generate(6, dataset.Reversed, nil)
		s := sorting.NewMerge()
		run(s, data)
		for _, tag := range s.Classify(data) {
			Expect(tag).To(Equal(sorting.TagCompleted))
		}
	})
})

var _ = Describe("Selection", func() {
	It("forgets progress on reset", func() {
		data := dataset.Generate(10, dataset.Reversed, nil)
		s := sorting.NewSelection()
		s.Reset(data)
		for k := 0; k < 12; k++ {
			s.Iterate(data)
		}
		Expect(s.Classify(data)).To(ContainElement(sorting.TagCompleted))

		fresh := dataset.Generate(10, dataset.Reversed, nil)
		s.Reset(fresh)
		tags := s.Classify(fresh)

		Expect(tags[0]).To(Equal(sorting.TagActive))
		Expect(tags).NotTo(ContainElement(sorting.TagCompleted))
		for i := 1; i < len(tags); i++ {
			Expect(tags[i]).To(Equal(sorting.TagNone))
		}
	})
})

var _ = Describe("Quick", func() {
	It("tags the pivot while partitioning", func() {
		data := dataset.Generate(16, dataset.Random, rand.New(rand.NewSource(2)))
		s := sorting.NewQuick(rand.New(rand.NewSource(8)))
		s.Reset(data)
		s.Iterate(data)
		Expect(s.Classify(data)).To(ContainElement(sorting.TagPivot))
	})

	It("terminates on duplicate values", func() {
		data := []int{3, 1, 3, 3, 2, 3, 1}
		s := sorting.NewQuick(rand.New(rand.NewSource(4)))
		run(s, data)
		Expect(dataset.IsSorted(data)).To(BeTrue())
	})
})

var _ = Describe("Heap", func() {
	It("highlights the nodes it compares", func() {
		data := dataset.Generate(10, dataset.Random, rand.New(rand.NewSource(6)))
		s := sorting.NewHeap()
		s.Reset(data)
		s.Iterate(data)
		Expect(s.Classify(data)).To(ContainElement(sorting.TagActive))
	})
})
