package sorting

// Insertion walks each new element backward one adjacent swap per iterate.
// complete is the index of the element currently being inserted plus one.
type Insertion struct {
	testing   int
	complete  int
	resetTest bool
	done      bool
}

func NewInsertion() *Insertion {
	s := &Insertion{}
	s.Reset(nil)
	return s
}

func (s *Insertion) Name() string { return "insertion" }

func (s *Insertion) Capabilities() Capabilities { return Capabilities{Animated: true} }

func (s *Insertion) Iterate(data []int) bool {
	if s.done {
		return true
	}
	if s.resetTest || s.testing == 0 {
		if s.complete >= len(data) {
			s.complete = len(data)
			s.done = true
			return true
		}
		s.testing = s.complete
		s.resetTest = false
	}

	if data[s.testing] < data[s.testing-1] {
		swap(data, s.testing, s.testing-1)
	} else {
		s.resetTest = true
	}

	if s.testing == s.complete {
		s.complete++
	}
	s.testing--
	return false
}

func (s *Insertion) Reset(data []int) {
	s.testing = 1
	s.complete = 1
	s.resetTest = true
	s.done = false
}

func (s *Insertion) Classify(data []int) []Tag {
	tags := make([]Tag, len(data))
	for i := range tags {
		switch {
		case !s.done && (i == s.testing+1 || i == s.testing):
			tags[i] = TagActive
		case i < s.complete:
			tags[i] = TagCompleted
		}
	}
	return tags
}

func (s *Insertion) Project(data []int) []Item { return Identity(data) }
