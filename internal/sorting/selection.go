package sorting

type Selection struct {
	sorted        int
	checking      int
	min           int
	resetChecking bool
	done          bool
}

func NewSelection() *Selection { return &Selection{} }

func (s *Selection) Name() string { return "selection" }

func (s *Selection) Capabilities() Capabilities { return Capabilities{Animated: true} }

func (s *Selection) Iterate(data []int) bool {
	if s.done {
		return true
	}
	n := len(data)
	if s.sorted >= n-1 {
		s.sorted = n
		s.done = true
		return true
	}

	if s.resetChecking {
		s.resetChecking = false
		s.checking = s.sorted
		s.min = s.sorted
	}

	s.checking++
	if data[s.checking] < data[s.min] {
		s.min = s.checking
	}

	if s.checking == n-1 {
		swap(data, s.sorted, s.min)
		s.sorted++
		s.resetChecking = true
	}
	if s.sorted == n-1 {
		s.sorted++
	}
	return false
}

func (s *Selection) Reset(data []int) {
	*s = Selection{}
}

func (s *Selection) Classify(data []int) []Tag {
	tags := make([]Tag, len(data))
	for i := range tags {
		switch {
		case s.sorted != len(data) && (i == s.checking || i == s.min):
			tags[i] = TagActive
		case i < s.sorted:
			tags[i] = TagCompleted
		}
	}
	return tags
}

func (s *Selection) Project(data []int) []Item { return Identity(data) }
