package sorting

// Shell runs gapped insertion passes, halving the gap after each pass.
// down chains a swapped element further back by gap; 0 means no chain.
type Shell struct {
	gap       int
	testing   int
	down      int
	highlight []int
	primed    bool
	done      bool
}

func NewShell() *Shell { return &Shell{} }

func (s *Shell) Name() string { return "shell" }

func (s *Shell) Capabilities() Capabilities { return Capabilities{Animated: true} }

func (s *Shell) Reset(data []int) {
	s.gap = len(data) / 2
	s.testing = s.gap - 1
	s.down = 0
	s.highlight = s.highlight[:0]
	s.primed = true
	s.done = false
}

func (s *Shell) Iterate(data []int) bool {
	if s.done {
		return true
	}
	if !s.primed {
		s.Reset(data)
	}
	if s.gap == 0 {
		s.finish()
		return true
	}

	for advance := 0; advance < maxPhaseAdvances; advance++ {
		if s.down == 0 {
			s.testing++
		}
		if s.testing >= len(data) {
			s.gap /= 2
			if s.gap == 0 {
				s.finish()
				return true
			}
			s.testing = s.gap - 1
			continue
		}

		at := s.testing
		if s.down != 0 {
			at = s.down
		}
		s.highlight = append(s.highlight[:0], at, at-s.gap)

		if data[at] < data[at-s.gap] {
			swap(data, at, at-s.gap)
			if at-2*s.gap >= 0 {
				s.down = at - s.gap
			} else {
				s.down = 0
			}
		} else {
			s.down = 0
		}
		return false
	}
	phaseOverflow(s.Name())
	return false
}

func (s *Shell) finish() {
	s.done = true
	s.highlight = s.highlight[:0]
}

func (s *Shell) Classify(data []int) []Tag {
	tags := make([]Tag, len(data))
	for i := range tags {
		switch {
		case s.done:
			tags[i] = TagCompleted
		case s.contains(i):
			tags[i] = TagActive
		}
	}
	return tags
}

func (s *Shell) contains(i int) bool {
	for _, k := range s.highlight {
		if k == i {
			return true
		}
	}
	return false
}

func (s *Shell) Project(data []int) []Item { return Identity(data) }
