package scheduler

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/san-kum/sortlab/internal/chart"
	"github.com/san-kum/sortlab/internal/dataset"
	"github.com/san-kum/sortlab/internal/sorting"
)

func newTestScheduler(t *testing.T, names ...string) *Scheduler {
	t.Helper()
	s := New(MinInterval, nil)
	opts := chart.Options{Width: 40, Height: 8}
	if err := s.AddAlgorithms(sorting.NewRegistry(), names, rand.New(rand.NewSource(1)), opts); err != nil {
		t.Fatal(err)
	}
	return s
}

func TestAddAlgorithmsUnknown(t *testing.T) {
	s := New(MinInterval, nil)
	err := s.AddAlgorithms(sorting.NewRegistry(), []string{"sleep"}, nil, chart.Options{})
	if !errors.Is(err, sorting.ErrUnknownAlgorithm) {
		t.Errorf("expected ErrUnknownAlgorithm, got %v", err)
	}
}

func TestStepRunsToCompletion(t *testing.T) {
	s := newTestScheduler(t, "bubble", "merge", "quick", "shell")
	input := dataset.Generate(20, dataset.Random, rand.New(rand.NewSource(7)))
	s.Replace(input)

	for i := 0; i < 10000 && !s.Done(); i++ {
		s.Step()
	}
	if !s.Done() {
		t.Fatal("scheduler never finished")
	}
	for _, sl := range s.Slots() {
		if !dataset.IsSorted(sl.Data) {
			t.Errorf("%s: not sorted: %v", sl.Name, sl.Data)
		}
		if !dataset.SameMultiset(sl.Data, input) {
			t.Errorf("%s: multiset changed", sl.Name)
		}
	}
	if s.Step() != 0 {
		t.Error("finished slots should not be stepped again")
	}
}

func TestSlotsOwnTheirData(t *testing.T) {
	s := newTestScheduler(t, "bubble", "selection")
	input := []int{3, 2, 1, 0}
	s.Replace(input)
	s.Step()

	if input[0] != 3 || input[3] != 0 {
		t.Errorf("shared input mutated: %v", input)
	}
	a, b := s.Slots()[0].Data, s.Slots()[1].Data
	a[0] = 99
	if b[0] == 99 {
		t.Error("slots share a backing array")
	}
}

func TestVisibilityGating(t *testing.T) {
	tests := []struct {
		name         string
		runOffScreen bool
		wantStepped  int
	}{
		{"hidden slots paused", false, 1},
		{"run off screen", true, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestScheduler(t, "bubble", "insertion")
			s.RunOffScreen = tt.runOffScreen
			s.Visible = func(sl *Slot) bool { return sl.Index == 0 }
			s.Replace([]int{4, 3, 2, 1, 0})

			if got := s.Step(); got != tt.wantStepped {
				t.Errorf("stepped %d slots, want %d", got, tt.wantStepped)
			}
			hidden := s.Slots()[1]
			iterations := hidden.Snapshot()["iterations"]
			if !tt.runOffScreen && iterations != 0 {
				t.Errorf("hidden slot advanced %v times", iterations)
			}
		})
	}
}

func TestReplaceDiscardsProgress(t *testing.T) {
	s := newTestScheduler(t, "bubble")
	s.Replace([]int{2, 1, 0})
	for !s.Done() {
		s.Step()
	}

	s.Replace([]int{5, 4, 3, 2, 1, 0})
	sl := s.Slots()[0]
	if sl.Done() {
		t.Error("replace should clear the done flag")
	}
	if sl.Snapshot()["iterations"] != 0 {
		t.Error("replace should clear metrics")
	}
	if len(sl.Data) != 6 || sl.Data[0] != 5 {
		t.Errorf("unexpected data after replace: %v", sl.Data)
	}
	if len(sl.Renderer.Targets()) != 6 {
		t.Errorf("renderer should show 6 bars, got %d", len(sl.Renderer.Targets()))
	}
}

func TestSetInterval(t *testing.T) {
	tests := []struct {
		name string
		in   time.Duration
		want time.Duration
		ok   bool
	}{
		{"in range", 300 * time.Millisecond, 300 * time.Millisecond, true},
		{"too fast", time.Millisecond, MinInterval, true},
		{"too slow", time.Minute, MaxInterval, true},
		{"zero ignored", 0, 120 * time.Millisecond, false},
		{"negative ignored", -time.Second, 120 * time.Millisecond, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(120*time.Millisecond, nil)
			if ok := s.SetInterval(tt.in); ok != tt.ok {
				t.Errorf("SetInterval ok = %v, want %v", ok, tt.ok)
			}
			if s.Interval() != tt.want {
				t.Errorf("Interval() = %v, want %v", s.Interval(), tt.want)
			}
		})
	}
}

func TestRunFinishesAndCancels(t *testing.T) {
	s := newTestScheduler(t, "bubble")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	updates := make(chan []int, 1)
	updates <- []int{4, 3, 2, 1, 0}
	frames := 0

	err := s.Run(ctx, updates, func(s *Scheduler) {
		frames++
		if s.Done() && len(s.Slots()[0].Data) == 5 {
			cancel()
		}
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if got := s.Slots()[0].Data; !dataset.IsSorted(got) || len(got) != 5 {
		t.Errorf("unexpected result %v", got)
	}
	if frames == 0 {
		t.Error("frame callback never ran")
	}
}
