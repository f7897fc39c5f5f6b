// Package scheduler steps every active algorithm on one clock and fans
// dataset changes out to all of them.
//
// A Scheduler is owned by a single goroutine: either the Bubble Tea update
// loop, which calls Step from its tick message, or Run, which serialises
// Step and Replace itself. Neither path needs locking.
package scheduler

import (
	"context"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/san-kum/sortlab/internal/chart"
	"github.com/san-kum/sortlab/internal/dataset"
	"github.com/san-kum/sortlab/internal/logging"
	"github.com/san-kum/sortlab/internal/metrics"
	"github.com/san-kum/sortlab/internal/sorting"
)

const (
	MinInterval     = 10 * time.Millisecond
	MaxInterval     = 5 * time.Second
	DefaultInterval = 250 * time.Millisecond
)

// Slot pairs one stepper with its private data copy and its chart.
type Slot struct {
	Index    int
	Name     string
	Stepper  sorting.Stepper
	Renderer *chart.Renderer
	Data     []int
	Metrics  []metrics.Metric
	done     bool
}

func (sl *Slot) Done() bool { return sl.done }

func (sl *Slot) step() bool {
	if sl.Stepper.Iterate(sl.Data) {
		sl.done = true
	}
	metrics.ObserveAll(sl.Metrics, sl.Data)
	sl.render(sl.Stepper.Capabilities().Animated)
	return sl.done
}

func (sl *Slot) render(animated bool) {
	if sl.Renderer == nil {
		return
	}
	sl.Renderer.Render(sl.Stepper.Project(sl.Data), sl.Stepper.Classify(sl.Data), animated)
}

func (sl *Slot) reset(data []int) {
	sl.Data = dataset.Clone(data)
	sl.Stepper.Reset(sl.Data)
	metrics.ResetAll(sl.Metrics)
	sl.done = false
	if sl.Renderer != nil {
		sl.Renderer.RescaleData(sl.Data, sl.Stepper.Capabilities().CustomProjection)
	}
	sl.render(sl.Stepper.Capabilities().Animated)
}

// Snapshot returns the slot's current metric values by name.
func (sl *Slot) Snapshot() map[string]float64 {
	return metrics.Snapshot(sl.Metrics)
}

type Scheduler struct {
	slots    []*Slot
	interval time.Duration
	logger   *log.Logger

	// RunOffScreen steps slots even when Visible rejects them.
	RunOffScreen bool
	// Visible reports whether a slot is on screen. Nil means every slot is.
	Visible func(*Slot) bool
}

func New(interval time.Duration, logger *log.Logger) *Scheduler {
	if logger == nil {
		logger = logging.Discard()
	}
	s := &Scheduler{interval: DefaultInterval, logger: logger}
	s.SetInterval(interval)
	return s
}

// Add registers a stepper. Its data stays empty until the next Replace.
func (s *Scheduler) Add(name string, st sorting.Stepper, r *chart.Renderer) *Slot {
	sl := &Slot{
		Index:    len(s.slots),
		Name:     name,
		Stepper:  st,
		Renderer: r,
		Data:     []int{},
		Metrics:  metrics.Standard(),
	}
	if r != nil {
		r.SetTransition(s.interval / 2)
	}
	s.slots = append(s.slots, sl)
	return sl
}

// AddAlgorithms creates one slot per name from reg, each with its own
// renderer built from opts.
func (s *Scheduler) AddAlgorithms(reg *sorting.Registry, names []string, rng *rand.Rand, opts chart.Options) error {
	for _, name := range names {
		st, err := reg.New(name, rng)
		if err != nil {
			return err
		}
		s.Add(name, st, chart.NewRenderer(opts))
	}
	return nil
}

func (s *Scheduler) Slots() []*Slot { return s.slots }

// Step iterates every unfinished slot that is visible, or every unfinished
// slot when RunOffScreen is set. It returns how many slots advanced.
func (s *Scheduler) Step() int {
	stepped := 0
	for _, sl := range s.slots {
		if sl.done {
			continue
		}
		if !s.RunOffScreen && s.Visible != nil && !s.Visible(sl) {
			continue
		}
		if sl.step() {
			s.logger.Debug("slot finished", "algorithm", sl.Name, "iterations", sl.Snapshot()["iterations"])
		}
		stepped++
	}
	return stepped
}

// Replace hands every slot a fresh copy of data and restarts it.
func (s *Scheduler) Replace(data []int) {
	for _, sl := range s.slots {
		sl.reset(data)
	}
	s.logger.Debug("dataset replaced", "bars", len(data), "slots", len(s.slots))
}

// Advance moves every chart one animation frame and reports whether any
// bar is still in flight.
func (s *Scheduler) Advance() bool {
	moving := false
	for _, sl := range s.slots {
		if sl.Renderer != nil && sl.Renderer.Advance() {
			moving = true
		}
	}
	return moving
}

// SetInterval clamps d into [MinInterval, MaxInterval] and retunes every
// chart transition to half of it. Non-positive durations are ignored.
func (s *Scheduler) SetInterval(d time.Duration) bool {
	if d <= 0 {
		return false
	}
	s.interval = min(max(d, MinInterval), MaxInterval)
	for _, sl := range s.slots {
		if sl.Renderer != nil {
			sl.Renderer.SetTransition(s.interval / 2)
		}
	}
	return true
}

func (s *Scheduler) Interval() time.Duration { return s.interval }

// Done reports whether every slot has finished.
func (s *Scheduler) Done() bool {
	for _, sl := range s.slots {
		if !sl.done {
			return false
		}
	}
	return true
}

// Run steps on a ticker until ctx ends. Datasets received on updates are
// applied between ticks; frame, when non-nil, is called after each step.
func (s *Scheduler) Run(ctx context.Context, updates <-chan []int, frame func(*Scheduler)) error {
	current := s.interval
	ticker := time.NewTicker(current)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case data, ok := <-updates:
			if !ok {
				updates = nil
				continue
			}
			s.Replace(data)
		case <-ticker.C:
			s.Step()
			if frame != nil {
				frame(s)
			}
			if s.interval != current {
				current = s.interval
				ticker.Reset(current)
			}
		}
	}
}
