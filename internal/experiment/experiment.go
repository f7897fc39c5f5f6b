// Package experiment runs steppers headlessly: single runs, seeded
// ensembles, sweeps across sizes and shapes, and scripted scenarios.
package experiment

import (
	"context"
	"math/rand"
	"time"

	"github.com/san-kum/sortlab/internal/dataset"
	"github.com/san-kum/sortlab/internal/metrics"
	"github.com/san-kum/sortlab/internal/sorting"
)

const (
	DefaultMaxIterations = 1 << 20
	// ctx is polled every ctxCheckEvery iterations.
	ctxCheckEvery = 256
)

type Config struct {
	Algorithm string
	Bars      int
	Shape     dataset.Shape
	Seed      int64
	// Data, when set, replaces the generated input. It is copied.
	Data          []int
	MaxIterations int
	// Trace records remaining inversions after every iterate.
	Trace bool
}

type Result struct {
	Algorithm  string             `json:"algorithm"`
	Bars       int                `json:"bars"`
	Shape      string             `json:"shape"`
	Seed       int64              `json:"seed"`
	Iterations int                `json:"iterations"`
	Metrics    map[string]float64 `json:"metrics"`
	Sorted     bool               `json:"sorted"`
	Elapsed    time.Duration      `json:"elapsed"`
	Trace      []int              `json:"trace,omitempty"`
	Final      []int              `json:"-"`
}

type Experiment struct {
	cfg       Config
	registry  *sorting.Registry
	observers []func(iteration int, data []int)
}

// New prepares a run. A nil registry means the built-in algorithms.
func New(cfg Config, reg *sorting.Registry) *Experiment {
	if reg == nil {
		reg = sorting.NewRegistry()
	}
	if cfg.MaxIterations <= 0 {
		cfg.MaxIterations = DefaultMaxIterations
	}
	if cfg.Shape == "" {
		cfg.Shape = dataset.Random
	}
	return &Experiment{cfg: cfg, registry: reg}
}

// AddObserver registers fn to see the data after every iterate.
func (e *Experiment) AddObserver(fn func(iteration int, data []int)) {
	e.observers = append(e.observers, fn)
}

// Run sorts one dataset to completion. On an iteration cap or a
// cancelled context the partial result is returned alongside the error.
func (e *Experiment) Run(ctx context.Context) (*Result, error) {
	if e.cfg.Algorithm == "" {
		return nil, ErrNoAlgorithm
	}
	rng := rand.New(rand.NewSource(e.cfg.Seed))
	st, err := e.registry.New(e.cfg.Algorithm, rng)
	if err != nil {
		return nil, err
	}

	var data []int
	if e.cfg.Data != nil {
		data = dataset.Clone(e.cfg.Data)
	} else {
		data = dataset.Generate(e.cfg.Bars, e.cfg.Shape, rng)
	}

	ms := metrics.Standard()
	result := &Result{
		Algorithm: e.cfg.Algorithm,
		Bars:      len(data),
		Shape:     string(e.cfg.Shape),
		Seed:      e.cfg.Seed,
	}
	if e.cfg.Data != nil {
		result.Shape = "custom"
	}
	if e.cfg.Trace {
		result.Trace = append(result.Trace, metrics.Count(data))
	}

	finish := func(start time.Time) {
		result.Elapsed = time.Since(start)
		result.Metrics = metrics.Snapshot(ms)
		result.Sorted = dataset.IsSorted(data)
		result.Final = data
	}

	start := time.Now()
	st.Reset(data)
	for {
		if result.Iterations%ctxCheckEvery == 0 {
			select {
			case <-ctx.Done():
				finish(start)
				return result, ctx.Err()
			default:
			}
		}
		if result.Iterations >= e.cfg.MaxIterations {
			finish(start)
			return result, &RunError{Algorithm: e.cfg.Algorithm, Iteration: result.Iterations, Wrapped: ErrIterationLimit}
		}

		done := st.Iterate(data)
		result.Iterations++
		metrics.ObserveAll(ms, data)
		if e.cfg.Trace {
			result.Trace = append(result.Trace, metrics.Count(data))
		}
		for _, obs := range e.observers {
			obs(result.Iterations, data)
		}
		if done {
			break
		}
	}

	finish(start)
	return result, nil
}

// Run is New(cfg, nil).Run(ctx).
func Run(ctx context.Context, cfg Config) (*Result, error) {
	return New(cfg, nil).Run(ctx)
}
