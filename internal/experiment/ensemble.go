package experiment

import (
	"context"
	"math"
	"sync"

	"github.com/san-kum/sortlab/internal/sorting"
)

// Ensemble repeats one configuration over consecutive seeds, one goroutine
// per run. Every run owns its rng, stepper and data.
type Ensemble struct {
	base      Config
	registry  *sorting.Registry
	numRuns   int
	seedStart int64
}

func NewEnsemble(base Config, reg *sorting.Registry, numRuns int, seedStart int64) *Ensemble {
	return &Ensemble{base: base, registry: reg, numRuns: numRuns, seedStart: seedStart}
}

func (e *Ensemble) Run(ctx context.Context) ([]*Result, error) {
	results := make([]*Result, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			cfgCopy := e.base
			cfgCopy.Seed = e.seedStart + int64(idx)
			results[idx], errs[idx] = New(cfgCopy, e.registry).Run(ctx)
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return results, err
		}
	}

	return results, nil
}

type Summary struct {
	Algorithm      string
	Runs           int
	Sorted         int
	MinIterations  int
	MaxIterations  int
	MeanIterations float64
	MeanWrites     float64
}

// Summarize aggregates results by algorithm, in first-seen order. Nil
// results from failed runs are skipped.
func Summarize(results []*Result) []Summary {
	var order []string
	byName := make(map[string]*Summary)
	for _, r := range results {
		if r == nil {
			continue
		}
		s, ok := byName[r.Algorithm]
		if !ok {
			s = &Summary{Algorithm: r.Algorithm, MinIterations: math.MaxInt}
			byName[r.Algorithm] = s
			order = append(order, r.Algorithm)
		}
		s.Runs++
		if r.Sorted {
			s.Sorted++
		}
		s.MinIterations = min(s.MinIterations, r.Iterations)
		s.MaxIterations = max(s.MaxIterations, r.Iterations)
		s.MeanIterations += float64(r.Iterations)
		s.MeanWrites += r.Metrics["writes"]
	}

	out := make([]Summary, 0, len(order))
	for _, name := range order {
		s := byName[name]
		s.MeanIterations /= float64(s.Runs)
		s.MeanWrites /= float64(s.Runs)
		out = append(out, *s)
	}
	return out
}
