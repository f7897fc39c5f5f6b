package experiment

import (
	"context"
	"math"

	"github.com/san-kum/sortlab/internal/dataset"
	"github.com/san-kum/sortlab/internal/sorting"
)

// Sweep runs every combination of algorithm, bar count and shape.
type Sweep struct {
	Algorithms    []string
	Bars          []int
	Shapes        []dataset.Shape
	Seed          int64
	MaxIterations int
	Registry      *sorting.Registry
}

type SweepPoint struct {
	Algorithm string
	Bars      int
	Shape     dataset.Shape
	Result    *Result
	Err       error
}

// Run walks the grid in algorithm, bars, shape order. Failed points keep
// their error and partial result; only cancellation stops the sweep.
func (s *Sweep) Run(ctx context.Context) ([]SweepPoint, error) {
	shapes := s.Shapes
	if len(shapes) == 0 {
		shapes = []dataset.Shape{dataset.Random}
	}
	if len(s.Algorithms) == 0 || len(s.Bars) == 0 {
		return nil, ErrEmptySweep
	}

	points := make([]SweepPoint, 0, len(s.Algorithms)*len(s.Bars)*len(shapes))
	for _, algo := range s.Algorithms {
		for _, bars := range s.Bars {
			for _, shape := range shapes {
				if err := ctx.Err(); err != nil {
					return points, err
				}
				cfg := Config{
					Algorithm:     algo,
					Bars:          bars,
					Shape:         shape,
					Seed:          s.Seed,
					MaxIterations: s.MaxIterations,
				}
				res, err := New(cfg, s.Registry).Run(ctx)
				points = append(points, SweepPoint{
					Algorithm: algo,
					Bars:      bars,
					Shape:     shape,
					Result:    res,
					Err:       err,
				})
			}
		}
	}
	return points, nil
}

// Best returns the successful point with the lowest value of metric.
func Best(points []SweepPoint, metric string) (SweepPoint, bool) {
	return pick(points, metric, func(a, b float64) bool { return a < b })
}

// Worst returns the successful point with the highest value of metric.
func Worst(points []SweepPoint, metric string) (SweepPoint, bool) {
	return pick(points, metric, func(a, b float64) bool { return a > b })
}

func pick(points []SweepPoint, metric string, better func(a, b float64) bool) (SweepPoint, bool) {
	var chosen SweepPoint
	found := false
	best := math.NaN()
	for _, p := range points {
		if p.Err != nil || p.Result == nil {
			continue
		}
		val, ok := p.Result.Metrics[metric]
		if !ok {
			continue
		}
		if !found || better(val, best) {
			chosen, best, found = p, val, true
		}
	}
	return chosen, found
}

// Series extracts metric per bar count for one algorithm and shape, in
// sweep order, for plotting.
func Series(points []SweepPoint, algorithm string, shape dataset.Shape, metric string) []float64 {
	var out []float64
	for _, p := range points {
		if p.Algorithm != algorithm || p.Shape != shape || p.Result == nil {
			continue
		}
		out = append(out, p.Result.Metrics[metric])
	}
	return out
}
