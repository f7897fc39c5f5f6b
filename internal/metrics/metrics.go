package metrics

// Metric observes a sequence after every iterate of a stepper.
type Metric interface {
	Name() string
	Observe(data []int)
	Value() float64
	Reset()
}

// Standard returns a fresh set of the metrics every slot and run records.
func Standard() []Metric {
	return []Metric{NewIterations(), NewWrites(), NewInversions()}
}

// Snapshot collects metric values by name.
func Snapshot(ms []Metric) map[string]float64 {
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}

func ObserveAll(ms []Metric, data []int) {
	for _, m := range ms {
		m.Observe(data)
	}
}

func ResetAll(ms []Metric) {
	for _, m := range ms {
		m.Reset()
	}
}

type Iterations struct {
	name  string
	count int
}

func NewIterations() *Iterations {
	return &Iterations{name: "iterations"}
}

func (it *Iterations) Name() string       { return it.name }
func (it *Iterations) Observe(data []int) { it.count++ }
func (it *Iterations) Value() float64     { return float64(it.count) }
func (it *Iterations) Reset()             { it.count = 0 }

// Writes counts positions whose value changed between consecutive
// observations. The first observation only records a baseline.
type Writes struct {
	name  string
	prev  []int
	total int
}

func NewWrites() *Writes {
	return &Writes{name: "writes"}
}

func (w *Writes) Name() string { return w.name }

func (w *Writes) Observe(data []int) {
	if w.prev != nil && len(w.prev) == len(data) {
		for i, v := range data {
			if w.prev[i] != v {
				w.total++
			}
		}
	}
	w.prev = append(w.prev[:0], data...)
}

func (w *Writes) Value() float64 { return float64(w.total) }

func (w *Writes) Reset() {
	w.prev = nil
	w.total = 0
}

// Inversions tracks how many out-of-order pairs remain in the latest
// observation.
type Inversions struct {
	name    string
	current int
}

func NewInversions() *Inversions {
	return &Inversions{name: "inversions"}
}

func (inv *Inversions) Name() string { return inv.name }

func (inv *Inversions) Observe(data []int) {
	inv.current = Count(data)
}

func (inv *Inversions) Value() float64 { return float64(inv.current) }

func (inv *Inversions) Reset() {
	inv.current = 0
}

// Count returns the number of pairs i < j with data[i] > data[j] in
// O(n log n) using a merge count on a scratch copy.
func Count(data []int) int {
	if len(data) < 2 {
		return 0
	}
	a := append([]int(nil), data...)
	tmp := make([]int, len(a))
	return mergeCount(a, tmp)
}

func mergeCount(a, tmp []int) int {
	n := len(a)
	if n < 2 {
		return 0
	}
	mid := n / 2
	count := mergeCount(a[:mid], tmp[:mid]) + mergeCount(a[mid:], tmp[mid:])

	i, j, k := 0, mid, 0
	for i < mid && j < n {
		if a[i] <= a[j] {
			tmp[k] = a[i]
			i++
		} else {
			tmp[k] = a[j]
			count += mid - i
			j++
		}
		k++
	}
	k += copy(tmp[k:], a[i:mid])
	copy(tmp[k:], a[j:n])
	copy(a, tmp[:n])
	return count
}
