package sorting

import (
	"fmt"
	"math/rand"
)

type Factory func(rng *rand.Rand) Stepper

type Registry struct {
	names     []string
	factories map[string]Factory
}

func NewRegistry() *Registry {
	r := &Registry{factories: make(map[string]Factory)}

	r.Register("bubble", func(*rand.Rand) Stepper { return NewBubble() })
	r.Register("insertion", func(*rand.Rand) Stepper { return NewInsertion() })
	r.Register("selection", func(*rand.Rand) Stepper { return NewSelection() })
	r.Register("merge", func(*rand.Rand) Stepper { return NewMerge() })
	r.Register("heap", func(*rand.Rand) Stepper { return NewHeap() })
	r.Register("quick", func(rng *rand.Rand) Stepper { return NewQuick(rng) })
	r.Register("shell", func(*rand.Rand) Stepper { return NewShell() })
	r.Register("bogo", func(rng *rand.Rand) Stepper { return NewBogo(rng) })

	return r
}

// Register adds or replaces a factory. Names keep their first registration order.
func (r *Registry) Register(name string, fn Factory) {
	if _, ok := r.factories[name]; !ok {
		r.names = append(r.names, name)
	}
	r.factories[name] = fn
}

func (r *Registry) New(name string, rng *rand.Rand) (Stepper, error) {
	fn, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, name)
	}
	return fn(rng), nil
}

func (r *Registry) Has(name string) bool {
	_, ok := r.factories[name]
	return ok
}

func (r *Registry) Names() []string {
	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}

var descriptions = map[string]string{
	"bubble":    "adjacent swaps, largest bubbles to the end",
	"insertion": "walks each element back into place",
	"selection": "scans for the minimum, swaps it forward",
	"merge":     "bottom-up merge across two buffers",
	"heap":      "sift up into a max-heap, then extract",
	"quick":     "random pivot, Hoare-style partition",
	"shell":     "gapped insertion with halving gaps",
	"bogo":      "shuffle until sorted",
}

func Describe(name string) string {
	return descriptions[name]
}
