package dataset

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

var ErrUnknownShape = errors.New("dataset: unknown shape")

type Shape string

const (
	Random        Shape = "random"
	Reversed      Shape = "reversed"
	MostlyOrdered Shape = "mostly-ordered"
)

func Shapes() []Shape {
	return []Shape{Random, Reversed, MostlyOrdered}
}

func ParseShape(s string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "random", "":
		return Random, nil
	case "reversed", "reverse":
		return Reversed, nil
	case "mostly-ordered", "mostly ordered", "mostly_ordered":
		return MostlyOrdered, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownShape, s)
}

// Generate returns n distinct values 0..n-1 arranged according to shape.
func Generate(n int, shape Shape, rng *rand.Rand) []int {
	data := Range(n)
	switch shape {
	case Reversed:
		for i, j := 0, len(data)-1; i < j; i, j = i+1, j-1 {
			data[i], data[j] = data[j], data[i]
		}
	case MostlyOrdered:
		for i := 2; i < len(data); i++ {
			j := rng.Intn(2)
			data[i], data[i-j] = data[i-j], data[i]
		}
	default:
		Shuffle(data, rng)
	}
	return data
}

func Range(n int) []int {
	if n < 0 {
		n = 0
	}
	data := make([]int, n)
	for i := range data {
		data[i] = i
	}
	return data
}

// Shuffle is an in-place Fisher-Yates shuffle.
func Shuffle(data []int, rng *rand.Rand) {
	for i := len(data); i > 0; i-- {
		j := rng.Intn(i)
		data[i-1], data[j] = data[j], data[i-1]
	}
}

func IsSorted(data []int) bool {
	for i := 1; i < len(data); i++ {
		if data[i] < data[i-1] {
			return false
		}
	}
	return true
}

func Clone(data []int) []int {
	c := make([]int, len(data))
	copy(c, data)
	return c
}

func SameMultiset(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[int]int, len(a))
	for _, v := range a {
		counts[v]++
	}
	for _, v := range b {
		counts[v]--
		if counts[v] < 0 {
			return false
		}
	}
	return true
}
