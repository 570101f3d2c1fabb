// Package shuffle implements an unbiased Fisher-Yates shuffle that also
// reports where every element came from.
package shuffle

import "math/rand/v2"

// Result holds a permutation of the input. Mapping[i] is the index in the
// original slice of the element now at Shuffled[i].
type Result[T any] struct {
	Shuffled []T
	Mapping  []int
}

// Shuffle returns a uniformly random permutation of in. The input is not
// modified.
func Shuffle[T any](in []T) Result[T] {
	return ShuffleWith(in, rand.IntN)
}

// ShuffleWith is Shuffle with the random source supplied by the caller.
// intn(n) must return a value in [0, n).
func ShuffleWith[T any](in []T, intn func(n int) int) Result[T] {
	out := make([]T, len(in))
	copy(out, in)

	mapping := make([]int, len(in))
	for i := range mapping {
		mapping[i] = i
	}

	for i := len(out) - 1; i > 0; i-- {
		j := intn(i + 1)
		out[i], out[j] = out[j], out[i]
		mapping[i], mapping[j] = mapping[j], mapping[i]
	}

	return Result[T]{Shuffled: out, Mapping: mapping}
}

// PositionOf returns the new position of the element originally at index
// orig, or -1 if orig is out of range.
func (r Result[T]) PositionOf(orig int) int {
	for i, m := range r.Mapping {
		if m == orig {
			return i
		}
	}
	return -1
}
