// Package seq provides lazy combinatorial sequences: permutations of a token
// list and cartesian powers of an alphabet.
//
// Every sequence is an iter.Seq. Ranging over the same sequence again starts
// the enumeration over in the same order, and breaking out of a range loop
// stops all further work.
package seq

import "iter"

// Permutations yields every ordering of tokens. Tokens are treated as
// distinct by position, so the result always has len(tokens)! elements.
//
// The order is that of a depth-first walk which, for each position, tries the
// remaining tokens in their original order: for [a b c] it yields abc, acb,
// bac, bca, cab, cba. Each yielded slice is freshly allocated.
func Permutations[T any](tokens []T) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		avail := make([]T, len(tokens))
		copy(avail, tokens)
		permute(avail, make([]T, 0, len(tokens)), yield)
	}
}

// permute extends prefix with every ordering of avail. It returns false once
// yield asks to stop.
func permute[T any](avail, prefix []T, yield func([]T) bool) bool {
	if len(avail) == 0 {
		out := make([]T, len(prefix))
		copy(out, prefix)
		return yield(out)
	}
	for i := range avail {
		rest := make([]T, 0, len(avail)-1)
		rest = append(rest, avail[:i]...)
		rest = append(rest, avail[i+1:]...)
		if !permute(rest, append(prefix, avail[i]), yield) {
			return false
		}
	}
	return true
}

// Indices returns [0, 1, ..., n-1].
func Indices(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// Apply returns values reordered so that element i is values[order[i]].
func Apply[T any](order []int, values []T) []T {
	out := make([]T, len(order))
	for i, idx := range order {
		out[i] = values[idx]
	}
	return out
}
