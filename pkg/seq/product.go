package seq

import (
	"fmt"
	"iter"
)

// Product yields every length-m sequence over alphabet, repetition allowed,
// in odometer order: the rightmost position cycles fastest through the
// alphabet in its given order. m == 0 yields a single empty sequence.
func Product[T any](alphabet []T, m int) iter.Seq[[]T] {
	if m < 0 {
		panic(fmt.Sprintf("seq: Product length must be non-negative, got %d", m))
	}
	return func(yield func([]T) bool) {
		if m > 0 && len(alphabet) == 0 {
			return
		}
		idx := make([]int, m)
		for {
			out := make([]T, m)
			for i, j := range idx {
				out[i] = alphabet[j]
			}
			if !yield(out) {
				return
			}
			pos := m - 1
			for ; pos >= 0; pos-- {
				idx[pos]++
				if idx[pos] < len(alphabet) {
					break
				}
				idx[pos] = 0
			}
			if pos < 0 {
				return
			}
		}
	}
}
