package rotation

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// ErrInvalidWeight reports a negative weight returned by the caller's
// weight function.
var ErrInvalidWeight = errors.New("invalid selection weight")

// WeightedSelect returns a permutation of items where, at each step, the
// probability that a given remaining item comes next is proportional to its
// weight among the remaining items. Zero-weight items always end up after
// every positive-weight item, in uniformly random relative order.
//
// The scan is O(n²) on purpose: catalogs are small, and the O(n log n)
// score-transform alternative changes the tie-breaking semantics for
// zero-weight items.
func WeightedSelect[T any](rng *rand.Rand, weight func(T) int, items []T) ([]T, error) {
	// Pre-shuffle so the result never depends on input order, in
	// particular among zero-weight items.
	values := Shuffle(rng, items)

	weights := make([]int, len(values))
	total := 0
	for i, v := range values {
		w := weight(v)
		if w < 0 {
			return nil, fmt.Errorf("%w: %d at index %d", ErrInvalidWeight, w, i)
		}
		weights[i] = w
		total += w
	}

	// The last remaining item is placed by elimination, no draw needed.
	for start := 0; start < len(values)-1; {
		if total == 0 {
			// All remaining weights are zero: the shuffled order from
			// above already is the random order.
			break
		}

		target := rng.IntN(total)
		for i := start; ; i++ {
			// The last scanned index is forced regardless of target so a
			// draw can never run off the end.
			if weights[i] > target || i == len(values)-1 {
				values[start], values[i] = values[i], values[start]
				weights[start], weights[i] = weights[i], weights[start]
				total -= weights[start]
				start++
				break
			}
			target -= weights[i]
		}
	}

	return values, nil
}
