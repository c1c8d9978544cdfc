// Package rotation computes the weighted rotation order for a track catalog.
package rotation

import "math/rand/v2"

// Shuffle returns a uniformly random permutation of items.
// The input slice is never modified.
func Shuffle[T any](rng *rand.Rand, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
