package rotation

import (
	"math/rand/v2"

	"github.com/llehouerou/rotor/internal/library"
)

// Generate computes a weight for every track in the catalog and orders the
// catalog by weighted selection without replacement. It returns the ordered
// track IDs. The result is a pure function of the input and rng.
func Generate(rng *rand.Rand, tracks []library.Track) ([]int64, error) {
	candidates := ComputeWeights(rng, tracks)

	ordered, err := WeightedSelect(rng, func(c Candidate) int { return c.Weight }, candidates)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, len(ordered))
	for i, c := range ordered {
		ids[i] = c.Track.ID
	}
	return ids, nil
}
