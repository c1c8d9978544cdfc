package rotation

import (
	"cmp"
	"math/rand/v2"
	"slices"

	"github.com/llehouerou/rotor/internal/library"
)

const (
	// unratedBase is the base weight used when a track has no rating.
	// Unrated tracks deliberately outrank every explicit rating so that
	// new music gets heard.
	unratedBase = 200

	weightScale = 1000
)

// Candidate is a catalog track annotated with its derived selection data.
type Candidate struct {
	Track       library.Track
	RecencyRank int // 1 = most recently played
	Weight      int // always >= 0
}

// ComputeWeights ranks tracks by how recently they were played and computes
// a selection weight for each. The tracks are shuffled before the stable
// sort so that ties in last-played (typically the never-played tracks at
// timestamp 0) are broken randomly rather than by catalog order.
func ComputeWeights(rng *rand.Rand, tracks []library.Track) []Candidate {
	shuffled := Shuffle(rng, tracks)
	slices.SortStableFunc(shuffled, func(a, b library.Track) int {
		return cmp.Compare(b.LastPlayed, a.LastPlayed)
	})

	candidates := make([]Candidate, len(shuffled))
	for i, t := range shuffled {
		rank := i + 1
		candidates[i] = Candidate{
			Track:       t,
			RecencyRank: rank,
			Weight:      trackWeight(t, rank, len(shuffled)),
		}
	}
	return candidates
}

// trackWeight computes the selection weight for a single track. All
// arithmetic is integer: rarely played, highly rated, recently unheard
// tracks dominate. A rating of library.RatingExcluded means "never select"
// and yields weight 0.
func trackWeight(t library.Track, rank, n int) int {
	if t.Rating == library.RatingExcluded {
		return 0
	}

	base := t.Rating
	if base == 0 {
		base = unratedBase
	}

	recencyTerm := weightScale * rank / n
	playcountTerm := weightScale / (t.PlayCount + 1)
	return base * (recencyTerm + playcountTerm)
}
