package rotation

import (
	"slices"
	"testing"

	"github.com/llehouerou/rotor/internal/library"
)

func TestTrackWeight(t *testing.T) {
	tests := []struct {
		name  string
		track library.Track
		rank  int
		n     int
		want  int
	}{
		{
			name:  "unrated never played single track",
			track: library.Track{Rating: 0, PlayCount: 0},
			rank:  1,
			n:     1,
			// recency 1000*1/1 + playcount 1000/1, base 200
			want: 400000,
		},
		{
			name:  "excluded rating wins over everything",
			track: library.Track{Rating: library.RatingExcluded, PlayCount: 0},
			rank:  1,
			n:     1,
			want:  0,
		},
		{
			name:  "rated and played",
			track: library.Track{Rating: 10, PlayCount: 4},
			rank:  2,
			n:     4,
			// 10 * (1000*2/4 + 1000/5) = 10 * (500 + 200)
			want: 7000,
		},
		{
			name:  "lowest rating",
			track: library.Track{Rating: 1, PlayCount: 0},
			rank:  1,
			n:     2,
			// 1 * (500 + 1000)
			want: 1500,
		},
		{
			name:  "heavily played unrated",
			track: library.Track{Rating: 0, PlayCount: 999},
			rank:  3,
			n:     3,
			// 200 * (1000 + 1)
			want: 200200,
		},
		{
			name:  "integer division floors both terms",
			track: library.Track{Rating: 3, PlayCount: 2},
			rank:  1,
			n:     3,
			// 3 * (1000/3 + 1000/3) = 3 * (333 + 333)
			want: 1998,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := trackWeight(tt.track, tt.rank, tt.n)
			if got != tt.want {
				t.Errorf("trackWeight = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestComputeWeights_RanksArePermutation(t *testing.T) {
	tracks := []library.Track{
		{ID: 1, LastPlayed: 500},
		{ID: 2, LastPlayed: 0},
		{ID: 3, LastPlayed: 900},
		{ID: 4, LastPlayed: 0},
		{ID: 5, LastPlayed: 100},
	}

	for seed := uint64(1); seed <= 50; seed++ {
		candidates := ComputeWeights(testRand(seed), tracks)

		ranks := make([]int, len(candidates))
		for i, c := range candidates {
			ranks[i] = c.RecencyRank
		}
		slices.Sort(ranks)
		if !slices.Equal(ranks, []int{1, 2, 3, 4, 5}) {
			t.Fatalf("seed %d: ranks %v are not a permutation of 1..5", seed, ranks)
		}
	}
}

func TestComputeWeights_MoreRecentRanksLower(t *testing.T) {
	tracks := []library.Track{
		{ID: 1, LastPlayed: 100},
		{ID: 2, LastPlayed: 300},
		{ID: 3, LastPlayed: 200},
	}

	candidates := ComputeWeights(testRand(1), tracks)

	rankByID := make(map[int64]int)
	for _, c := range candidates {
		rankByID[c.Track.ID] = c.RecencyRank
	}

	if rankByID[2] != 1 || rankByID[3] != 2 || rankByID[1] != 3 {
		t.Errorf("ranks = %v, want id2=1 id3=2 id1=3", rankByID)
	}
}

func TestComputeWeights_TiesBrokenRandomly(t *testing.T) {
	// All never played: rank assignment must vary with the random source.
	tracks := []library.Track{
		{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4},
	}

	firstRanked := make(map[int64]bool)
	for seed := uint64(1); seed <= 200; seed++ {
		candidates := ComputeWeights(testRand(seed), tracks)
		for _, c := range candidates {
			if c.RecencyRank == 1 {
				firstRanked[c.Track.ID] = true
			}
		}
	}

	if len(firstRanked) != 4 {
		t.Errorf("rank 1 went to %d distinct tracks across seeds, want 4", len(firstRanked))
	}
}

func TestComputeWeights_WeightMatchesFormula(t *testing.T) {
	tracks := []library.Track{
		{ID: 1, Rating: 5, PlayCount: 2, LastPlayed: 100},
		{ID: 2, Rating: 0, PlayCount: 0, LastPlayed: 0},
		{ID: 3, Rating: library.RatingExcluded, PlayCount: 1, LastPlayed: 900},
	}

	candidates := ComputeWeights(testRand(7), tracks)

	for _, c := range candidates {
		want := trackWeight(c.Track, c.RecencyRank, len(tracks))
		if c.Weight != want {
			t.Errorf("track %d: weight = %d, want %d", c.Track.ID, c.Weight, want)
		}
		if c.Weight < 0 {
			t.Errorf("track %d: negative weight %d", c.Track.ID, c.Weight)
		}
	}
}

func TestComputeWeights_InputNotModified(t *testing.T) {
	tracks := []library.Track{
		{ID: 1, LastPlayed: 100},
		{ID: 2, LastPlayed: 300},
		{ID: 3, LastPlayed: 200},
	}
	original := slices.Clone(tracks)

	ComputeWeights(testRand(3), tracks)

	if !slices.Equal(tracks, original) {
		t.Errorf("input modified: %v, want %v", tracks, original)
	}
}

func TestComputeWeights_Empty(t *testing.T) {
	candidates := ComputeWeights(testRand(1), nil)

	if len(candidates) != 0 {
		t.Errorf("len = %d, want 0", len(candidates))
	}
}
