package cmd

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/llehouerou/rotor/internal/library"
	"github.com/llehouerou/rotor/internal/playlists"
	"github.com/llehouerou/rotor/internal/rotation"
)

var (
	generateSeed   uint64
	generateDryRun bool
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Regenerate the rotation playlist",
	Long: `Generate orders the whole catalog with a weighted random shuffle and
replaces the rotation playlist with the result. Tracks rated 20 always
sort to the end, with no preference among them.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		lib := library.New(st.DB())
		tracks, err := lib.Tracks()
		if err != nil {
			return err
		}

		ids, err := rotation.Generate(newRand(generateSeed), tracks)
		if err != nil {
			return err
		}

		if generateDryRun {
			byID := make(map[int64]library.Track, len(tracks))
			for _, t := range tracks {
				byID[t.ID] = t
			}
			for i, id := range ids {
				t := byID[id]
				fmt.Printf("%3d. [%d] %s - %s\n", i+1, id, t.Artist, t.Title)
			}
			return nil
		}

		name := cfg.GetRotationConfig().PlaylistName
		if err := playlists.New(st.DB()).Replace(name, ids); err != nil {
			return fmt.Errorf("write playlist %q: %w", name, err)
		}

		log.Infow("playlist updated", "name", name, "tracks", len(ids))
		return nil
	},
}

// newRand builds the random source for a generation run. A non-zero seed
// pins the order for reproducibility.
func newRand(seed uint64) *rand.Rand {
	if seed != 0 {
		return rand.New(rand.NewPCG(seed, 0))
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

func init() {
	generateCmd.Flags().Uint64Var(&generateSeed, "seed", 0, "seed the random source for a reproducible order")
	generateCmd.Flags().BoolVar(&generateDryRun, "dry-run", false, "print the order without writing the playlist")
	rootCmd.AddCommand(generateCmd)
}
