package cmd

import (
	"cmp"
	"fmt"
	"os"
	"slices"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/llehouerou/rotor/internal/library"
	"github.com/llehouerou/rotor/internal/rotation"
)

var tracksCmd = &cobra.Command{
	Use:   "tracks",
	Short: "List the catalog with ratings, play counts and current weights",
	Long: `Tracks lists the catalog sorted by selection weight, the way a
generation run would prioritize it. The weight shown uses one random
recency tie-break, so it can vary between runs for never-played tracks.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		tracks, err := library.New(st.DB()).Tracks()
		if err != nil {
			return err
		}

		candidates := rotation.ComputeWeights(newRand(0), tracks)
		slices.SortFunc(candidates, func(a, b rotation.Candidate) int {
			return cmp.Compare(b.Weight, a.Weight)
		})

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tARTIST\tTITLE\tRATING\tPLAYS\tLAST PLAYED\tWEIGHT")
		for _, c := range candidates {
			t := c.Track
			lastPlayed := "never"
			if t.LastPlayed > 0 {
				lastPlayed = humanize.Time(time.Unix(t.LastPlayed, 0))
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\t%s\t%d\n",
				t.ID, t.Artist, t.Title, t.Rating, t.PlayCount, lastPlayed, c.Weight)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(tracksCmd)
}
