package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/llehouerou/rotor/internal/library"
)

var rateCmd = &cobra.Command{
	Use:   "rate <track-id> <rating>",
	Short: "Set a track rating (0-20)",
	Long: `Rate sets a track's rating. 0 means unrated, which counts as maximum
priority when generating. 20 excludes the track from rotation entirely.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid track id %q", args[0])
		}
		rating, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid rating %q", args[1])
		}

		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		if err := library.New(st.DB()).SetRating(id, rating); err != nil {
			return err
		}

		log.Infow("rating set", "track", id, "rating", rating)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rateCmd)
}
