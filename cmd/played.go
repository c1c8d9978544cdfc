package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/llehouerou/rotor/internal/library"
)

var playedCmd = &cobra.Command{
	Use:   "played <track-id>",
	Short: "Record a play for a track",
	Long: `Played increments a track's play count and stamps its last-played
time with the current time. Both feed into the next generation run.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid track id %q", args[0])
		}

		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		if err := library.New(st.DB()).RecordPlay(id, time.Now()); err != nil {
			return err
		}

		log.Infow("play recorded", "track", id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(playedCmd)
}
