package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/llehouerou/rotor/internal/playlists"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current rotation playlist",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		name := cfg.GetRotationConfig().PlaylistName
		pls := playlists.New(st.DB())

		pl, err := pls.Get(name)
		if err != nil {
			return err
		}
		if pl == nil {
			return fmt.Errorf("playlist %q does not exist yet, run generate first", name)
		}

		tracks, err := pls.Tracks(name)
		if err != nil {
			return err
		}

		for i, t := range tracks {
			fmt.Printf("%3d. [%d] %s - %s\n", i+1, t.ID, t.Artist, t.Title)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
