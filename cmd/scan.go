package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/llehouerou/rotor/internal/library"
)

var scanCmd = &cobra.Command{
	Use:   "scan [path...]",
	Short: "Scan music folders into the catalog",
	Long: `Scan walks the given folders (or the configured library_sources) and
syncs the catalog: new files are added, modified files are re-read, and
entries for deleted files are removed. Ratings and play statistics are
kept across rescans.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sources := args
		if len(sources) == 0 {
			sources = cfg.LibrarySources
		}
		if len(sources) == 0 {
			return errors.New("no sources: pass paths or set library_sources in config.toml")
		}

		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		log.Debugw("scanning", "sources", sources)
		stats, err := library.New(st.DB()).Scan(sources)
		if err != nil {
			return err
		}

		log.Infow("scan complete",
			"added", stats.Added, "updated", stats.Updated, "removed", stats.Removed)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
