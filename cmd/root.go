// Package cmd implements the rotor command-line interface.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/llehouerou/rotor/internal/config"
	"github.com/llehouerou/rotor/internal/logger"
	"github.com/llehouerou/rotor/internal/store"
)

var (
	verbose bool
	dbPath  string

	cfg *config.Config
	log *zap.SugaredLogger
)

var rootCmd = &cobra.Command{
	Use:   "rotor",
	Short: "rotor keeps a weighted rotation playlist for a local music library",
	Long: `rotor maintains a small catalog of music tracks with their ratings,
play counts and last-played times, and regenerates a "rotation" playlist
whose order is a weighted random shuffle: highly rated, rarely played,
recently unheard tracks tend to come first, but the order is never
deterministic.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log = logger.New(verbose)

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "override the database file path")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func openStore() (*store.Store, error) {
	if dbPath != "" {
		return store.OpenAt(dbPath)
	}
	return store.Open()
}
