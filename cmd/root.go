package cmd

import (
	"fmt"

	"github.com/abhisek/tucomp/internal/participation"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "tucomp",
	Short:        "Study companion for TU exercise courses",
	Long:         "Tucomp — terminal companion that tracks exercise-session participation and estimates the odds of being called to the board next.",
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("data", "", "Path to the participation history file (overrides TUCOMP_DATA env var)")

	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(groupSizeCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(coursesCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDataPath returns the history file path using --data (highest
// priority), then the TUCOMP_DATA env var, then the default XDG path.
func resolveDataPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("data"); p != "" {
		return p, participation.EnsureDir(p)
	}
	return participation.DefaultDataPath()
}

// openTracker builds a Tracker over the file store at the resolved path.
func openTracker(cmd *cobra.Command) (*participation.Tracker, error) {
	path, err := resolveDataPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve data path: %w", err)
	}
	store, err := participation.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return participation.New(store), nil
}
