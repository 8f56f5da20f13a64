package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats <course-id>",
	Short: "Show call-probability statistics for a course",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		courseID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("course id must be an integer, got %q", args[0])
		}

		tracker, err := openTracker(cmd)
		if err != nil {
			return err
		}

		stats := tracker.Estimate(courseID)
		if stats == nil {
			fmt.Println("No participation data for this course yet. Record a session first.")
			return nil
		}

		fmt.Printf("%s (course %d)\n", stats.CourseName, stats.CourseID)
		fmt.Printf("  Sessions recorded:    %d\n", stats.TotalSessions)
		fmt.Printf("  Times called:         %d (expected %.1f)\n", stats.TimesCalled, stats.ExpectedCalls)
		fmt.Printf("  Group size:           %d\n", stats.GroupSize)
		fmt.Printf("  Base probability:     %.1f%%\n", stats.BaseProbability)
		fmt.Printf("  Adjusted probability: %.1f%%\n", stats.AdjustedProbability)

		fmt.Println("  Recent sessions:")
		for _, s := range stats.Recent {
			outcome := "-"
			if s.WasCalled {
				outcome = "called"
			}
			fmt.Printf("    %s  %-24s %s\n", s.Date, s.Exercise, outcome)
		}
		return nil
	},
}
