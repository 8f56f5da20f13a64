package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var recordCmd = &cobra.Command{
	Use:   "record <course-id>",
	Short: "Record an exercise session",
	Long:  "Record whether you were called to present in an exercise session. The course is created on first use.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		courseID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("course id must be an integer, got %q", args[0])
		}

		name, _ := cmd.Flags().GetString("name")
		exercise, _ := cmd.Flags().GetString("exercise")
		called, _ := cmd.Flags().GetBool("called")
		date, _ := cmd.Flags().GetString("date")

		tracker, err := openTracker(cmd)
		if err != nil {
			return err
		}
		if err := tracker.Record(courseID, name, exercise, called, date); err != nil {
			return err
		}

		outcome := "not called"
		if called {
			outcome = "called"
		}
		fmt.Printf("Recorded %q for course %d (%s)\n", exercise, courseID, outcome)
		return nil
	},
}

func init() {
	recordCmd.Flags().StringP("name", "n", "", "Course name (refreshed on every record)")
	recordCmd.Flags().StringP("exercise", "e", "", "Exercise label, e.g. \"Exercise 3\"")
	recordCmd.Flags().Bool("called", false, "You were called to present in this session")
	recordCmd.Flags().String("date", "", "Session date (YYYY-MM-DD, defaults to today)")
	_ = recordCmd.MarkFlagRequired("name")
	_ = recordCmd.MarkFlagRequired("exercise")
}
